package main

import (
	"context"
	"fmt"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/digitaltwinhq/storefront/modules/storefront"
	"github.com/digitaltwinhq/storefront/pkg/catalog"
	"github.com/digitaltwinhq/storefront/pkg/checkout"
	"github.com/digitaltwinhq/storefront/pkg/config"
	"github.com/digitaltwinhq/storefront/pkg/entitlement"
	"github.com/digitaltwinhq/storefront/pkg/httpserver"
	"github.com/digitaltwinhq/storefront/pkg/identity"
	"github.com/digitaltwinhq/storefront/pkg/logger"
	"github.com/digitaltwinhq/storefront/pkg/pg"
	"github.com/digitaltwinhq/storefront/pkg/redis"
	"github.com/digitaltwinhq/storefront/web/templates"
)

type appConfig struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	AutoMigrate bool   `env:"PG_AUTO_MIGRATE" envDefault:"true"`

	// Provider selects the checkout backend: "endpoint" talks to a hosted
	// serverless endpoint, "paddle" talks to Paddle directly.
	Provider string `env:"CHECKOUT_PROVIDER" envDefault:"endpoint"`

	Catalog catalogConfig
	HTTP    httpserver.Config
	Module  storefront.Config
	PG      pg.Config
	Redis   redis.Config
}

type catalogConfig struct {
	// Path points to a YAML catalog file. Empty means the single built-in
	// offering configured below.
	Path     string `env:"CATALOG_PATH"`
	PriceID  string `env:"CATALOG_PRICE_ID" envDefault:"price_digital_twin_monthly"`
	Name     string `env:"CATALOG_NAME" envDefault:"Digital Twin Platform"`
	Mode     string `env:"CATALOG_MODE" envDefault:"recurring"`
	Amount   int64  `env:"CATALOG_AMOUNT" envDefault:"500"`
	Currency string `env:"CATALOG_CURRENCY" envDefault:"GBP"`
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(logger.WithEnvironment(cfg.Env, "storefront"))

	cat, err := buildCatalog(ctx, cfg.Catalog)
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}

	redisClient, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	defer redisClient.Close()

	pool, err := pg.Connect(ctx, cfg.PG)
	if err != nil {
		return fmt.Errorf("postgres: %w", err)
	}
	defer pool.Close()

	if cfg.AutoMigrate {
		if err := entitlement.Migrate(ctx, pool); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	sessions := identity.NewProvider(identity.NewRedisStore(redisClient))
	defer sessions.Close()

	reader := entitlement.NewReader(entitlement.NewPGStore(pool), entitlement.WithLogger(log))

	provider, err := buildProvider(cfg.Provider)
	if err != nil {
		return fmt.Errorf("checkout provider: %w", err)
	}
	initiator := checkout.NewInitiator(provider, sessions, checkout.WithInitiatorLogger(log))

	svc := storefront.NewService(cfg.Module, cat, sessions, reader, initiator,
		templates.StorefrontViews(), storefront.WithLogger(log))

	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Get("/healthz", httpserver.HealthCheckHandler(ctx, log))
	r.Get("/readyz", httpserver.HealthCheckHandler(ctx, log,
		pg.Healthcheck(pool),
		redis.Healthcheck(redisClient),
	))
	r.Mount("/", storefront.Router(svc))

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, r)
}

func buildCatalog(ctx context.Context, cfg catalogConfig) (*catalog.Catalog, error) {
	if cfg.Path != "" {
		return catalog.NewFromSource(ctx, catalog.NewYAMLSource(cfg.Path))
	}

	return catalog.New(catalog.Entry{
		PriceID: cfg.PriceID,
		Name:    cfg.Name,
		Mode:    catalog.Mode(cfg.Mode),
		Price:   catalog.Money{Amount: cfg.Amount, Currency: cfg.Currency},
	})
}

func buildProvider(kind string) (checkout.Provider, error) {
	switch kind {
	case "paddle":
		var cfg checkout.PaddleConfig
		config.MustLoad(&cfg)
		return checkout.NewPaddleProvider(cfg)
	case "endpoint", "":
		var cfg checkout.EndpointConfig
		config.MustLoad(&cfg)
		return checkout.NewEndpointProvider(cfg)
	default:
		return nil, fmt.Errorf("unknown checkout provider %q", kind)
	}
}
