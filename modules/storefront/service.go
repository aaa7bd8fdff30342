package storefront

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/digitaltwinhq/storefront/pkg/catalog"
	"github.com/digitaltwinhq/storefront/pkg/checkout"
	"github.com/digitaltwinhq/storefront/pkg/countdown"
	"github.com/digitaltwinhq/storefront/pkg/entitlement"
	"github.com/digitaltwinhq/storefront/pkg/identity"
	"github.com/digitaltwinhq/storefront/pkg/logger"
	"github.com/digitaltwinhq/storefront/pkg/web"
)

// User-facing messages for checkout preconditions, matching the product copy.
const (
	msgSignInToPurchase = "Please sign in to make a purchase"
	msgSignInToContinue = "Please sign in to continue"
	msgCheckoutPending  = "Checkout is already in progress"
	msgUnknownProduct   = "This product is not available"
)

// Service implements the storefront pages and actions.
type Service struct {
	cfg       Config
	catalog   *catalog.Catalog
	sessions  *identity.Provider
	reader    *entitlement.Reader
	initiator *checkout.Initiator
	countdown *countdown.Countdown
	views     *Views
	log       *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the logger used for page diagnostics.
func WithLogger(log *slog.Logger) ServiceOption {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// NewService creates the storefront service. Panics on missing dependencies
// to fail fast during initialization.
func NewService(
	cfg Config,
	cat *catalog.Catalog,
	sessions *identity.Provider,
	reader *entitlement.Reader,
	initiator *checkout.Initiator,
	views *Views,
	opts ...ServiceOption,
) *Service {
	if cat == nil {
		panic("storefront: catalog is required")
	}
	if sessions == nil {
		panic("storefront: identity provider is required")
	}
	if reader == nil {
		panic("storefront: entitlement reader is required")
	}
	if initiator == nil {
		panic("storefront: checkout initiator is required")
	}
	views.validate()

	countdownOpts := make([]countdown.Option, 0, 2)
	if cfg.CountdownStart > 0 {
		countdownOpts = append(countdownOpts, countdown.WithStart(cfg.CountdownStart))
	}
	if cfg.CountdownInterval > 0 {
		countdownOpts = append(countdownOpts, countdown.WithInterval(cfg.CountdownInterval))
	}

	s := &Service{
		cfg:       cfg,
		catalog:   cat,
		sessions:  sessions,
		reader:    reader,
		initiator: initiator,
		countdown: countdown.New(countdownOpts...),
		views:     views,
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// statusFor resolves the subscription display state for the request's
// session. Fetch failures render the neutral no-subscription state; the
// failure is logged and never breaks the page.
func (s *Service) statusFor(ctx *web.Context, session *identity.Session) entitlement.DisplayState {
	if !session.IsAuthenticated() {
		return entitlement.DeriveStatus(nil, s.catalog)
	}

	record, err := s.reader.Fetch(ctx, *session.UserID)
	if err != nil {
		s.log.ErrorContext(ctx, "entitlement fetch failed",
			logger.Component("storefront"),
			logger.UserID(session.UserID),
			logger.Error(err),
		)
		record = nil
	}

	return entitlement.DeriveStatus(record, s.catalog)
}

func (s *Service) home(ctx *web.Context, _ struct{}) web.Response {
	session := identity.FromContext(ctx)

	return web.Templ(s.views.HomePage(HomePageParams{
		SignedIn: session.IsAuthenticated(),
		Email:    sessionEmail(session),
		Entries:  s.catalog.Entries(),
		Status:   s.statusFor(ctx, session),
	}))
}

func (s *Service) pricing(ctx *web.Context, _ struct{}) web.Response {
	session := identity.FromContext(ctx)

	return web.Templ(s.views.PricingPage(PricingPageParams{
		SignedIn: session.IsAuthenticated(),
		Entries:  s.catalog.Entries(),
	}))
}

func (s *Service) status(ctx *web.Context, _ struct{}) web.Response {
	session := identity.FromContext(ctx)

	return web.Templ(s.views.StatusPanel(StatusPanelParams{
		Status: s.statusFor(ctx, session),
	}), web.WithTarget("#subscription-status"))
}

type authPageRequest struct {
	RedirectURL string `query:"redirect"`
}

func (s *Service) login(ctx *web.Context, req authPageRequest) web.Response {
	return web.Templ(s.views.LoginPage(AuthPageParams{RedirectURL: req.RedirectURL}))
}

func (s *Service) signup(ctx *web.Context, req authPageRequest) web.Response {
	return web.Templ(s.views.SignupPage(AuthPageParams{RedirectURL: req.RedirectURL}))
}

type buyRequest struct {
	PriceID string `form:"price_id"`
}

func (s *Service) buy(ctx *web.Context, req buyRequest) web.Response {
	entry, ok := s.catalog.Find(req.PriceID)
	if !ok {
		return s.checkoutError(http.StatusNotFound, msgUnknownProduct)
	}

	session := identity.FromContext(ctx)
	origin := s.requestOrigin(ctx.Request())

	url, err := s.initiator.Start(ctx, entry, session, checkout.ReturnURLs{
		Success: origin + s.successPath(),
		Cancel:  origin + s.cancelPath(),
	})
	if err != nil {
		return s.renderCheckoutFailure(err)
	}

	return web.Redirect(url)
}

// renderCheckoutFailure maps checkout errors to the user-facing message.
// Processor rejections surface their own message verbatim.
func (s *Service) renderCheckoutFailure(err error) web.Response {
	switch {
	case errors.Is(err, checkout.ErrAuthRequired):
		return s.checkoutError(http.StatusUnauthorized, msgSignInToPurchase)
	case errors.Is(err, checkout.ErrSessionMissing):
		return s.checkoutError(http.StatusUnauthorized, msgSignInToContinue)
	case errors.Is(err, checkout.ErrInFlight):
		return s.checkoutError(http.StatusConflict, msgCheckoutPending)
	}

	var reqErr *checkout.RequestError
	if errors.As(err, &reqErr) {
		return s.checkoutError(http.StatusBadGateway, reqErr.Message)
	}

	return s.checkoutError(http.StatusBadGateway, checkout.FallbackErrorMessage)
}

func (s *Service) checkoutError(status int, message string) web.Response {
	return errorFragment{
		status:    status,
		component: web.Templ(s.views.CheckoutError(CheckoutErrorParams{Message: message}), web.WithTarget("#checkout-error")),
	}
}

// errorFragment renders the checkout error view. Plain requests get the
// error status; datastar requests get the fragment patched over the open
// SSE stream, which owns its own status line.
type errorFragment struct {
	status    int
	component web.Response
}

func (e errorFragment) Render(w http.ResponseWriter, r *http.Request) error {
	if !web.IsDataStar(r) {
		w.WriteHeader(e.status)
	}
	return e.component.Render(w, r)
}

func (s *Service) success(ctx *web.Context, _ struct{}) web.Response {
	if !ctx.IsDataStar() {
		return web.Templ(s.views.SuccessPage(SuccessPageParams{
			Remaining:      s.countdownStart(),
			RedirectTarget: s.redirectTarget(),
		}))
	}

	// Datastar re-connects to this route for the live countdown. Each step
	// patches the fragment; the terminal step issues the navigation. A
	// client that leaves the page cancels the context and no redirect fires.
	sse := ctx.SSE()
	err := s.countdown.Run(ctx, func(step countdown.State) {
		if step.Done {
			if err := sse.Redirect(s.redirectTarget()); err != nil {
				s.log.ErrorContext(ctx, "countdown redirect failed",
					logger.Component("storefront"), logger.Error(err))
			}
			return
		}
		if err := sse.PatchElementTempl(s.views.Countdown(CountdownParams{Remaining: step.Remaining})); err != nil {
			s.log.ErrorContext(ctx, "countdown patch failed",
				logger.Component("storefront"), logger.Error(err))
		}
	})
	if err != nil && !errors.Is(err, http.ErrAbortHandler) {
		// Cancellation is the normal way a countdown ends early.
		s.log.DebugContext(ctx, "countdown interrupted",
			logger.Component("storefront"), logger.Error(err))
	}

	return web.None()
}

func (s *Service) signout(ctx *web.Context, _ struct{}) web.Response {
	r := ctx.Request()
	if cookie, err := r.Cookie(s.cookieName()); err == nil {
		if err := s.sessions.SignOut(ctx, cookie.Value); err != nil {
			s.log.ErrorContext(ctx, "sign out failed",
				logger.Component("storefront"), logger.Error(err))
		}
	}
	identity.ClearCookie(ctx.ResponseWriter(), s.cookieName())

	return web.Redirect(s.redirectTarget())
}

func (s *Service) successPath() string {
	if s.cfg.SuccessPath != "" {
		return s.cfg.SuccessPath
	}
	return "/success"
}

func (s *Service) cancelPath() string {
	if s.cfg.CancelPath != "" {
		return s.cfg.CancelPath
	}
	return "/pricing"
}

func (s *Service) redirectTarget() string {
	if s.cfg.RedirectTarget != "" {
		return s.cfg.RedirectTarget
	}
	return "/"
}

func (s *Service) cookieName() string {
	if s.cfg.CookieName != "" {
		return s.cfg.CookieName
	}
	return identity.DefaultCookieName
}

func (s *Service) countdownStart() int {
	if s.cfg.CountdownStart > 0 {
		return s.cfg.CountdownStart
	}
	return countdown.DefaultStart
}

// requestOrigin derives the absolute origin for checkout return URLs.
func (s *Service) requestOrigin(r *http.Request) string {
	if s.cfg.BaseURL != "" {
		return s.cfg.BaseURL
	}

	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

func sessionEmail(session *identity.Session) string {
	if session == nil {
		return ""
	}
	return session.Email
}
