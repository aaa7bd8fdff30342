package storefront

import "time"

// Config holds the module configuration.
type Config struct {
	// CookieName is the session cookie resolved by the identity middleware.
	CookieName string `env:"STOREFRONT_COOKIE_NAME" envDefault:"storefront_session"`

	// BaseURL overrides the request origin when building checkout return
	// URLs, e.g. behind a proxy that rewrites Host. Empty means derive from
	// the request.
	BaseURL string `env:"STOREFRONT_BASE_URL"`

	// SuccessPath and CancelPath are appended to the origin as checkout
	// return targets.
	SuccessPath string `env:"STOREFRONT_SUCCESS_PATH" envDefault:"/success"`
	CancelPath  string `env:"STOREFRONT_CANCEL_PATH" envDefault:"/pricing"`

	// RedirectTarget is where the post-purchase countdown navigates to.
	RedirectTarget string `env:"STOREFRONT_REDIRECT_TARGET" envDefault:"/"`

	// CountdownStart and CountdownInterval shape the post-purchase
	// countdown. Defaults match the product behavior: five seconds, one
	// tick per second.
	CountdownStart    int           `env:"STOREFRONT_COUNTDOWN_START" envDefault:"5"`
	CountdownInterval time.Duration `env:"STOREFRONT_COUNTDOWN_INTERVAL" envDefault:"1s"`
}
