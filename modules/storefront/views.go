package storefront

import (
	"github.com/a-h/templ"

	"github.com/digitaltwinhq/storefront/pkg/catalog"
	"github.com/digitaltwinhq/storefront/pkg/entitlement"
)

// Views holds the templ components the module renders. Templates stay with
// the application; the module only decides which view to render with which
// params.
type Views struct {
	// Full pages
	HomePage    func(HomePageParams) templ.Component
	PricingPage func(PricingPageParams) templ.Component
	SuccessPage func(SuccessPageParams) templ.Component
	LoginPage   func(AuthPageParams) templ.Component
	SignupPage  func(AuthPageParams) templ.Component

	// Fragments, patched over datastar
	StatusPanel   func(StatusPanelParams) templ.Component
	Countdown     func(CountdownParams) templ.Component
	CheckoutError func(CheckoutErrorParams) templ.Component
}

// HomePageParams renders the landing page with the signed-in state and the
// subscription status panel.
type HomePageParams struct {
	SignedIn bool
	Email    string
	Entries  []catalog.Entry
	Status   entitlement.DisplayState
}

// PricingPageParams renders the catalog with buy buttons.
type PricingPageParams struct {
	SignedIn bool
	Entries  []catalog.Entry
}

// SuccessPageParams renders the post-purchase page with the countdown at its
// initial value.
type SuccessPageParams struct {
	Remaining      int
	RedirectTarget string
}

// AuthPageParams renders the login and signup shells. The forms submit to
// the external auth backend.
type AuthPageParams struct {
	RedirectURL string
}

// StatusPanelParams renders the subscription status fragment.
type StatusPanelParams struct {
	Status entitlement.DisplayState
}

// CountdownParams renders one countdown step.
type CountdownParams struct {
	Remaining int
}

// CheckoutErrorParams renders a checkout failure message.
type CheckoutErrorParams struct {
	Message string
}

func (v *Views) validate() {
	if v == nil {
		panic("storefront: views are required")
	}
	switch {
	case v.HomePage == nil:
		panic("storefront: HomePage view is required")
	case v.PricingPage == nil:
		panic("storefront: PricingPage view is required")
	case v.SuccessPage == nil:
		panic("storefront: SuccessPage view is required")
	case v.LoginPage == nil:
		panic("storefront: LoginPage view is required")
	case v.SignupPage == nil:
		panic("storefront: SignupPage view is required")
	case v.StatusPanel == nil:
		panic("storefront: StatusPanel view is required")
	case v.Countdown == nil:
		panic("storefront: Countdown view is required")
	case v.CheckoutError == nil:
		panic("storefront: CheckoutError view is required")
	}
}
