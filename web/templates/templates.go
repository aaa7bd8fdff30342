// Package templates provides the default storefront markup as templ
// components built in code. Applications with their own design system can
// ignore this package and inject their own views.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/digitaltwinhq/storefront/modules/storefront"
	"github.com/digitaltwinhq/storefront/pkg/catalog"
)

// StorefrontViews returns the full default view set for the storefront
// module.
func StorefrontViews() *storefront.Views {
	return &storefront.Views{
		HomePage:      HomePage,
		PricingPage:   PricingPage,
		SuccessPage:   SuccessPage,
		LoginPage:     LoginPage,
		SignupPage:    SignupPage,
		StatusPanel:   StatusPanel,
		Countdown:     Countdown,
		CheckoutError: CheckoutError,
	}
}

func component(render func(w io.Writer) error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return render(w)
	})
}

func esc(s string) string { return templ.EscapeString(s) }

func page(w io.Writer, title string, body func(io.Writer) error) error {
	if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8"/>
<meta name="viewport" content="width=device-width, initial-scale=1"/>
<title>%s</title>
<script type="module" src="https://cdn.jsdelivr.net/gh/starfederation/datastar/bundles/datastar.js"></script>
<link rel="stylesheet" href="/static/app.css"/>
</head>
<body>`, esc(title)); err != nil {
		return err
	}
	if err := body(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, `</body></html>`)
	return err
}

func nav(w io.Writer, signedIn bool) error {
	_, err := io.WriteString(w, `<nav class="nav"><a href="/" class="brand">Digital Twin Platform</a><div class="links"><a href="/pricing">Pricing</a>`)
	if err != nil {
		return err
	}
	if signedIn {
		_, err = io.WriteString(w, `<form method="post" action="/signout" class="inline"><button type="submit">Sign Out</button></form>`)
	} else {
		_, err = io.WriteString(w, `<a href="/login">Sign In</a><a href="/signup" class="cta">Get Started</a>`)
	}
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, `</div></nav>`)
	return err
}

// HomePage renders the landing page with the subscription status panel.
func HomePage(p storefront.HomePageParams) templ.Component {
	return component(func(w io.Writer) error {
		return page(w, "Digital Twin Platform", func(w io.Writer) error {
			if err := nav(w, p.SignedIn); err != nil {
				return err
			}
			if _, err := io.WriteString(w, `<header class="hero"><h1>Your Business, Digitally Twinned</h1><p>Model, monitor, and optimize your operations in real time.</p><a href="/pricing" class="cta">View Pricing</a></header>`); err != nil {
				return err
			}
			if p.SignedIn {
				if err := StatusPanel(storefront.StatusPanelParams{Status: p.Status}).Render(context.Background(), w); err != nil {
					return err
				}
			}
			return productGrid(w, p.Entries, false)
		})
	})
}

// PricingPage renders the catalog with buy buttons.
func PricingPage(p storefront.PricingPageParams) templ.Component {
	return component(func(w io.Writer) error {
		return page(w, "Pricing — Digital Twin Platform", func(w io.Writer) error {
			if err := nav(w, p.SignedIn); err != nil {
				return err
			}
			if _, err := io.WriteString(w, `<h1>Pricing</h1><div id="checkout-error" class="error" aria-live="polite"></div>`); err != nil {
				return err
			}
			return productGrid(w, p.Entries, true)
		})
	})
}

func productGrid(w io.Writer, entries []catalog.Entry, withBuy bool) error {
	if _, err := io.WriteString(w, `<section class="products">`); err != nil {
		return err
	}
	for _, e := range entries {
		suffix := ""
		if e.Mode == catalog.ModeRecurring {
			suffix = "/month"
		}
		if _, err := fmt.Fprintf(w,
			`<article class="product"><h2>%s</h2><p>%s</p><p class="price">%s%s</p>`,
			esc(e.Name), esc(e.Description), esc(e.Price.Format()), suffix,
		); err != nil {
			return err
		}
		if withBuy {
			if _, err := fmt.Fprintf(w,
				`<form method="post" action="/checkout" data-on-submit="@post('/checkout', {contentType: 'form'})"><input type="hidden" name="price_id" value="%s"/><button type="submit">Buy Now</button></form>`,
				esc(e.PriceID),
			); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</article>`); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</section>`)
	return err
}

// StatusPanel renders the subscription status fragment.
func StatusPanel(p storefront.StatusPanelParams) templ.Component {
	return component(func(w io.Writer) error {
		s := p.Status
		if _, err := fmt.Fprintf(w,
			`<div id="subscription-status" class="status status-%s"><span class="product">%s</span><span class="label">%s</span>`,
			esc(string(s.Tone)), esc(s.ProductName), esc(s.Label),
		); err != nil {
			return err
		}
		if s.Canceling {
			if _, err := io.WriteString(w, `<span class="badge">Canceling</span>`); err != nil {
				return err
			}
		}
		if s.HasPeriod() {
			if _, err := fmt.Fprintf(w, `<span class="period">%s %s</span>`, esc(s.PeriodPhrase), esc(s.PeriodDate)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// SuccessPage renders the post-purchase confirmation. On load datastar
// reconnects to /success for the live countdown stream.
func SuccessPage(p storefront.SuccessPageParams) templ.Component {
	return component(func(w io.Writer) error {
		return page(w, "Purchase Complete — Digital Twin Platform", func(w io.Writer) error {
			_, err := fmt.Fprintf(w,
				`<main class="success" data-on-load="@get('/success')"><h1>Thank you for your purchase!</h1><p>Redirecting in <span id="countdown">%d</span> seconds…</p><a href="%s">Go now</a></main>`,
				p.Remaining, esc(p.RedirectTarget),
			)
			return err
		})
	})
}

// Countdown renders one countdown step.
func Countdown(p storefront.CountdownParams) templ.Component {
	return component(func(w io.Writer) error {
		_, err := fmt.Fprintf(w, `<span id="countdown">%d</span>`, p.Remaining)
		return err
	})
}

// CheckoutError renders a checkout failure message.
func CheckoutError(p storefront.CheckoutErrorParams) templ.Component {
	return component(func(w io.Writer) error {
		_, err := fmt.Fprintf(w, `<div id="checkout-error" class="error" aria-live="polite">%s</div>`, esc(p.Message))
		return err
	})
}

// LoginPage renders the sign-in shell. Authentication itself is handled by
// the external auth backend the form posts to.
func LoginPage(p storefront.AuthPageParams) templ.Component {
	return authPage("Sign In", "/auth/login", "Don't have an account?", "/signup", "Sign up", p)
}

// SignupPage renders the registration shell.
func SignupPage(p storefront.AuthPageParams) templ.Component {
	return authPage("Create Account", "/auth/signup", "Already have an account?", "/login", "Sign in", p)
}

func authPage(title, action, altText, altHref, altLabel string, p storefront.AuthPageParams) templ.Component {
	return component(func(w io.Writer) error {
		return page(w, title+" — Digital Twin Platform", func(w io.Writer) error {
			if err := nav(w, false); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, `<main class="auth"><h1>%s</h1><form method="post" action="%s">`, esc(title), esc(action)); err != nil {
				return err
			}
			if p.RedirectURL != "" {
				if _, err := fmt.Fprintf(w, `<input type="hidden" name="redirect" value="%s"/>`, esc(p.RedirectURL)); err != nil {
					return err
				}
			}
			_, err := fmt.Fprintf(w,
				`<label>Email<input type="email" name="email" required/></label><label>Password<input type="password" name="password" required/></label><button type="submit">%s</button></form><p>%s <a href="%s">%s</a></p></main>`,
				esc(title), esc(altText), esc(altHref), esc(altLabel),
			)
			return err
		})
	})
}
