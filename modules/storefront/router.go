package storefront

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/digitaltwinhq/storefront/pkg/identity"
	"github.com/digitaltwinhq/storefront/pkg/web"
)

// Router mounts the storefront routes with session resolution applied.
func Router(s *Service) chi.Router {
	r := chi.NewRouter()
	r.Use(identity.Middleware(s.sessions, s.cookieName()))

	r.Get("/", web.Wrap(s.home))
	r.Get("/pricing", web.Wrap(s.pricing))
	r.Get("/success", web.Wrap(s.success))
	r.Get("/status", web.Wrap(s.status))

	r.Get("/login", web.Wrap(s.login,
		web.WithBinders[authPageRequest](web.BindQuery()),
	))
	r.Get("/signup", web.Wrap(s.signup,
		web.WithBinders[authPageRequest](web.BindQuery()),
	))

	r.Post("/checkout", web.Wrap(s.buy,
		web.WithBinders[buyRequest](web.BindForm()),
	))
	r.Post("/signout", web.Wrap(s.signout))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, s.redirectTarget(), http.StatusSeeOther)
	})

	return r
}
