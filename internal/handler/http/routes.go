package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-web-server/internal/cookies"
)

// Init builds the router. Middleware runs outermost first: request stamp,
// access log, cookie jar, response mapping, identity resolution. Only the
// protected /api group passes through requireAuth.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		h.withRequestStamp,
		h.withLogging,
		cookies.Middleware,
		h.withResponseMap,
		h.resolveContext,
	)

	router.NotFound(http.FileServer(http.Dir(h.staticDir)).ServeHTTP)
	router.MethodNotAllowed(h.handle(h.methodNotAllowed))

	if h.exposeMetrics {
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Post("/login", h.handle(h.login))
			r.Post("/logoff", h.handle(h.logoff))
			r.Get("/version", h.handle(h.getServerVersion))
		})

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.requireAuth)
			r.Post("/rpc", h.handle(h.rpc))
			r.Get("/whoami", h.handle(h.whoAmI))
		})
	})

	return router
}
