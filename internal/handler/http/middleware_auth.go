package http

import (
	"net/http"

	"github.com/MKhiriev/go-web-server/internal/logger"
	"github.com/MKhiriev/go-web-server/internal/reqctx"
)

// requireAuth guards a route group. Requests whose identity was resolved
// continue with the identity attached to the context; all others fail with
// ErrUnauthorized. Missing, expired and tampered cookies are indistinguishable
// to the client.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rc, ok := reqctx.FromContext(r.Context())
		if !ok {
			logger.FromRequest(r).Error().Msg("request context is not installed")
			raise(w, r, ErrUnauthorized)
			return
		}

		id, identified := rc.Auth().Identity()
		if !identified {
			logger.FromRequest(r).Debug().
				Str("auth_outcome", rc.Auth().Kind().String()).
				Msg("request rejected by authorization gate")
			raise(w, r, ErrUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(reqctx.WithIdentity(r.Context(), id)))
	})
}
