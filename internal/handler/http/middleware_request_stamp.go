package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-web-server/internal/reqctx"
	"github.com/rs/zerolog"
)

const requestIDHeader = "X-Request-ID"

// withRequestStamp assigns every request a fresh id and receive time and
// attaches a request-scoped logger carrying that id. An X-Request-ID sent by
// the client is never used as the id; it is only logged.
func (h *Handler) withRequestStamp(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rc := reqctx.New(h.idGenerator.Generate(), time.Now())

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			c = c.Str("request_id", rc.RequestID)
			if clientID := r.Header.Get(requestIDHeader); clientID != "" {
				c = c.Str("client_request_id", clientID)
			}
			return c
		})

		ctx := reqctx.WithContext(l.WithContext(r.Context()), rc)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
