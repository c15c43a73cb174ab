package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-web-server/internal/logger"
	"github.com/MKhiriev/go-web-server/internal/reqctx"
)

// withLogging writes one access log line per request once the rest of the
// pipeline has finished.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		// nothing written: net/http sends an implicit 200
		status := lw.status
		if status == 0 {
			status = http.StatusOK
		}
		h.metrics.ObserveRequest(method, status, duration)

		event := log.Info().
			Str("uri", uri).
			Str("method", method).
			Int("status", status).
			Dur("duration", duration).
			Int("size", lw.size)

		if rc, ok := reqctx.FromContext(r.Context()); ok {
			outcome := rc.Auth()
			h.metrics.ObserveAuth(outcome.Kind().String())
			event = event.Str("auth_outcome", outcome.Kind().String())
			if id, identified := outcome.Identity(); identified {
				event = event.Int64("user_id", id.UserID)
			}
		}

		event.Send()
	})
}
