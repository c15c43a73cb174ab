package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-web-server/internal/cookies"
	"github.com/MKhiriev/go-web-server/internal/logger"
	"github.com/MKhiriev/go-web-server/internal/reqctx"
	"github.com/MKhiriev/go-web-server/models"
	"github.com/rs/zerolog"
)

// resolveContext turns the identity cookie into an auth outcome on the
// request context. It never rejects a request; deciding what an outcome
// means is left to requireAuth.
func (h *Handler) resolveContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		rc, ok := reqctx.FromContext(r.Context())
		if !ok {
			log.Error().Msg("request context is not installed, skipping identity resolution")
			next.ServeHTTP(w, r)
			return
		}
		if rc.Auth().Kind() != reqctx.Unresolved {
			log.Warn().Str("auth_outcome", rc.Auth().Kind().String()).Msg("identity already resolved")
			next.ServeHTTP(w, r)
			return
		}

		jar, ok := cookies.FromContext(r.Context())
		if !ok {
			log.Error().Err(errJarNotInstalled).Msg("resolving identity without cookies")
		}

		outcome := h.resolveOutcome(r, jar)
		if err := rc.Resolve(outcome); err != nil {
			log.Warn().Err(err).Send()
		}

		event := log.Debug().Str("auth_outcome", outcome.Kind().String())
		if reason := outcome.Reason(); reason != nil {
			event = event.AnErr("reason", reason)
		}
		event.Msg("identity resolved")

		if id, identified := outcome.Identity(); identified {
			l := log.GetChildLogger()
			l.UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Int64("user_id", id.UserID)
			})
			r = r.WithContext(l.WithContext(r.Context()))
		}

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) resolveOutcome(r *http.Request, jar *cookies.Jar) reqctx.AuthOutcome {
	if jar == nil {
		return reqctx.AbsentOutcome()
	}

	cookie, ok := jar.Get(h.cookiePolicy.Name)
	if !ok || cookie.Value == "" {
		return reqctx.AbsentOutcome()
	}

	ctx := r.Context()
	token, err := h.services.AuthService.ParseToken(ctx, cookie.Value)
	if err != nil {
		jar.Set(h.cookiePolicy.Removal())
		return reqctx.InvalidOutcome(err)
	}

	if h.refreshWindow == 0 || time.Until(token.ExpiresAt) < h.refreshWindow {
		h.refreshCookie(r, jar, token)
	}

	return reqctx.IdentifiedOutcome(reqctx.Identity{
		UserID:    token.UserID,
		Login:     token.Login,
		IssuedAt:  token.IssuedAt,
		ExpiresAt: token.ExpiresAt,
	})
}

// refreshCookie stages a freshly signed cookie. The current token stays valid
// when signing fails.
func (h *Handler) refreshCookie(r *http.Request, jar *cookies.Jar, token models.Token) {
	fresh, err := h.services.AuthService.CreateToken(r.Context(), models.User{
		UserID: token.UserID,
		Login:  token.Login,
	})
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("identity cookie refresh failed")
		return
	}
	jar.Set(h.cookiePolicy.Cookie(fresh.SignedString, fresh.ExpiresAt))
}
