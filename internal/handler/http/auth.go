package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-web-server/internal/app"
	"github.com/MKhiriev/go-web-server/internal/cookies"
	"github.com/MKhiriev/go-web-server/internal/logger"
	"github.com/MKhiriev/go-web-server/internal/service"
	"github.com/MKhiriev/go-web-server/internal/store"
	"github.com/MKhiriev/go-web-server/internal/utils"
	"github.com/MKhiriev/go-web-server/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		return newError(KindValidationFailed, app.MsgInvalidJSON, err)
	}

	log.Debug().Str("login", user.Login).Msg("login attempt")

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			return newError(KindValidationFailed, app.MsgInvalidDataProvided, err)
		case errors.Is(err, store.ErrNoUserWasFound) || errors.Is(err, service.ErrWrongPassword):
			return newError(KindLoginFailed, app.MsgInvalidLoginPassword, err)
		default:
			return err
		}
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		return err
	}

	jar, ok := cookies.FromContext(ctx)
	if !ok {
		return errJarNotInstalled
	}
	jar.Set(h.cookiePolicy.Cookie(token.SignedString, token.ExpiresAt))

	_, err = utils.WriteJSON(w, models.LoginResponse{Result: models.LoginResult{Success: true}}, http.StatusOK)
	return err
}

// logoff stages the removal of the identity cookie. It is public so that a
// client holding an expired cookie can still clear it.
func (h *Handler) logoff(w http.ResponseWriter, r *http.Request) error {
	var req models.LogoffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return newError(KindValidationFailed, app.MsgInvalidJSON, err)
	}
	if !req.Logoff {
		return newError(KindValidationFailed, app.MsgLogoffNotConfirmed, nil)
	}

	jar, ok := cookies.FromContext(r.Context())
	if !ok {
		return errJarNotInstalled
	}
	jar.Set(h.cookiePolicy.Removal())

	_, err := utils.WriteJSON(w, models.LoginResponse{Result: models.LoginResult{LoggedOff: true}}, http.StatusOK)
	return err
}
