package http

import (
	"net/http"

	"github.com/MKhiriev/go-web-server/internal/reqctx"
	"github.com/MKhiriev/go-web-server/internal/utils"
	"github.com/MKhiriev/go-web-server/models"
)

func (h *Handler) whoAmI(w http.ResponseWriter, r *http.Request) error {
	id, ok := reqctx.IdentityFromContext(r.Context())
	if !ok {
		return ErrUnauthorized
	}

	_, err := utils.WriteJSON(w, models.WhoAmIResponse{
		UserID:    id.UserID,
		Login:     id.Login,
		IssuedAt:  id.IssuedAt,
		ExpiresAt: id.ExpiresAt,
	}, http.StatusOK)
	return err
}
