package http

import (
	"net/http"

	"github.com/MKhiriev/go-web-server/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) error {
	_, err := utils.WriteText(w, h.version, http.StatusOK)
	return err
}
