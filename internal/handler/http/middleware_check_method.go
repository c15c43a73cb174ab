// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-web-server/internal/logger"
)

// methodNotAllowed is registered as the router's MethodNotAllowed handler.
// A path that exists but is requested with an unsupported method fails with
// KindMethodNotAllowed and is rendered like every other failure.
func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) error {
	logger.FromRequest(r).Debug().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("method is not registered for this route")

	return errMethodNotAllowed
}
