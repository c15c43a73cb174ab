package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-web-server/models"
	"github.com/go-resty/resty/v2"
)

var errorCodes = map[string]error{
	"VALIDATION_FAILED":  ErrBadRequest,
	"NO_AUTH":            ErrUnauthorized,
	"FORBIDDEN":          ErrForbidden,
	"LOGIN_FAIL":         ErrLoginFailed,
	"ENTITY_NOT_FOUND":   ErrNotFound,
	"METHOD_NOT_ALLOWED": ErrMethodNotAllowed,
	"SERVICE_ERROR":      ErrInternalServerError,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil || body.ErrorCode == "" {
		text := strings.TrimSpace(string(resp.Body()))
		if text == "" {
			text = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), text)
	}

	return &APIError{
		StatusCode: resp.StatusCode(),
		Response:   body,
		sentinel:   errorCodes[body.ErrorCode],
	}
}
