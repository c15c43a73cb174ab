package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrEncodingResponse is returned when a response body cannot be encoded.
// Nothing has been written to the client at that point, so the caller can
// still render an error response of its own.
var ErrEncodingResponse = errors.New("error encoding response body")

// WriteJSON encodes data and writes it with the given status and an
// application/json content type. It returns the number of body bytes
// written.
//
// Encoding happens before the header is committed: on failure w is left
// untouched and an error wrapping [ErrEncodingResponse] is returned.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrEncodingResponse, err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(body)
}

// WriteText writes text as a text/plain body.
func WriteText(w http.ResponseWriter, text string, statusCode int) (int, error) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(statusCode)

	return w.Write([]byte(text))
}
