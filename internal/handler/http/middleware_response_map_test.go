// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-web-server/internal/cookies"
	"github.com/MKhiriev/go-web-server/internal/logger"
	"github.com/MKhiriev/go-web-server/internal/reqctx"
	"github.com/MKhiriev/go-web-server/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// serveMapped runs next behind the cookie jar and the response normalizer,
// with a request context already stamped.
func serveMapped(t *testing.T, h *Handler, r *http.Request, next http.Handler) *httptest.ResponseRecorder {
	t.Helper()

	ctx := logger.Nop().Logger.WithContext(r.Context())
	ctx = reqctx.WithContext(ctx, reqctx.New(testRequestID, time.Now()))

	rec := httptest.NewRecorder()
	cookies.Middleware(h.withResponseMap(next)).ServeHTTP(rec, r.WithContext(ctx))
	return rec
}

func TestWithResponseMap_SuccessPassesThrough(t *testing.T) {
	h := newTestHandler(t, nil, nil)

	next := h.handle(func(w http.ResponseWriter, r *http.Request) error {
		jar, _ := cookies.FromContext(r.Context())
		jar.Set(&http.Cookie{Name: "flavour", Value: "oat"})
		w.Header().Set("X-Custom", "yes")
		w.WriteHeader(http.StatusCreated)
		_, err := w.Write([]byte("created"))
		return err
	})

	rec := serveMapped(t, h, httptest.NewRequest(http.MethodGet, "/", nil), next)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "created", rec.Body.String())
	assert.Equal(t, testRequestID, rec.Header().Get(requestIDHeader))
	assert.Equal(t, "yes", rec.Header().Get("X-Custom"))
	assert.NotNil(t, findCookie(rec.Result().Cookies(), "flavour"))
}

func TestWithResponseMap_ErrorIsNormalized(t *testing.T) {
	h := newTestHandler(t, nil, nil)

	next := h.handle(func(w http.ResponseWriter, r *http.Request) error {
		jar, _ := cookies.FromContext(r.Context())
		jar.Set(&http.Cookie{Name: "flavour", Value: "oat"})
		w.Header().Set("X-Custom", "yes")
		w.Header().Set("Content-Type", "text/html")
		return newError(KindForbidden, "", errors.New("owner mismatch"))
	})

	rec := serveMapped(t, h, httptest.NewRequest(http.MethodGet, "/", nil), next)

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Empty(t, rec.Header().Get("X-Custom"))
	assert.Empty(t, rec.Header().Values("Set-Cookie"))
	assert.Equal(t, testRequestID, rec.Header().Get(requestIDHeader))

	resp := decodeErrorResponse(t, rec.Body.Bytes())
	assert.Equal(t, http.StatusForbidden, resp.Status)
	assert.Equal(t, "FORBIDDEN", resp.ErrorCode)
	assert.Equal(t, "access denied", resp.Message)
	assert.Equal(t, testRequestID, resp.RequestID)
	assert.NotContains(t, rec.Body.String(), "owner mismatch")
}

func TestWithResponseMap_PanicBecomesInternal(t *testing.T) {
	h := newTestHandler(t, nil, nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("nil map write")
	})

	rec := serveMapped(t, h, httptest.NewRequest(http.MethodGet, "/", nil), next)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeErrorResponse(t, rec.Body.Bytes())
	assert.Equal(t, "SERVICE_ERROR", resp.ErrorCode)
	assert.Equal(t, testRequestID, resp.RequestID)
	assert.NotContains(t, rec.Body.String(), "nil map")
}

func TestWithResponseMap_AbortHandlerIsRepanicked(t *testing.T) {
	h := newTestHandler(t, nil, nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	})

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		serveMapped(t, h, httptest.NewRequest(http.MethodGet, "/", nil), next)
	})
}

func TestWithResponseMap_FirstRaisedErrorWins(t *testing.T) {
	h := newTestHandler(t, nil, nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raise(w, r, ErrUnauthorized)
		raise(w, r, errors.New("later failure"))
	})

	rec := serveMapped(t, h, httptest.NewRequest(http.MethodGet, "/", nil), next)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "NO_AUTH", decodeErrorResponse(t, rec.Body.Bytes()).ErrorCode)
}

func TestWithResponseMap_ErrorAfterCommitIsNotRendered(t *testing.T) {
	h := newTestHandler(t, nil, nil)

	next := h.handle(func(w http.ResponseWriter, r *http.Request) error {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("partial"))
		return errors.New("stream broke")
	})

	rec := serveMapped(t, h, httptest.NewRequest(http.MethodGet, "/", nil), next)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "partial", rec.Body.String())
}

func TestWithResponseMap_CancelledRequestRendersNothing(t *testing.T) {
	h := newTestHandler(t, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	r := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)

	next := h.handle(func(w http.ResponseWriter, r *http.Request) error {
		jar, _ := cookies.FromContext(r.Context())
		jar.Set(&http.Cookie{Name: "flavour", Value: "oat"})
		cancel()
		return r.Context().Err()
	})

	rec := serveMapped(t, h, r, next)

	assert.Empty(t, rec.Body.String())
	assert.Empty(t, rec.Header().Values("Set-Cookie"))
}

func TestRaise_WithoutSlotRendersDirectly(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r = r.WithContext(reqctx.WithContext(r.Context(), reqctx.New(testRequestID, time.Now())))
	rec := httptest.NewRecorder()

	raise(rec, r, newError(KindValidationFailed, "bad input", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeErrorResponse(t, rec.Body.Bytes())
	assert.Equal(t, "bad input", resp.Message)
	assert.Equal(t, testRequestID, resp.RequestID)
	assert.Equal(t, testRequestID, rec.Header().Get(requestIDHeader))
}

func TestRestoreHeader(t *testing.T) {
	snapshot := http.Header{"X-Request-Id": {"a"}}
	h := http.Header{"X-Request-Id": {"b"}, "X-Extra": {"c"}}

	restoreHeader(h, snapshot)

	assert.Equal(t, http.Header{"X-Request-Id": {"a"}}, h)

	h.Add("X-Request-Id", "d")
	assert.Equal(t, []string{"a"}, snapshot["X-Request-Id"])
}

func TestWithResponseMap_UnencodableBodyBecomesInternalError(t *testing.T) {
	h := newTestHandler(t, nil, nil)

	next := h.handle(func(w http.ResponseWriter, r *http.Request) error {
		_, err := utils.WriteJSON(w, map[string]any{"result": make(chan int)}, http.StatusOK)
		return err
	})

	rec := serveMapped(t, h, httptest.NewRequest(http.MethodGet, "/", nil), next)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	resp := decodeErrorResponse(t, rec.Body.Bytes())
	assert.Equal(t, "SERVICE_ERROR", resp.ErrorCode)
	assert.Equal(t, testRequestID, resp.RequestID)
}
