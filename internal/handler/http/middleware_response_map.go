// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-web-server/internal/cookies"
	"github.com/MKhiriev/go-web-server/internal/logger"
	"github.com/MKhiriev/go-web-server/internal/reqctx"
	"github.com/MKhiriev/go-web-server/internal/utils"
	"github.com/MKhiriev/go-web-server/models"
)

// HandlerFunc is a route handler that reports failures by returning them.
// Returned errors are rendered by withResponseMap.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

type failureSlotKey struct{}

// failureSlot holds the first error raised while serving a request.
type failureSlot struct {
	err error
}

func withFailureSlot(ctx context.Context, slot *failureSlot) context.Context {
	return context.WithValue(ctx, failureSlotKey{}, slot)
}

func failureSlotFrom(ctx context.Context) (*failureSlot, bool) {
	slot, ok := ctx.Value(failureSlotKey{}).(*failureSlot)
	return slot, ok && slot != nil
}

// raise records err as the failure of the request. The first raised error
// wins. Without an installed slot the error is rendered straight away.
func raise(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	slot, ok := failureSlotFrom(r.Context())
	if !ok {
		writeError(w, r, toPipelineError(err))
		return
	}
	if slot.err == nil {
		slot.err = err
	}
}

// handle adapts an error-returning handler to [http.HandlerFunc].
func (h *Handler) handle(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			raise(w, r, err)
		}
	}
}

// withResponseMap is the only place where failures are turned into
// responses. Every failure, including panics in inner handlers, ends up as a
// models.ErrorResponse carrying the request id.
func (h *Handler) withResponseMap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		w.Header().Set(requestIDHeader, reqctx.RequestID(ctx))
		snapshot := w.Header().Clone()

		slot := &failureSlot{}
		rw := &responseWriter{ResponseWriter: w}
		r = r.WithContext(withFailureSlot(ctx, slot))

		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				if slot.err == nil {
					slot.err = fmt.Errorf("panic: %v", rec)
				}
			}
			h.finish(rw, r, slot.err, snapshot)
		}()

		next.ServeHTTP(rw, r)
	})
}

func (h *Handler) finish(w *responseWriter, r *http.Request, err error, snapshot http.Header) {
	log := logger.FromRequest(r)

	if ctxErr := r.Context().Err(); ctxErr != nil {
		if jar, ok := cookies.FromContext(r.Context()); ok {
			jar.Discard()
		}
		log.Warn().Err(errors.Join(err, ctxErr)).Msg("request cancelled by client, nothing rendered")
		return
	}

	if err == nil {
		return
	}

	if w.wroteHeader {
		log.Error().Err(err).Int("status", w.status).Msg("handler failed after the response was committed")
		return
	}

	if jar, ok := cookies.FromContext(r.Context()); ok {
		jar.Discard()
	}
	restoreHeader(w.Header(), snapshot)

	perr := toPipelineError(err)
	h.metrics.ObserveFailure(perr.Kind.String())
	writeError(w, r, perr)
}

// writeError renders perr as the JSON error body and logs its internal cause.
func writeError(w http.ResponseWriter, r *http.Request, perr *PipelineError) {
	log := logger.FromRequest(r)

	event := log.Warn()
	if perr.Kind.Status() >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.
		Str("error_kind", perr.Kind.String()).
		Str("error_code", perr.Kind.Code()).
		AnErr("cause", perr.Err).
		Msg(perr.Message)

	requestID := reqctx.RequestID(r.Context())
	if w.Header().Get(requestIDHeader) == "" && requestID != "" {
		w.Header().Set(requestIDHeader, requestID)
	}

	body := models.ErrorResponse{
		Status:    perr.Kind.Status(),
		ErrorCode: perr.Kind.Code(),
		Message:   perr.Message,
		RequestID: requestID,
	}
	if _, err := utils.WriteJSON(w, body, perr.Kind.Status()); err != nil {
		log.Err(err).Msg("error writing error response")
	}
}

// restoreHeader resets h to the state captured in snapshot.
func restoreHeader(h, snapshot http.Header) {
	for key := range h {
		if _, ok := snapshot[key]; !ok {
			h.Del(key)
		}
	}
	for key, values := range snapshot {
		h[key] = append([]string(nil), values...)
	}
}
