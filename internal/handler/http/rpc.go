// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-web-server/internal/app"
	"github.com/MKhiriev/go-web-server/internal/logger"
	"github.com/MKhiriev/go-web-server/internal/reqctx"
	"github.com/MKhiriev/go-web-server/internal/utils"
	"github.com/MKhiriev/go-web-server/models"
)

// rpcMethod executes one RPC method on behalf of id. params is the raw
// "params" member of the request and may be empty.
type rpcMethod func(ctx context.Context, id reqctx.Identity, params json.RawMessage) (any, error)

func (h *Handler) rpc(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, ok := reqctx.IdentityFromContext(ctx)
	if !ok {
		return ErrUnauthorized
	}

	var req models.RPCRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return newError(KindValidationFailed, app.MsgInvalidJSON, err)
	}

	method, ok := h.rpcMethods[req.Method]
	if !ok {
		return newError(KindValidationFailed, fmt.Sprintf("unknown method %q", req.Method), errUnknownRPCMethod)
	}

	log.Debug().Str("rpc_method", req.Method).Msg("dispatching rpc call")

	result, err := method(ctx, id, req.Params)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, models.RPCResponse{ID: req.ID, Result: result}, http.StatusOK)
	return err
}

func (h *Handler) taskMethods() map[string]rpcMethod {
	return map[string]rpcMethod{
		"create_task": func(ctx context.Context, id reqctx.Identity, params json.RawMessage) (any, error) {
			var p models.TaskCreateParams
			if err := decodeParams(params, &p); err != nil {
				return nil, err
			}
			return h.services.TaskService.CreateTask(ctx, id.UserID, p.Title)
		},
		"list_tasks": func(ctx context.Context, id reqctx.Identity, _ json.RawMessage) (any, error) {
			tasks, err := h.services.TaskService.ListTasks(ctx, id.UserID)
			if err != nil {
				return nil, err
			}
			if tasks == nil {
				tasks = []models.Task{}
			}
			return tasks, nil
		},
		"get_task": func(ctx context.Context, id reqctx.Identity, params json.RawMessage) (any, error) {
			var p models.TaskIDParams
			if err := decodeParams(params, &p); err != nil {
				return nil, err
			}
			return h.services.TaskService.GetTask(ctx, id.UserID, p.ID)
		},
		"update_task": func(ctx context.Context, id reqctx.Identity, params json.RawMessage) (any, error) {
			var p models.TaskUpdateParams
			if err := decodeParams(params, &p); err != nil {
				return nil, err
			}
			return h.services.TaskService.UpdateTask(ctx, id.UserID, p.ID, p.Patch)
		},
		"delete_task": func(ctx context.Context, id reqctx.Identity, params json.RawMessage) (any, error) {
			var p models.TaskIDParams
			if err := decodeParams(params, &p); err != nil {
				return nil, err
			}
			if err := h.services.TaskService.DeleteTask(ctx, id.UserID, p.ID); err != nil {
				return nil, err
			}
			return map[string]bool{"deleted": true}, nil
		},
	}
}

// decodeParams decodes params into v. Empty params leave v untouched.
func decodeParams(params json.RawMessage, v any) error {
	if len(params) == 0 {
		return nil
	}
	if err := json.Unmarshal(params, v); err != nil {
		return newError(KindValidationFailed, app.MsgInvalidParams, err)
	}
	return nil
}
