package models

import "encoding/json"

// RPCRequest is the JSON-RPC style envelope accepted by the protected
// /api/rpc endpoint.
type RPCRequest struct {
	// ID is echoed back in the response so clients can correlate calls.
	ID any `json:"id,omitempty"`

	// Method names the operation to dispatch (e.g. "list_tasks").
	Method string `json:"method"`

	// Params holds the method-specific payload, decoded lazily by the
	// selected method.
	Params json.RawMessage `json:"params,omitempty"`
}

// RPCResponse is the success envelope returned by /api/rpc.
type RPCResponse struct {
	ID     any `json:"id,omitempty"`
	Result any `json:"result"`
}

// TaskCreateParams are the params of the "create_task" method.
type TaskCreateParams struct {
	Title string `json:"title"`
}

// TaskIDParams are the params of methods addressing a single task.
type TaskIDParams struct {
	ID int64 `json:"id"`
}

// TaskUpdateParams are the params of the "update_task" method.
type TaskUpdateParams struct {
	ID    int64     `json:"id"`
	Patch TaskPatch `json:"data"`
}
