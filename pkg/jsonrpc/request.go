package jsonrpc

import "encoding/json"

// RPCRequest is a single JSON-RPC 2.0 call. Params stay raw until the
// method handler knows which shape to decode them into.
type RPCRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"` // string | number | null
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}
