package jsonrpc

import (
	"encoding/json"

	"github.com/openagentic/textstat/pkg/errors"
)

type RPCResponse struct {
	Message
	Result any              `json:"result,omitempty"`
	Error  *errors.RpcError `json:"error,omitempty"`
}

// NewResult wraps a successful method result in a response envelope that
// mirrors the request ID.
func NewResult(id json.RawMessage, result any) RPCResponse {
	return RPCResponse{
		Message: Message{
			MessageIdentifier: MessageIdentifier{ID: id},
			JSONRPC:           "2.0",
		},
		Result: result,
	}
}

// NewError wraps an RpcError in a response envelope. A nil error is
// flattened to the generic internal error so Code/Message stay mandatory,
// and a nil ID is replaced with null for requests whose ID never parsed.
func NewError(id json.RawMessage, e *errors.RpcError) RPCResponse {
	if e == nil {
		e = errors.ErrInternal
	}
	if id == nil {
		id = json.RawMessage("null")
	}
	return RPCResponse{
		Message: Message{
			MessageIdentifier: MessageIdentifier{ID: id},
			JSONRPC:           "2.0",
		},
		Error: e,
	}
}
