package jsonrpc

import "encoding/json"

// MessageIdentifier carries the identifier shared by every JSON-RPC
// message. Responses must mirror the ID of the request they relate to;
// when the request ID could not be read the response carries null.
type MessageIdentifier struct {
	ID json.RawMessage `json:"id,omitempty"` // string | number | null
}

// Message is the base envelope embedded in every JSON-RPC message.
type Message struct {
	MessageIdentifier
	// JSONRPC specifies the JSON-RPC version. Must be "2.0"
	JSONRPC string `json:"jsonrpc,omitempty"`
}
