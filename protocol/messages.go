package protocol

import (
	"encoding/json"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const jsonRPCVersion = "2.0"

// Message is one outgoing JSON-RPC message. Requests carry an id;
// notifications must not, so ID is typed loosely and omitted when nil.
type Message struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id,omitempty"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params,omitempty"`
}

// Request builds a JSON-RPC request with the given numeric id.
func Request(id int, method string, params interface{}) Message {
	return Message{JSONRPC: jsonRPCVersion, ID: id, Method: method, Params: params}
}

// Notification builds a JSON-RPC notification (no id, so no reply is ever
// expected for it).
func Notification(method string, params interface{}) Message {
	return Message{JSONRPC: jsonRPCVersion, Method: method, Params: params}
}

// Encode renders the message as a single JSON line, without the trailing
// newline.
func (m Message) Encode() ([]byte, error) {
	return json.Marshal(m)
}

// ClientInfo identifies this harness to the target during the handshake.
type ClientInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// InitializeParams is the body of the initialize request. Capabilities is
// deliberately an empty object: the harness advertises nothing.
type InitializeParams struct {
	ProtocolVersion string     `json:"protocolVersion"`
	Capabilities    struct{}   `json:"capabilities"`
	ClientInfo      ClientInfo `json:"clientInfo"`
}

// ToolCallParams is the body of a tools/call request.
type ToolCallParams struct {
	Name      string        `json:"name"`
	Arguments ldvalue.Value `json:"arguments"`
}
