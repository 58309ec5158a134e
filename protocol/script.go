package protocol

import "gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

// ProtocolVersion is the MCP revision the harness declares during initialize.
const ProtocolVersion = "2025-11-25"

const (
	clientName    = "mcp-contract-tests"
	clientVersion = "1.0.0"
)

// Fixed request ids used by the standard scripts. Every script is sent to a
// fresh child process, so the ids never need to vary.
const (
	InitializeID = 1
	CallID       = 2
)

const (
	methodInitialize  = "initialize"
	methodInitialized = "notifications/initialized"
	methodToolsCall   = "tools/call"
	methodToolsList   = "tools/list"
)

func initializeParams() InitializeParams {
	return InitializeParams{
		ProtocolVersion: ProtocolVersion,
		ClientInfo:      ClientInfo{Name: clientName, Version: clientVersion},
	}
}

// ToolCallScript is the standard three-message conversation: initialize,
// the initialized notification, then a single tools/call. The reply of
// interest is the one with CallID.
func ToolCallScript(tool string, args ldvalue.Value) []Message {
	return []Message{
		Request(InitializeID, methodInitialize, initializeParams()),
		Notification(methodInitialized, struct{}{}),
		Request(CallID, methodToolsCall, ToolCallParams{Name: tool, Arguments: args}),
	}
}

// ToolsListScript performs the same handshake but asks the target to
// enumerate its tools instead of calling one.
func ToolsListScript() []Message {
	return []Message{
		Request(InitializeID, methodInitialize, initializeParams()),
		Notification(methodInitialized, struct{}{}),
		Request(CallID, methodToolsList, nil),
	}
}
