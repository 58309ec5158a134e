// Package protocol defines the wire format spoken to the target: JSON-RPC
// 2.0 messages, one JSON document per line, over the target's stdin and
// stdout. It knows how to build the fixed message scripts the harness sends
// and how to decode and pick apart the replies, but nothing about processes
// or test logic.
package protocol
