// Package mcptests contains the MCP contract tests themselves and their supporting API.
//
// Test harness infrastructure that is not specific to the MCP domain, such as the ability
// to launch the target process and exchange JSON-RPC messages with it over stdio, is in
// the lower-level harness package.
package mcptests
