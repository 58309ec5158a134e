package harness

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/frontlook-admin/mcp-contract-tests/protocol"
)

const (
	helperEnvVar     = "GO_HELPER_MCP_SERVER"
	helperModeEnvVar = "GO_HELPER_MCP_MODE"
)

// helperTarget points the driver at this test binary re-running itself as a
// canned MCP server (see TestHelperMCPServer).
func helperTarget(t *testing.T, mode string) Target {
	t.Setenv(helperEnvVar, "1")
	t.Setenv(helperModeEnvVar, mode)
	return Target{Command: []string{os.Args[0], "-test.run=TestHelperMCPServer"}}
}

func fastDriver(target Target) *CallDriver {
	return NewCallDriver(target, time.Millisecond, nil)
}

func callInvocation(tool string) Invocation {
	args := ldvalue.ObjectBuild().Set("targetProject", ldvalue.String(`G:\Repos\demo`)).Build()
	return Invocation{
		Messages: protocol.ToolCallScript(tool, args),
		AwaitID:  protocol.CallID,
		Wait:     10 * time.Second,
	}
}

func TestDriverReturnsReplyText(t *testing.T) {
	driver := fastDriver(helperTarget(t, "echo"))
	out, err := driver.Invoke(callInvocation("detect_project_type"))
	require.NoError(t, err)
	assert.Equal(t, `called detect_project_type with G:\Repos\demo`, out)
}

func TestDriverMissingWhenTargetIsSilent(t *testing.T) {
	driver := fastDriver(helperTarget(t, "silent"))
	inv := callInvocation("detect_project_type")
	inv.Wait = 300 * time.Millisecond
	out, err := driver.Invoke(inv)
	require.NoError(t, err)
	assert.Equal(t, Missing, out)
}

func TestDriverMissingOnShapelessReply(t *testing.T) {
	driver := fastDriver(helperTarget(t, "shapeless"))
	out, err := driver.Invoke(callInvocation("detect_project_type"))
	require.NoError(t, err)
	assert.Equal(t, Missing, out)
}

func TestDriverMissingOnErrorReply(t *testing.T) {
	driver := fastDriver(helperTarget(t, "error"))
	out, err := driver.Invoke(callInvocation("no_such_tool"))
	require.NoError(t, err)
	assert.Equal(t, Missing, out)
}

func TestDriverIgnoresInterleavedNoise(t *testing.T) {
	driver := fastDriver(helperTarget(t, "noisy"))
	out, err := driver.Invoke(callInvocation("detect_project_type"))
	require.NoError(t, err)
	assert.Equal(t, `called detect_project_type with G:\Repos\demo`, out)
}

func TestDriverPropagatesStartFailure(t *testing.T) {
	driver := fastDriver(Target{Command: []string{"/nonexistent/mcp-target-binary"}})
	_, err := driver.Invoke(callInvocation("detect_project_type"))
	require.Error(t, err)
}

func TestDriverRawReplyForToolsList(t *testing.T) {
	driver := fastDriver(helperTarget(t, "echo"))
	reply, arrived, err := driver.InvokeRaw(Invocation{
		Messages: protocol.ToolsListScript(),
		AwaitID:  protocol.CallID,
		Wait:     10 * time.Second,
	})
	require.NoError(t, err)
	require.True(t, arrived)
	assert.Equal(t, []string{"detect_project_type", "check_project_skills", "setup_project_skills"},
		reply.ResultToolNames())
}

// TestHelperMCPServer is not a real test: driver tests re-exec the test
// binary with -test.run pointing here, and the process then behaves as a
// canned MCP server on stdin/stdout until its input closes.
func TestHelperMCPServer(t *testing.T) {
	if os.Getenv(helperEnvVar) != "1" {
		t.Skip("helper process used by driver tests")
	}
	runHelperServer(os.Getenv(helperModeEnvVar))
	os.Exit(0)
}

func runHelperServer(mode string) {
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		var req struct {
			ID     interface{}            `json:"id"`
			Method string                 `json:"method"`
			Params map[string]interface{} `json:"params"`
		}
		if err := json.Unmarshal(scanner.Bytes(), &req); err != nil || req.ID == nil {
			continue
		}
		if mode == "silent" {
			continue
		}
		if mode == "noisy" {
			fmt.Println("log: processing request")
			fmt.Println(`{"jsonrpc":"2.0","method":"notifications/progress","params":{}}`)
		}
		switch req.Method {
		case "initialize":
			writeHelperReply(req.ID, map[string]interface{}{"capabilities": map[string]interface{}{}})
		case "tools/list":
			writeHelperReply(req.ID, map[string]interface{}{"tools": []map[string]interface{}{
				{"name": "detect_project_type"},
				{"name": "check_project_skills"},
				{"name": "setup_project_skills"},
			}})
		case "tools/call":
			switch mode {
			case "shapeless":
				writeHelperReply(req.ID, map[string]interface{}{"ok": true})
			case "error":
				writeHelperError(req.ID, -32601, "method not found")
			default:
				name, _ := req.Params["name"].(string)
				args, _ := req.Params["arguments"].(map[string]interface{})
				text := "called " + name
				if target, _ := args["targetProject"].(string); target != "" {
					text += " with " + target
				}
				writeHelperReply(req.ID, map[string]interface{}{
					"content": []map[string]interface{}{{"type": "text", "text": text}},
				})
			}
		}
	}
}

func writeHelperReply(id interface{}, result interface{}) {
	line, _ := json.Marshal(map[string]interface{}{"jsonrpc": "2.0", "id": id, "result": result})
	fmt.Println(string(line))
}

func writeHelperError(id interface{}, code int, message string) {
	line, _ := json.Marshal(map[string]interface{}{"jsonrpc": "2.0", "id": id,
		"error": map[string]interface{}{"code": code, "message": message}})
	fmt.Println(string(line))
}
