package mcptests

import (
	"fmt"
	"time"

	"github.com/frontlook-admin/mcp-contract-tests/framework"
	"github.com/frontlook-admin/mcp-contract-tests/harness"
	"github.com/frontlook-admin/mcp-contract-tests/protocol"
	"github.com/frontlook-admin/mcp-contract-tests/servicedef"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/stretchr/testify/require"
)

// T represents a test or subtest in our MCP test suite.
//
// It implements the same basic functionality as Go's testing.T, but in an environment that is outside
// of the Go test runner, and with some extra features such as debug logging that are convenient for
// our use case. Those features are provided by our lower-level framework package.
//
// It also provides functionality that is specific to MCP testing. Every tool call launches a fresh
// target process, so each call sees the target's cold-start behavior and no state leaks between
// calls. The full message exchange for each call is recorded in the test's debug log.
//
// To make test assertions, you can use the assert and require packages, passing the *T as if it were
// a *testing.T. Reply content is usually verified with the Check methods instead, which record each
// expectation as a counted pass/fail check without stopping the test.
type T struct {
	context *framework.Context
	params  servicedef.ServiceParams
	info    ServiceInfo
}

func newTestScope(context *framework.Context, params servicedef.ServiceParams, info ServiceInfo) *T {
	return &T{
		context: context,
		params:  params,
		info:    info,
	}
}

// Errorf is called by assertions to log a test failure. It does not cause an immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately exit. The methods in
// the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Run runs a subtest. This is equivalent to the Run method of testing.T.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		action(newTestScope(c, t.params, t.info))
	})
}

// Debug logs some debug output for the test. The output will be passed to the test logger at
// the end of the test.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

// Params returns the deployment parameters for the target under test.
func (t *T) Params() servicedef.ServiceParams {
	return t.params
}

// RequireTool skips this test if the target did not list the specified tool when probed.
func (t *T) RequireTool(name string) {
	if !t.info.HasTool(name) {
		t.context.SkipWithReason(fmt.Sprintf("target does not expose tool %q", name))
	}
}

// CheckContains records a pass/fail check on whether the expected text appears in the reply.
// A failed check marks the test failed but does not stop it, so one bad reply still produces
// a full report of everything that was wrong with it.
func (t *T) CheckContains(label, reply, expected string) bool {
	return t.context.CheckSubstring(label, reply, expected)
}

// CheckExcludes records a pass/fail check on whether the unwanted text is absent from the reply.
func (t *T) CheckExcludes(label, reply, unwanted string) bool {
	return t.context.CheckExcludes(label, reply, unwanted)
}

// FailCheck records a check that has already failed for a reason other than reply content,
// such as an unreadable file.
func (t *T) FailCheck(label, detail string) {
	t.context.FailCheck(label, detail)
}

// CallTool launches a fresh target process, performs the initialize handshake, calls the
// specified tool, and returns the text of its reply. If no usable reply arrives within the
// default wait, the sentinel harness.Missing is returned; content checks then fail with the
// actual exchange preserved in the debug log.
//
// The test fails and immediately exits if the target process cannot be started.
func (t *T) CallTool(tool string, args ldvalue.Value) string {
	return t.CallToolWait(tool, args, t.params.Waits.Default.Duration())
}

// CallToolWait is CallTool with an explicit reply wait, for tools that do real work before
// answering.
func (t *T) CallToolWait(tool string, args ldvalue.Value, wait time.Duration) string {
	driver := harness.NewCallDriver(t.params.Target(), t.params.Pacing.Duration(), t.context.DebugLogger())
	reply, err := driver.Invoke(harness.Invocation{
		Messages: protocol.ToolCallScript(tool, args),
		AwaitID:  protocol.CallID,
		Wait:     wait,
	})
	require.NoError(t, err)
	return reply
}

// ProjectArgs builds the tool arguments for a call that targets the specified host project path.
func ProjectArgs(path string) ldvalue.Value {
	return ldvalue.ObjectBuild().Set("targetProject", ldvalue.String(path)).Build()
}

// NoArgs is the empty arguments object, for a call that relies on the target's defaults.
func NoArgs() ldvalue.Value {
	return ldvalue.ObjectBuild().Build()
}
