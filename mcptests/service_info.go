package mcptests

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/frontlook-admin/mcp-contract-tests/framework"
	"github.com/frontlook-admin/mcp-contract-tests/harness"
	"github.com/frontlook-admin/mcp-contract-tests/protocol"
	"github.com/frontlook-admin/mcp-contract-tests/servicedef"
)

// AllTools lists every tool the standard test suite can exercise. The target does not have
// to expose all of them; tests for a missing tool are skipped.
var AllTools = []string{
	"detect_project_type",
	"check_project_skills",
	"setup_project_skills",
}

// ServiceInfo describes what the target reported when probed with tools/list.
type ServiceInfo struct {
	Tools []string
}

func (s ServiceInfo) HasTool(name string) bool {
	for _, tool := range s.Tools {
		if tool == name {
			return true
		}
	}
	return false
}

// QueryServiceInfo launches the target once and asks it to enumerate its tools. The debug
// log of the exchange goes to logger; progress messages for the person running the suite
// go to output.
func QueryServiceInfo(params servicedef.ServiceParams, logger framework.Logger, output io.Writer) (ServiceInfo, error) {
	driver := harness.NewCallDriver(params.Target(), params.Pacing.Duration(), logger)
	fmt.Fprintf(output, "Probing test target: %s\n", driver.Target())
	reply, arrived, err := driver.InvokeRaw(harness.Invocation{
		Messages: protocol.ToolsListScript(),
		AwaitID:  protocol.CallID,
		Wait:     params.Waits.Probe.Duration(),
	})
	if err != nil {
		return ServiceInfo{}, err
	}
	if !arrived {
		return ServiceInfo{}, fmt.Errorf("target did not answer tools/list within %s", params.Waits.Probe.Duration())
	}
	if reply.IsError() {
		return ServiceInfo{}, fmt.Errorf("target answered tools/list with an error: %s", reply.ErrorMessage())
	}

	tools := reply.ResultToolNames()
	sort.Strings(tools)
	fmt.Fprintf(output, "Target exposes tools: %s\n", strings.Join(tools, ", "))
	return ServiceInfo{Tools: tools}, nil
}
