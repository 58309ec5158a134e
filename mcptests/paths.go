package mcptests

import (
	"strings"

	"github.com/frontlook-admin/mcp-contract-tests/servicedef"
)

// containerPath predicts where a host project path should appear inside the target
// container: doubled backslashes are collapsed first, since a JSON-escaped path may
// arrive that way, then the matching mount prefix is swapped for its container side
// and the remaining separators flipped.
func containerPath(hostPath string, mounts []servicedef.MountDef) (string, bool) {
	collapsed := strings.ReplaceAll(hostPath, `\\`, `\`)
	for _, m := range mounts {
		if !strings.HasPrefix(collapsed, m.Host) {
			continue
		}
		rest := strings.TrimPrefix(collapsed, m.Host)
		return m.Container + strings.ReplaceAll(rest, `\`, "/"), true
	}
	return "", false
}

// doubledSlash returns the mount's container path with its final separator doubled,
// the artifact a target produces when it concatenates an extra separator while
// translating. Replies must never contain it.
func doubledSlash(containerMount string) string {
	i := strings.LastIndex(containerMount, "/")
	if i < 0 {
		return containerMount + "//"
	}
	return containerMount[:i+1] + "/" + containerMount[i+1:]
}
