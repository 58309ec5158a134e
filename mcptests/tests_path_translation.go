package mcptests

import (
	"github.com/stretchr/testify/require"
)

// DoPathTranslationTests verifies that the target translates Windows-style host
// project paths into their container equivalents before doing any detection work.
// The same project path is sent in both of its likely spellings; a correct target
// resolves both to the identical mounted path.
func DoPathTranslationTests(t *T) {
	t.RequireTool("detect_project_type")

	params := t.Params()
	resolved, ok := containerPath(params.Projects.Plain, params.Mounts)
	require.True(t, ok, "project path %q is not under any configured mount", params.Projects.Plain)

	runDetect := func(path string) func(*T) {
		return func(t *T) {
			reply := t.CallTool("detect_project_type", ProjectArgs(path))
			t.CheckContains("resolves to "+resolved, reply, resolved)
			for _, m := range params.Mounts {
				t.CheckExcludes("no double slash", reply, doubledSlash(m.Container))
			}
			t.CheckContains("detects "+params.ExpectedType, reply, params.ExpectedType)
		}
	}

	t.Run("single backslash", runDetect(params.Projects.Plain))

	t.Run("double backslash (escaped)", runDetect(params.Projects.Escaped))

	t.Run("null target defaults to workdir", func(t *T) {
		reply := t.CallTool("detect_project_type", NoArgs())
		t.CheckContains("defaults to "+params.DefaultWorkdir, reply, params.DefaultWorkdir)
		t.CheckContains("returns Detected types", reply, "Detected types")
	})
}
