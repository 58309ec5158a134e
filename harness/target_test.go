package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTargetDockerArgv(t *testing.T) {
	target := Target{
		Image:  "skillmcp:local",
		Mounts: []Mount{{Host: `G:\Repos`, Container: "/g/Repos"}},
	}
	assert.Equal(t,
		[]string{"docker", "run", "--rm", "-i", "-v", `G:\Repos:/g/Repos`, "skillmcp:local"},
		target.Argv())
}

func TestTargetCustomDockerPath(t *testing.T) {
	target := Target{Docker: "/usr/local/bin/podman", Image: "x"}
	assert.Equal(t, []string{"/usr/local/bin/podman", "run", "--rm", "-i", "x"}, target.Argv())
}

func TestTargetCommandOverridesDocker(t *testing.T) {
	target := Target{
		Command: []string{"/tmp/fake-server", "-mode", "echo"},
		Image:   "ignored:image",
	}
	assert.Equal(t, []string{"/tmp/fake-server", "-mode", "echo"}, target.Argv())
}

func TestTargetStringIsShellQuoted(t *testing.T) {
	target := Target{Command: []string{"/opt/my tools/server", "--flag"}}
	assert.Equal(t, `'/opt/my tools/server' --flag`, target.String())
}

func TestTargetArgvIsACopy(t *testing.T) {
	target := Target{Command: []string{"a", "b"}}
	argv := target.Argv()
	argv[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, target.Command)
}
