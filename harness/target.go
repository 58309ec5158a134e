package harness

import (
	"strings"

	"github.com/alessio/shellescape"
)

// Mount maps a host directory to the path where the target container sees it.
type Mount struct {
	Host      string
	Container string
}

// Target describes how to launch the service under test. If Command is set
// it is used verbatim; otherwise a docker run command line is built from
// Docker, Image, and Mounts. Either way the child is launched with its stdin
// attached, which is what --rm -i provides on the docker side.
type Target struct {
	Command []string
	Docker  string
	Image   string
	Mounts  []Mount
}

// Argv returns the command line to execute.
func (t Target) Argv() []string {
	if len(t.Command) > 0 {
		return append([]string(nil), t.Command...)
	}
	docker := t.Docker
	if docker == "" {
		docker = "docker"
	}
	argv := []string{docker, "run", "--rm", "-i"}
	for _, m := range t.Mounts {
		argv = append(argv, "-v", m.Host+":"+m.Container)
	}
	return append(argv, t.Image)
}

// String renders the command line shell-quoted, so log output can be pasted
// into a terminal to reproduce a run by hand.
func (t Target) String() string {
	var quoted []string
	for _, arg := range t.Argv() {
		quoted = append(quoted, shellescape.Quote(arg))
	}
	return strings.Join(quoted, " ")
}
