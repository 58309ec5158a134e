package harness

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"time"
)

const terminateGracePeriod = 2 * time.Second

// Process is a running instance of the target with stdin and stdout attached
// as pipes. Stderr is discarded: the contract under test covers only the
// line protocol on stdout.
type Process struct {
	cmd      *exec.Cmd
	Stdin    io.WriteCloser
	Stdout   io.ReadCloser
	stopOnce sync.Once
}

// StartProcess launches the target. A non-nil error means the child could
// not be started at all; anything that happens after a successful start is
// observed only through the stdout stream.
func StartProcess(target Target) (*Process, error) {
	argv := target.Argv()
	cmd := exec.Command(argv[0], argv[1:]...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("could not start target (%s): %w", target, err)
	}
	return &Process{cmd: cmd, Stdin: stdin, Stdout: stdout}, nil
}

// Terminate asks the child to exit and returns immediately. Stdin is closed
// first so well-behaved stdio servers see EOF; escalation to a hard kill
// after a grace period, and reaping, happen in the background. It is safe to
// call more than once.
func (p *Process) Terminate() {
	p.stopOnce.Do(func() {
		_ = p.Stdin.Close()
		proc := p.cmd.Process
		if proc == nil {
			return
		}
		_ = proc.Signal(os.Interrupt)
		go func() {
			time.Sleep(terminateGracePeriod)
			_ = proc.Kill()
		}()
		go func() {
			_ = p.cmd.Wait()
		}()
	})
}
