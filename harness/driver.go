package harness

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/frontlook-admin/mcp-contract-tests/framework"
	"github.com/frontlook-admin/mcp-contract-tests/protocol"
)

// Missing is the result reported when the target never produced a usable
// answer: either no reply with the awaited id arrived within the wait
// window, or one did but had no result.content[0].text payload.
const Missing = "MISSING"

const (
	DefaultPacing = 100 * time.Millisecond
	DefaultWait   = 10 * time.Second
)

// Invocation is one scripted conversation with a fresh instance of the
// target: the ordered messages to send, the id whose reply the caller wants,
// and how long to wait for it.
type Invocation struct {
	Messages []protocol.Message
	AwaitID  int
	Wait     time.Duration
}

// CallDriver launches the target once per invocation and runs the script
// against it. Processes and stores are never reused across invocations, so
// scenarios cannot contaminate each other.
type CallDriver struct {
	target Target
	pacing time.Duration
	logger framework.Logger
}

func NewCallDriver(target Target, pacing time.Duration, logger framework.Logger) *CallDriver {
	if pacing <= 0 {
		pacing = DefaultPacing
	}
	if logger == nil {
		logger = framework.NullLogger()
	}
	return &CallDriver{target: target, pacing: pacing, logger: logger}
}

func (d *CallDriver) Target() Target {
	return d.target
}

// Invoke runs one scripted conversation and returns the extracted reply
// text, or Missing. The returned error is non-nil only if the conversation
// could not happen at all (the child would not start, or a message could
// not be encoded); target misbehavior after that point is never an error.
func (d *CallDriver) Invoke(inv Invocation) (string, error) {
	reply, arrived, err := d.InvokeRaw(inv)
	if err != nil {
		return "", err
	}
	if !arrived {
		return Missing, nil
	}
	text, ok := reply.ResultText()
	if !ok {
		if reply.IsError() {
			d.logger.Printf("Target answered id=%d with an error: %s", inv.AwaitID, reply.ErrorMessage())
		} else {
			d.logger.Printf("Reply for id=%d had no result.content[0].text: %s",
				inv.AwaitID, truncateForLog(reply.String()))
		}
		return Missing, nil
	}
	return text, nil
}

// InvokeRaw is Invoke without the payload extraction: it reports whether a
// reply with the awaited id arrived, and hands back the whole reply so the
// caller can traverse shapes Invoke does not know about (tools/list).
func (d *CallDriver) InvokeRaw(inv Invocation) (protocol.Reply, bool, error) {
	wait := inv.Wait
	if wait <= 0 {
		wait = DefaultWait
	}
	logger := framework.LoggerWithPrefix(d.logger, fmt.Sprintf("[inv %s] ", uuid.Must(uuid.NewV7())))
	logger.Printf("Starting target: %s", d.target)

	proc, err := StartProcess(d.target)
	if err != nil {
		return protocol.Reply{}, false, err
	}
	defer proc.Terminate()

	store := NewResultStore()
	StartLineReader(proc.Stdout, store, logger)

	for _, m := range inv.Messages {
		line, err := m.Encode()
		if err != nil {
			return protocol.Reply{}, false, fmt.Errorf("could not encode message for %q: %w", m.Method, err)
		}
		logger.Printf("Sending: %s", line)
		if _, err := proc.Stdin.Write(append(line, '\n')); err != nil {
			// The child may already have answered before dying; keep waiting.
			logger.Printf("Write failed, abandoning rest of script: %s", err)
			break
		}
		time.Sleep(d.pacing)
	}

	reply, arrived := store.Await(protocol.IDString(inv.AwaitID), wait)
	if !arrived {
		logger.Printf("No reply with id=%d within %s", inv.AwaitID, wait)
	}
	return reply, arrived, nil
}
