package harness

import (
	"context"
	"fmt"
	"time"
)

// OutcomeKind tags the result of waiting on a process.
type OutcomeKind int

const (
	// Exited means the process terminated with an exit code.
	Exited OutcomeKind = iota
	// TimedOut means the bounded wait's deadline elapsed first.
	TimedOut
	// Cancelled means the wait was abandoned, or the process terminated
	// without an exit code (killed by a signal). No code is known.
	Cancelled
)

// Outcome is the result of waiting on a process. TimedOut and Cancelled
// are ordinary values for the caller to branch on, never errors; retry
// policy belongs to the caller.
type Outcome struct {
	Kind OutcomeKind
	Code int
}

// ExitCode returns the exit code and whether one is known.
func (o Outcome) ExitCode() (int, bool) {
	return o.Code, o.Kind == Exited
}

func (o Outcome) String() string {
	switch o.Kind {
	case Exited:
		return fmt.Sprintf("exited %d", o.Code)
	case TimedOut:
		return "timed out"
	default:
		return "no exit code"
	}
}

// exitOutcome reads the terminal state of an already-reaped process.
func (p *Process) exitOutcome() Outcome {
	state := p.cmd.ProcessState
	if state == nil || !state.Exited() {
		return Outcome{Kind: Cancelled}
	}
	return Outcome{Kind: Exited, Code: state.ExitCode()}
}

// Wait blocks until the process exits. Cancelling ctx abandons the wait
// and reports Cancelled; the process itself keeps running and can be
// waited on again.
func (p *Process) Wait(ctx context.Context) Outcome {
	select {
	case <-p.done:
		return p.exitOutcome()
	case <-ctx.Done():
		return Outcome{Kind: Cancelled}
	}
}

// WaitSeconds blocks up to the given number of wall-clock seconds for the
// process to exit. The deadline timer races the exit wait; whichever
// completes first wins and the loser is dropped without disturbing the
// process. The outcome is annotated before it is returned.
func (p *Process) WaitSeconds(t T, seconds int) Outcome {
	t.Helper()

	timer := time.NewTimer(time.Duration(seconds) * time.Second)
	defer timer.Stop()

	select {
	case <-p.done:
		out := p.exitOutcome()
		if code, ok := out.ExitCode(); ok {
			t.Logf("process exited %d", code)
		} else {
			t.Logf("no exit code")
		}
		return out
	case <-timer.C:
		t.Logf("timed out waiting for process to exit")
		return Outcome{Kind: TimedOut}
	}
}
