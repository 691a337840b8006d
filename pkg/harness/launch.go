package harness

import (
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
)

// StreamMode controls how a standard stream of a launched process is wired.
type StreamMode int

const (
	// StreamInherit shares the parent's stream.
	StreamInherit StreamMode = iota
	// StreamPipe exposes a pipe on the Process handle.
	StreamPipe
	// StreamDiscard connects the stream to the null device.
	StreamDiscard
)

// CommandSpec describes a process to launch: either an argv vector
// (Path + Args) or an opaque shell command string. Immutable once
// constructed; Shell and Path are mutually exclusive.
type CommandSpec struct {
	Path  string
	Args  []string
	Shell string
	Dir   string
	Env   []string

	Stdin  StreamMode
	Stdout StreamMode
	Stderr StreamMode
}

// CommandLine returns the human-readable form used in annotations: the
// argv joined by spaces without quoting, or the literal shell string.
func (s CommandSpec) CommandLine() string {
	if s.Shell != "" {
		return s.Shell
	}
	return strings.Join(append([]string{s.Path}, s.Args...), " ")
}

// ShellCommand builds a CommandSpec for an opaque shell command string.
func ShellCommand(command string) CommandSpec {
	return CommandSpec{Shell: command}
}

// Command builds a CommandSpec for a resolved binary.
func Command(bin Binary) CommandSpec {
	return CommandSpec{Path: bin.Path, Args: bin.Args}
}

// Process is a handle to a launched child process. Streams configured as
// StreamPipe are exposed on the handle; open pipes are closed when the
// registered cleanup runs. The child is reaped by a background wait, so
// no zombie is left however the owning scope exits.
type Process struct {
	// ID is a short run identifier correlating annotations for this launch.
	ID string

	Stdin  io.WriteCloser
	Stdout io.ReadCloser
	Stderr io.ReadCloser

	cmd     *exec.Cmd
	done    chan struct{}
	release sync.Once
}

// Launch spawns the process described by spec and registers its cleanup
// with the sink's scope when the sink supports it (as *testing.T does).
// Before spawning it annotates the effective working directory and the
// command line. OS-level spawn failures are returned as-is.
func Launch(t T, spec CommandSpec) (*Process, error) {
	t.Helper()

	cwd := spec.Dir
	if cwd == "" {
		if wd, err := os.Getwd(); err == nil {
			cwd = wd
		}
	}
	t.Logf("Process cwd: %s", cwd)
	t.Logf("Process cmd: %s", spec.CommandLine())

	var cmd *exec.Cmd
	if spec.Shell != "" {
		cmd = exec.Command("/bin/sh", "-c", spec.Shell)
	} else {
		cmd = exec.Command(spec.Path, spec.Args...)
	}
	cmd.Dir = spec.Dir
	if len(spec.Env) > 0 {
		cmd.Env = append(os.Environ(), spec.Env...)
	}

	p := &Process{
		ID:   uuid.NewString()[:8],
		cmd:  cmd,
		done: make(chan struct{}),
	}

	// Pipes are created by hand rather than through cmd.StdinPipe and
	// friends: the background reaper calls cmd.Wait, which would close
	// exec-managed pipes underneath a caller still reading them. Here the
	// parent ends belong to the Process handle alone and are closed only
	// by Release. childEnds are the child's ends, closed in the parent
	// once the child holds them.
	var childEnds []*os.File
	closeAll := func(files []*os.File) {
		for _, f := range files {
			f.Close()
		}
	}
	var parentEnds []*os.File

	switch spec.Stdin {
	case StreamPipe:
		pr, pw, err := os.Pipe()
		if err != nil {
			closeAll(parentEnds)
			closeAll(childEnds)
			return nil, err
		}
		cmd.Stdin = pr
		p.Stdin = pw
		childEnds = append(childEnds, pr)
		parentEnds = append(parentEnds, pw)
	case StreamInherit:
		cmd.Stdin = os.Stdin
	}
	switch spec.Stdout {
	case StreamPipe:
		pr, pw, err := os.Pipe()
		if err != nil {
			closeAll(parentEnds)
			closeAll(childEnds)
			return nil, err
		}
		cmd.Stdout = pw
		p.Stdout = pr
		childEnds = append(childEnds, pw)
		parentEnds = append(parentEnds, pr)
	case StreamInherit:
		cmd.Stdout = os.Stdout
	}
	switch spec.Stderr {
	case StreamPipe:
		pr, pw, err := os.Pipe()
		if err != nil {
			closeAll(parentEnds)
			closeAll(childEnds)
			return nil, err
		}
		cmd.Stderr = pw
		p.Stderr = pr
		childEnds = append(childEnds, pw)
		parentEnds = append(parentEnds, pr)
	case StreamInherit:
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Start(); err != nil {
		closeAll(parentEnds)
		closeAll(childEnds)
		return nil, err
	}
	// The child owns its ends now; drop ours so readers see EOF when it
	// exits.
	closeAll(childEnds)

	// Reap in the background so waits reduce to a channel receive and an
	// abandoned process never turns into a zombie. The wait error is
	// recoverable from ProcessState; outcomes are derived there.
	go func() {
		_ = cmd.Wait()
		close(p.done)
	}()

	if c, ok := t.(cleanuper); ok {
		c.Cleanup(p.Release)
	}
	return p, nil
}

// Release closes any pipes still open on the handle. It runs at most once;
// the scoped cleanup registered by Launch calls it automatically, and
// callers may invoke it earlier themselves. The child is not signalled.
func (p *Process) Release() {
	p.release.Do(func() {
		if p.Stdin != nil {
			p.Stdin.Close()
		}
		if p.Stdout != nil {
			p.Stdout.Close()
		}
		if p.Stderr != nil {
			p.Stderr.Close()
		}
	})
}

// Pid returns the OS process ID.
func (p *Process) Pid() int {
	return p.cmd.Process.Pid
}

// IsRunning reports whether the child is still alive.
func (p *Process) IsRunning() bool {
	select {
	case <-p.done:
		return false
	default:
	}
	// Signal 0 probes liveness without affecting the process.
	return p.cmd.Process.Signal(syscall.Signal(0)) == nil
}

// Stop asks the child to terminate with SIGTERM and escalates to SIGKILL
// if it has not exited within the grace period. Used by the runner CLI to
// shut nodes down after a chairman run; tests normally let processes exit
// on their own.
func (p *Process) Stop(grace time.Duration) {
	select {
	case <-p.done:
		return
	default:
	}

	if err := p.cmd.Process.Signal(syscall.SIGTERM); err != nil {
		// Already gone.
		return
	}
	select {
	case <-p.done:
	case <-time.After(grace):
		p.cmd.Process.Kill()
		<-p.done
	}
}
