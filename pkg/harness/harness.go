// Package harness launches the cardano-node, cardano-cli and chairman
// executables for integration tests, captures their output and enforces
// timeouts.
//
// Binaries are resolved from an environment-variable override or from the
// cabal build plan, launched with tracked lifecycle, and waited on with
// distinct timeout and cancellation outcomes. All diagnostic output goes
// through the T sink, which *testing.T satisfies directly.
package harness

import (
	"fmt"
	"os"

	"cosmossdk.io/log"
)

// T is the annotation sink for harness operations. *testing.T satisfies
// it. Fatalf must not return to the caller.
type T interface {
	Helper()
	Logf(format string, args ...any)
	Fatalf(format string, args ...any)
}

// cleanuper is implemented by sinks that support scoped cleanup
// registration, notably *testing.T. Launch registers process cleanup
// through it when available.
type cleanuper interface {
	Cleanup(func())
}

// LogT adapts a structured logger to the T interface for use outside of
// go test, e.g. from the chairman-runner CLI. Fatalf logs at error level
// and exits the process.
type LogT struct {
	logger log.Logger
}

// NewLogT wraps a logger as an annotation sink.
func NewLogT(logger log.Logger) *LogT {
	return &LogT{logger: logger}
}

func (l *LogT) Helper() {}

func (l *LogT) Logf(format string, args ...any) {
	l.logger.Info(fmt.Sprintf(format, args...))
}

func (l *LogT) Fatalf(format string, args ...any) {
	l.logger.Error(fmt.Sprintf(format, args...))
	os.Exit(1)
}
