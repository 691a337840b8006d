package harness

import (
	"fmt"
	"testing"
)

// recordT captures annotations and fatal failures so tests can assert on
// them. Fatalf panics with a sentinel, mirroring testing.T's no-return
// contract; expectFatal recovers it.
type recordT struct {
	logs  []string
	fatal string
}

type fatalSentinel struct{}

func (r *recordT) Helper() {}

func (r *recordT) Logf(format string, args ...any) {
	r.logs = append(r.logs, fmt.Sprintf(format, args...))
}

func (r *recordT) Fatalf(format string, args ...any) {
	r.fatal = fmt.Sprintf(format, args...)
	panic(fatalSentinel{})
}

// expectFatal runs fn and returns the fatal message it raised, failing the
// real test if it did not fail at all.
func expectFatal(t *testing.T, rt *recordT, fn func()) (msg string) {
	t.Helper()
	defer func() {
		if rec := recover(); rec != nil {
			if _, ok := rec.(fatalSentinel); !ok {
				panic(rec)
			}
			msg = rt.fatal
		}
	}()
	fn()
	t.Fatal("expected a fatal failure, got none")
	return ""
}

func TestRecordTCapturesFatal(t *testing.T) {
	rt := &recordT{}
	expectFatal(t, rt, func() { rt.Fatalf("boom %d", 7) })
	if rt.fatal != "boom 7" {
		t.Fatalf("fatal = %q", rt.fatal)
	}
}
