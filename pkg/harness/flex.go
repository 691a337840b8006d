package harness

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"strings"

	"github.com/bezirg/cardano-node/internal/helpers"
)

// DefaultBuildTool runs package executables when no env override is set.
// The runner CLI overrides it from configuration.
var DefaultBuildTool = "cabal"

// flexResolve picks the actual invocation for an ad hoc synchronous run:
// the env override directly, or the build tool's exec indirection. This is
// deliberately simpler than the plan-file lookup used for long-lived
// processes.
func flexResolve(pkg, envVar string, args []string) Binary {
	if path := os.Getenv(envVar); path != "" {
		return Binary{Path: path, Args: args}
	}
	return Binary{
		Path: DefaultBuildTool,
		Args: append([]string{"exec", "--", pkg}, args...),
	}
}

// FlexExec resolves a package executable, runs it to completion with empty
// stdin, and returns its captured stdout verbatim. A non-zero exit is
// fatal to the calling test, with the logical command, full stdout, full
// stderr and the exit code in the failure message.
func FlexExec(t T, pkg, envVar string, args []string) string {
	t.Helper()

	bin := flexResolve(pkg, envVar, args)
	t.Logf("Command: %s %s", bin.Path, strings.Join(bin.Args, " "))

	cmd := exec.Command(bin.Path, bin.Args...)
	cmd.Stdin = strings.NewReader("")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			t.Fatalf("failed to run %s: %v", bin.Path, err)
			return ""
		}
		quoted := make([]string, len(args))
		for i, arg := range args {
			quoted[i] = helpers.QuoteArg(arg)
		}
		t.Fatalf("Process exited with non-zero exit-code\n"+
			"--- command ---\n%s %s\n"+
			"--- stdout ---\n%s\n"+
			"--- stderr ---\n%s\n"+
			"--- exit code ---\n%d",
			pkg, strings.Join(quoted, " "),
			stdout.String(), stderr.String(), exitErr.ExitCode())
		return ""
	}
	return stdout.String()
}

// ExecCli runs cardano-cli with the given arguments and returns its stdout.
func ExecCli(t T, args ...string) string {
	t.Helper()
	return FlexExec(t, CliPackage, CliEnv, args)
}
