package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755))
	return path
}

func TestFlexExecCapturesStdout(t *testing.T) {
	t.Setenv(CliEnv, writeScript(t, `echo hello`))

	out := ExecCli(t)
	require.Equal(t, "hello\n", out)
}

func TestFlexExecPassesArguments(t *testing.T) {
	t.Setenv(CliEnv, writeScript(t, `echo "$@"`))

	out := ExecCli(t, "query", "tip")
	require.Equal(t, "query tip\n", out)
}

func TestFlexExecAnnotatesCommand(t *testing.T) {
	script := writeScript(t, `true`)
	t.Setenv(unsetEnv, script)

	rt := &recordT{}
	FlexExec(rt, "whatever", unsetEnv, []string{"--flag"})
	require.Len(t, rt.logs, 1)
	require.Equal(t, "Command: "+script+" --flag", rt.logs[0])
}

func TestFlexExecFailureIsFatalWithContext(t *testing.T) {
	t.Setenv(CliEnv, writeScript(t, `echo partial out
echo boom >&2
exit 2`))

	rt := &recordT{}
	msg := expectFatal(t, rt, func() {
		FlexExec(rt, CliPackage, CliEnv, []string{"bad arg"})
	})

	require.Contains(t, msg, "boom")
	require.Contains(t, msg, "partial out")
	require.Contains(t, msg, "\n2")
	// The logical command uses the package name and quoted arguments,
	// independent of the env override.
	require.Contains(t, msg, `cardano-cli "bad arg"`)
}

func TestFlexExecBuildToolFallback(t *testing.T) {
	t.Setenv(unsetEnv, "")

	old := DefaultBuildTool
	DefaultBuildTool = writeScript(t, `echo "$@"`)
	defer func() { DefaultBuildTool = old }()

	out := FlexExec(t, "cardano-cli", unsetEnv, []string{"query", "tip"})
	require.Equal(t, "exec -- cardano-cli query tip\n", out)
}

func TestFlexExecEmptyStdin(t *testing.T) {
	// cat must see immediate EOF, not hang on an open stdin.
	t.Setenv(CliEnv, writeScript(t, `cat`))

	out := ExecCli(t)
	require.Equal(t, "", out)
}

func TestFlexExecSpawnFailureFatal(t *testing.T) {
	t.Setenv(CliEnv, filepath.Join(t.TempDir(), "missing-binary"))

	rt := &recordT{}
	msg := expectFatal(t, rt, func() {
		ExecCli(rt)
	})
	require.True(t, strings.HasPrefix(msg, "failed to run"), "msg = %q", msg)
}
