package runner_test

import (
	"bytes"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Validium-Chain/validium-cli/internal/runner"
	"github.com/Validium-Chain/validium-cli/internal/testutil"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("uses POSIX shell syntax")
	}
}

func TestShellRunner_Run(t *testing.T) {
	skipOnWindows(t)

	tests := []struct {
		name     string
		command  string
		expected bool
	}{
		{name: "zero exit status", command: "exit 0", expected: true},
		{name: "non-zero exit status", command: "exit 3", expected: false},
		{name: "status one", command: "false", expected: false},
		{name: "killed by signal", command: "kill -KILL $$", expected: false},
		{name: "command not found", command: "definitely-not-a-real-binary-42", expected: false},
		{name: "short-circuit inside the command line", command: "true && exit 7", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, logBuf := testutil.NewBufferedLogger()
			var stdout, stderr bytes.Buffer
			r := runner.NewShellRunner(log, runner.WithStdio(strings.NewReader(""), &stdout, &stderr))

			assert.Equal(t, tt.expected, r.Run(tt.command))

			if tt.expected {
				assert.NotContains(t, logBuf.String(), "Failed to execute the command!")
			} else {
				assert.Equal(t, 1, strings.Count(logBuf.String(), "Failed to execute the command!"))
				assert.Contains(t, logBuf.String(), "[ERROR]:")
			}
		})
	}
}

func TestShellRunner_SpawnFailure(t *testing.T) {
	log, logBuf := testutil.NewBufferedLogger()
	r := runner.NewShellRunner(log, runner.WithShell("/nonexistent/shell-binary", "-c"))

	assert.False(t, r.Run("echo unreachable"))
	assert.Contains(t, logBuf.String(), "Failed to execute the command!")
	assert.Contains(t, logBuf.String(), "echo unreachable")
}

func TestShellRunner_StreamsAreAttached(t *testing.T) {
	skipOnWindows(t)

	log := testutil.NewTestLogger()
	var stdout, stderr bytes.Buffer
	r := runner.NewShellRunner(log, runner.WithStdio(strings.NewReader("from stdin\n"), &stdout, &stderr))

	assert.True(t, r.Run("cat; echo to-stdout; echo to-stderr 1>&2"))
	assert.Equal(t, "from stdin\nto-stdout\n", stdout.String())
	assert.Equal(t, "to-stderr\n", stderr.String())
}

func TestShellRunner_OutputIsNotCaptured(t *testing.T) {
	skipOnWindows(t)

	log := testutil.NewTestLogger()
	var stdout bytes.Buffer
	r := runner.NewShellRunner(log, runner.WithStdio(strings.NewReader(""), &stdout, &stdout))

	assert.False(t, r.Run("echo compiler says no; exit 1"))
	assert.Equal(t, "compiler says no\n", stdout.String())
}

func TestDryRunRunner(t *testing.T) {
	log, logBuf := testutil.NewBufferedLogger()
	r := runner.NewDryRunRunner(log)

	assert.True(t, r.Run("npx hardhat compile"))
	assert.Contains(t, logBuf.String(), "[dry run] npx hardhat compile")
}
