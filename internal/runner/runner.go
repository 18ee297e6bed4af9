package runner

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/rs/zerolog"
)

// Runner executes one shell command line and reports whether it exited with status zero.
type Runner interface {
	Run(command string) bool
}

// ShellRunner hands command lines to the platform shell with the caller's stdio attached.
type ShellRunner struct {
	log       *zerolog.Logger
	shell     string
	shellFlag string
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
}

type Option func(*ShellRunner)

// WithShell overrides the shell binary and the flag that introduces the command string.
func WithShell(shell, flag string) Option {
	return func(r *ShellRunner) {
		r.shell = shell
		r.shellFlag = flag
	}
}

// WithStdio replaces the streams the child process is attached to.
func WithStdio(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(r *ShellRunner) {
		r.stdin = stdin
		r.stdout = stdout
		r.stderr = stderr
	}
}

func NewShellRunner(log *zerolog.Logger, opts ...Option) *ShellRunner {
	shell, flag := "sh", "-c"
	if runtime.GOOS == "windows" {
		shell, flag = "cmd", "/C"
	}

	r := &ShellRunner{
		log:       log,
		shell:     shell,
		shellFlag: flag,
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run blocks until the child exits. Non-zero exit, death by signal and failure to start
// all come back as false, after a single error line describing the cause.
func (r *ShellRunner) Run(command string) bool {
	r.log.Debug().Msgf("Running command: %s %s %q", r.shell, r.shellFlag, command)

	// #nosec G204 -- the command line is built from fixed templates plus user arguments on purpose
	cmd := exec.Command(r.shell, r.shellFlag, command)
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	// Ctrl-C reaches the whole foreground process group. The child decides how to react and
	// its exit status is reported like any other. SIGTERM is held back too so the CLI never
	// exits ahead of its child.
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupts)

	if err := cmd.Run(); err != nil {
		r.log.Error().Msgf("Failed to execute the command! %v", fmt.Errorf("command failed: %s: %w", command, err))
		return false
	}

	r.log.Debug().Msgf("Command succeeded: %s", command)
	return true
}

// DryRunRunner logs the command lines it is given and reports success without running them.
type DryRunRunner struct {
	log *zerolog.Logger
}

func NewDryRunRunner(log *zerolog.Logger) *DryRunRunner {
	return &DryRunRunner{log: log}
}

func (r *DryRunRunner) Run(command string) bool {
	r.log.Info().Msgf("[dry run] %s", command)
	return true
}
