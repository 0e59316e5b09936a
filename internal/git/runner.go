package git

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/kballard/go-shellquote"

	nesterrors "github.com/alphabetum/git-nest/internal/errors"
	"github.com/alphabetum/git-nest/internal/output"
)

// Runner executes a single git invocation. Implementations run the
// subprocess to completion before returning; there is no overlap between
// invocations and no timeout, so a hung git call hangs the caller.
type Runner interface {
	Run(ctx context.Context, args ...string) error
}

// ExecRunner is the real Runner: it spawns the git binary with stdio
// inherited from this process, so git's own output and prompts reach the
// user untouched.
type ExecRunner struct {
	// Dir is the working directory for the subprocess. Empty means the
	// current directory.
	Dir string

	// Env is the subprocess environment. Nil means inherit this
	// process's environment.
	Env []string

	// Log records each invocation at debug level. May be nil.
	Log *output.Logger

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner creates an ExecRunner wired to the process's stdio.
func NewExecRunner(log *output.Logger) *ExecRunner {
	return &ExecRunner{
		Log:    log,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run executes git with the given arguments and blocks until it exits.
// A non-zero exit is returned as a *errors.GitCommandError carrying the
// subprocess's exit code; failures to start the binary at all are
// returned as-is so the caller can report them.
func (r *ExecRunner) Run(ctx context.Context, args ...string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	if r.Dir != "" {
		cmd.Dir = r.Dir
	}
	if r.Env != nil {
		cmd.Env = r.Env
	}
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	r.debugf("+ git %s", shellquote.Join(args...))

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		r.debugf("git exited with status %d", code)
		return nesterrors.NewGitCommandError(args, code, err)
	}

	// git did not run at all (missing binary, bad working directory).
	return err
}

func (r *ExecRunner) debugf(format string, args ...interface{}) {
	if r.Log != nil {
		r.Log.Debug(format, args...)
	}
}
