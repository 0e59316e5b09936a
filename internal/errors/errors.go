// Package errors provides the typed errors used across git-nest.
// Use errors.As() to recover the specific failure, and ExitStatus to map
// any error to the process exit code.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// UsageError reports a missing or malformed required argument. It is
// raised by a handler before any subprocess runs, so no repository
// mutation can have happened yet.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// NewUsageError creates a new UsageError
func NewUsageError(format string, args ...interface{}) *UsageError {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

// UnknownCommandError reports a dispatch miss: the selected command name
// is not present in the registry.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("Unknown command: %s", e.Name)
}

// NewUnknownCommandError creates a new UnknownCommandError
func NewUnknownCommandError(name string) *UnknownCommandError {
	return &UnknownCommandError{Name: name}
}

// GitCommandError represents a non-zero exit from a delegated git
// invocation. Stdout and stderr were inherited by the subprocess, so the
// error carries only the argv and the exit code to propagate.
type GitCommandError struct {
	Args     []string
	ExitCode int
	Err      error
}

func (e *GitCommandError) Error() string {
	return fmt.Sprintf("git %s exited with status %d", strings.Join(e.Args, " "), e.ExitCode)
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(args []string, exitCode int, err error) *GitCommandError {
	return &GitCommandError{
		Args:     args,
		ExitCode: exitCode,
		Err:      err,
	}
}

// ExitStatus maps an error returned by a handler to the process exit
// status: nil is success, git failures propagate the subprocess's own
// code verbatim, and everything else (usage errors, unknown commands)
// exits 1.
func ExitStatus(err error) int {
	if err == nil {
		return 0
	}

	var gitErr *GitCommandError
	if errors.As(err, &gitErr) {
		if gitErr.ExitCode > 0 {
			return gitErr.ExitCode
		}
		return 1
	}

	return 1
}
