package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/kballard/go-shellquote"

	"github.com/alphabetum/git-nest/internal/argv"
	"github.com/alphabetum/git-nest/internal/config"
	nesterrors "github.com/alphabetum/git-nest/internal/errors"
	"github.com/alphabetum/git-nest/internal/output"
	"github.com/alphabetum/git-nest/internal/runtime"
)

// Run executes git-nest with the given raw process arguments and returns
// the process exit status.
func Run(rawArgs []string, build runtime.BuildInfo) int {
	env := config.FromEnv()

	output.ConfigureColor(env.NoColor)

	tokens := argv.Normalize(rawArgs, argv.Options{})
	inv := argv.Classify(tokens)

	ctx, err := runtime.NewContext(env, build, inv.Debug || env.Debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer ctx.Close()

	return RunWithContext(ctx, inv)
}

// RunWithContext dispatches an already classified invocation. It is split
// from Run so tests can substitute the git runner and capture the
// streams.
func RunWithContext(ctx *runtime.Context, inv argv.Invocation) int {
	registry := NewRegistry()

	command := inv.Command
	if command == "" {
		command = ctx.Env.DefaultCommand
	}
	if command == "" {
		command = config.FallbackCommand
	}

	if len(inv.Args) > 0 {
		ctx.Log.Debug("command: %s %s", command, shellquote.Join(inv.Args...))
	} else {
		ctx.Log.Debug("command: %s", command)
	}

	return exitStatus(ctx, registry, command, registry.Dispatch(ctx, command, inv.Args))
}

// exitStatus maps a dispatch result to the process exit status and prints
// the matching diagnostics.
func exitStatus(ctx *runtime.Context, registry *Registry, command string, err error) int {
	if err == nil {
		return 0
	}

	var usageErr *nesterrors.UsageError
	if errors.As(err, &usageErr) {
		ctx.Log.Error("%s", usageErr.Message)
		if cmd, ok := registry.Lookup(command); ok {
			ctx.Log.Error("Usage: %s", cmd.Usage)
		}
		return 1
	}

	var unknownErr *nesterrors.UnknownCommandError
	if errors.As(err, &unknownErr) {
		ctx.Log.Error("%s", unknownErr.Error())
		return 1
	}

	// git's own stderr was inherited by the subprocess, so a failed
	// delegation needs no re-printing, only its exit code.
	var gitErr *nesterrors.GitCommandError
	if errors.As(err, &gitErr) {
		ctx.Log.Debug("%s", gitErr.Error())
		return nesterrors.ExitStatus(err)
	}

	ctx.Log.Error("%s", err)
	return 1
}
