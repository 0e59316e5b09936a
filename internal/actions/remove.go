package actions

import (
	"github.com/alphabetum/git-nest/internal/errors"
	"github.com/alphabetum/git-nest/internal/runtime"
)

// RemoveOptions contains options for the rm command
type RemoveOptions struct {
	Path string
}

// RemoveAction removes a nested path: first the remote registered for it,
// then the path itself from the index and working tree. There is no
// rollback; if the second step fails the remote stays removed.
func RemoveAction(ctx *runtime.Context, opts RemoveOptions) error {
	if opts.Path == "" {
		return errors.NewUsageError("Path required.")
	}

	name := nestName(opts.Path)

	if err := ctx.Git.Run(ctx.Context, "remote", "rm", name); err != nil {
		return err
	}

	return ctx.Git.Run(ctx.Context, "rm", "-r", name)
}
