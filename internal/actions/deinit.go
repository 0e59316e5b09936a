package actions

import (
	"github.com/alphabetum/git-nest/internal/errors"
	"github.com/alphabetum/git-nest/internal/runtime"
)

// DeinitOptions contains options for the deinit command
type DeinitOptions struct {
	Path string
}

// DeinitAction removes the remote registered for a nested path. The
// nested files stay in the working tree; use rm to remove those too.
func DeinitAction(ctx *runtime.Context, opts DeinitOptions) error {
	if opts.Path == "" {
		return errors.NewUsageError("Path required.")
	}

	return ctx.Git.Run(ctx.Context, "remote", "rm", nestName(opts.Path))
}
