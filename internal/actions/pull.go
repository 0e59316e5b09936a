package actions

import (
	"github.com/alphabetum/git-nest/internal/errors"
	"github.com/alphabetum/git-nest/internal/runtime"
)

// PullOptions contains options for the pull command
type PullOptions struct {
	Path   string
	Branch string
}

// PullAction pulls a branch into a nested path with the subtree merge
// strategy. The path names the remote that add registered.
func PullAction(ctx *runtime.Context, opts PullOptions) error {
	if opts.Path == "" {
		return errors.NewUsageError("Remote name required.")
	}
	if opts.Branch == "" {
		return errors.NewUsageError("Branch name required.")
	}

	return ctx.Git.Run(ctx.Context, "pull", "-s", "subtree", nestName(opts.Path), opts.Branch)
}
