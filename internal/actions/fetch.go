package actions

import (
	"github.com/alphabetum/git-nest/internal/errors"
	"github.com/alphabetum/git-nest/internal/runtime"
)

// FetchOptions contains options for the fetch command
type FetchOptions struct {
	Remote string
	Branch string
}

// FetchAction fetches a nested repository's remote, optionally restricted
// to a single branch.
func FetchAction(ctx *runtime.Context, opts FetchOptions) error {
	if opts.Remote == "" {
		return errors.NewUsageError("Remote name required.")
	}

	args := []string{"fetch", nestName(opts.Remote)}
	if opts.Branch != "" {
		args = append(args, opts.Branch)
	}

	return ctx.Git.Run(ctx.Context, args...)
}
