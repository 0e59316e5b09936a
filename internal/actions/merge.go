package actions

import (
	"github.com/alphabetum/git-nest/internal/errors"
	"github.com/alphabetum/git-nest/internal/runtime"
)

// MergeOptions contains options for the merge command
type MergeOptions struct {
	// Ref is a remote/branch reference such as "lib/master".
	Ref string
}

// MergeAction merges a fetched ref into the current branch with the
// subtree merge strategy.
func MergeAction(ctx *runtime.Context, opts MergeOptions) error {
	if opts.Ref == "" {
		return errors.NewUsageError("Remote/branch reference required.")
	}

	return ctx.Git.Run(ctx.Context, "merge", "-s", "subtree", opts.Ref)
}
