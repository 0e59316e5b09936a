package actions

import (
	"github.com/alphabetum/git-nest/internal/errors"
	"github.com/alphabetum/git-nest/internal/git"
	"github.com/alphabetum/git-nest/internal/runtime"
)

// AddOptions contains options for the add command
type AddOptions struct {
	Repository string
	Path       string
}

// AddAction nests a repository under a path in the current project. It
// registers the path as a remote for the repository, merges the remote's
// master with the ours strategy without committing, then reads the remote
// tree into the index and working tree under the path prefix. The commit
// itself is left to the user.
func AddAction(ctx *runtime.Context, opts AddOptions) error {
	if opts.Repository == "" {
		return errors.NewUsageError("Repository required.")
	}

	name := opts.Path
	if name == "" {
		name = git.ExtractRepoName(opts.Repository)
	}
	name = nestName(name)

	if err := ctx.Git.Run(ctx.Context, "remote", "add", "-f", name, opts.Repository); err != nil {
		return err
	}

	if err := ctx.Git.Run(ctx.Context, "merge", "-s", "ours", "--no-commit", name+"/master"); err != nil {
		return err
	}

	return ctx.Git.Run(ctx.Context, "read-tree", "--prefix="+name+"/", "-u", name+"/master")
}
