package cli

import (
	"github.com/alphabetum/git-nest/internal/runtime"
)

func runVersion(ctx *runtime.Context, _ []string) error {
	ctx.Log.Info("%s", ctx.Build.Version)
	ctx.Log.Debug("commit %s, built %s", ctx.Build.Commit, ctx.Build.Date)
	return nil
}
