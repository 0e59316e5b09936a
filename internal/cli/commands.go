package cli

import (
	"io"

	"github.com/spf13/pflag"

	"github.com/alphabetum/git-nest/internal/errors"
	"github.com/alphabetum/git-nest/internal/output"
	"github.com/alphabetum/git-nest/internal/runtime"
)

func (r *Registry) runCommands(ctx *runtime.Context, args []string) error {
	flags := pflag.NewFlagSet("commands", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	raw := flags.Bool("raw", false, "print bare command names, one per line")

	if err := flags.Parse(args); err != nil {
		return errors.NewUsageError("%s", err)
	}

	if *raw {
		for _, name := range r.Names() {
			ctx.Log.Info("%s", name)
		}
		return nil
	}

	ctx.Log.Info("%s", output.Header("Available commands:"))
	for _, name := range r.Names() {
		ctx.Log.Info("  %s", output.CommandName(name))
	}
	return nil
}
