package cli

import (
	"fmt"
	"strings"

	"github.com/alphabetum/git-nest/internal/errors"
	"github.com/alphabetum/git-nest/internal/output"
	"github.com/alphabetum/git-nest/internal/runtime"
)

func (r *Registry) runHelp(ctx *runtime.Context, args []string) error {
	if len(args) == 0 {
		ctx.Log.Page(r.globalUsage())
		return nil
	}

	name := args[0]
	if _, ok := r.commands[name]; !ok {
		return errors.NewUnknownCommandError(name)
	}

	ctx.Log.Page(r.Description(name) + "\n")
	return nil
}

// globalUsage renders the banner, the command table and the environment
// variables. The table is generated from the registry so the two cannot
// drift apart.
func (r *Registry) globalUsage() string {
	var b strings.Builder

	b.WriteString(output.Header("git-nest") + "\n\n")
	b.WriteString("Nest other repositories as subtrees of the current repository,\n")
	b.WriteString("then fetch, pull, and merge them with git's subtree strategies.\n\n")

	b.WriteString(output.Header("Usage:") + "\n")
	b.WriteString("  git nest <command> [<arguments>]\n\n")

	width := 0
	for _, name := range r.Names() {
		if len(name) > width {
			width = len(name)
		}
	}

	b.WriteString(output.Header("Commands:") + "\n")
	for _, name := range r.Names() {
		cmd := r.commands[name]
		padding := strings.Repeat(" ", width-len(name))
		fmt.Fprintf(&b, "  %s%s  %s\n", output.CommandName(name), padding, cmd.Summary)
	}
	b.WriteString("\n")

	b.WriteString(output.Header("Environment:") + "\n")
	b.WriteString("  DEFAULT_COMMAND     Command run when none is given (default: help)\n")
	b.WriteString("  GIT_NEST_DEBUG      Trace delegated git commands on stderr\n")
	b.WriteString("  GIT_NEST_LOG_FILE   Record a timestamped debug log in this file\n")
	b.WriteString("  GIT_NEST_NO_COLOR   Disable styled output (NO_COLOR works too)\n\n")

	b.WriteString("Run 'git nest help <command>' for details on a command.\n")

	return b.String()
}
