package cli

import (
	"io"
	"sort"
	"strings"

	"github.com/alphabetum/git-nest/internal/errors"
	"github.com/alphabetum/git-nest/internal/runtime"
)

// Command is one dispatchable git-nest subcommand.
type Command struct {
	Name    string
	Usage   string
	Summary string
	Run     func(ctx *runtime.Context, args []string) error
}

// Registry is the static command table. Only commands registered here are
// visible to dispatch; helpers stay invisible by construction.
type Registry struct {
	commands     map[string]*Command
	descriptions map[string]string
}

func (r *Registry) register(cmd *Command) {
	r.commands[cmd.Name] = cmd
}

// Lookup returns the command registered under name.
func (r *Registry) Lookup(name string) (*Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// Names returns the registered command names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe associates help text with a command name.
func (r *Registry) Describe(name, text string) error {
	if name == "" {
		return errors.NewUsageError("Command name required.")
	}
	r.descriptions[name] = strings.TrimRight(text, " \t\n")
	return nil
}

// DescribeFrom associates help text read from r until EOF, for multi-line
// descriptions written as document literals.
func (r *Registry) DescribeFrom(name string, src io.Reader) error {
	if name == "" {
		return errors.NewUsageError("Command name required.")
	}
	text, err := io.ReadAll(src)
	if err != nil {
		return err
	}
	return r.Describe(name, string(text))
}

// Description returns the stored help text for name, or a fallback when
// none was registered.
func (r *Registry) Description(name string) string {
	if text, ok := r.descriptions[name]; ok {
		return text
	}
	return "No additional information for `" + name + "`"
}

// Dispatch looks up name and invokes its handler. Lookup is exact-match
// only. A miss returns an UnknownCommandError without running anything.
func (r *Registry) Dispatch(ctx *runtime.Context, name string, args []string) error {
	cmd, ok := r.commands[name]
	if !ok {
		return errors.NewUnknownCommandError(name)
	}
	return cmd.Run(ctx, args)
}

// argAt returns the positional argument at index i, or "" when absent.
func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
