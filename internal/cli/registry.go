package cli

import (
	"strings"

	"github.com/alphabetum/git-nest/internal/actions"
	"github.com/alphabetum/git-nest/internal/runtime"
)

// NewRegistry builds the command table. The registrations below are the
// single source of truth for what is dispatchable. Construction cannot
// fail; it can only produce an empty table, which would be a programming
// error rather than a runtime condition.
func NewRegistry() *Registry {
	r := &Registry{
		commands:     make(map[string]*Command),
		descriptions: make(map[string]string),
	}

	r.register(&Command{
		Name:    "add",
		Usage:   "git nest add <repository> [<path>]",
		Summary: "Nest a repository as a subtree at a path",
		Run: func(ctx *runtime.Context, args []string) error {
			return actions.AddAction(ctx, actions.AddOptions{
				Repository: argAt(args, 0),
				Path:       argAt(args, 1),
			})
		},
	})

	r.register(&Command{
		Name:    "pull",
		Usage:   "git nest pull <path> <branch>",
		Summary: "Pull a branch into a nested path",
		Run: func(ctx *runtime.Context, args []string) error {
			return actions.PullAction(ctx, actions.PullOptions{
				Path:   argAt(args, 0),
				Branch: argAt(args, 1),
			})
		},
	})

	r.register(&Command{
		Name:    "fetch",
		Usage:   "git nest fetch <remote> [<branch>]",
		Summary: "Fetch a nested repository's remote",
		Run: func(ctx *runtime.Context, args []string) error {
			return actions.FetchAction(ctx, actions.FetchOptions{
				Remote: argAt(args, 0),
				Branch: argAt(args, 1),
			})
		},
	})

	r.register(&Command{
		Name:    "merge",
		Usage:   "git nest merge <remote>/<branch>",
		Summary: "Merge a fetched ref with the subtree strategy",
		Run: func(ctx *runtime.Context, args []string) error {
			return actions.MergeAction(ctx, actions.MergeOptions{
				Ref: argAt(args, 0),
			})
		},
	})

	r.register(&Command{
		Name:    "deinit",
		Usage:   "git nest deinit <path>",
		Summary: "Remove the remote for a nested path",
		Run: func(ctx *runtime.Context, args []string) error {
			return actions.DeinitAction(ctx, actions.DeinitOptions{
				Path: argAt(args, 0),
			})
		},
	})

	r.register(&Command{
		Name:    "rm",
		Usage:   "git nest rm <path>",
		Summary: "Remove a nested path and its remote",
		Run: func(ctx *runtime.Context, args []string) error {
			return actions.RemoveAction(ctx, actions.RemoveOptions{
				Path: argAt(args, 0),
			})
		},
	})

	r.register(&Command{
		Name:    "help",
		Usage:   "git nest help [<command>]",
		Summary: "Show usage or a command's description",
		Run:     r.runHelp,
	})

	r.register(&Command{
		Name:    "commands",
		Usage:   "git nest commands [--raw]",
		Summary: "List available commands",
		Run:     r.runCommands,
	})

	r.register(&Command{
		Name:    "version",
		Usage:   "git nest version",
		Summary: "Print the git-nest version",
		Run:     runVersion,
	})

	for name, text := range commandDescriptions {
		_ = r.DescribeFrom(name, strings.NewReader(text))
	}

	return r
}
