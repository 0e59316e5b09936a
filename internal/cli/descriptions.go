package cli

// commandDescriptions holds the long help shown by `git nest help
// <command>`. Every registered command has an entry; the registry falls
// back to a stock line for names missing here.
var commandDescriptions = map[string]string{
	"add": `Usage:
  git nest add <repository> [<path>]

Description:
  Nest <repository> in the current repository as a subtree at <path>.
  When <path> is omitted it defaults to the repository name with any
  .git suffix stripped.

  The repository is registered as a remote named after <path>, merged
  with the ours strategy without committing, then read into the index
  and working tree under <path>/. Review and commit the result to
  finish nesting.
`,

	"pull": `Usage:
  git nest pull <path> <branch>

Description:
  Pull <branch> into the repository nested at <path> using the subtree
  merge strategy.
`,

	"fetch": `Usage:
  git nest fetch <remote> [<branch>]

Description:
  Fetch the remote registered for a nested repository, optionally
  restricted to <branch>. Follow with 'git nest merge' to bring the
  fetched changes into the current branch.
`,

	"merge": `Usage:
  git nest merge <remote>/<branch>

Description:
  Merge a fetched <remote>/<branch> reference into the current branch
  using the subtree merge strategy.
`,

	"deinit": `Usage:
  git nest deinit <path>

Description:
  Remove the remote registered for the repository nested at <path>.
  The nested files are left in place; use 'git nest rm' to remove them
  as well.
`,

	"rm": `Usage:
  git nest rm <path>

Description:
  Remove the remote registered for the repository nested at <path>,
  then remove <path> recursively from the index and working tree.
`,

	"help": `Usage:
  git nest help [<command>]

Description:
  Print the program usage, or the description of <command>.
`,

	"commands": `Usage:
  git nest commands [--raw]

Description:
  List available commands. With --raw, print bare names one per line
  for scripting.
`,

	"version": `Usage:
  git nest version

Description:
  Print the git-nest version.
`,
}
