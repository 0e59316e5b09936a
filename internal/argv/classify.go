package argv

// Built-in options recognized by Classify map to these command names.
// The registry registers handlers under the same names.
const (
	HelpCommand    = "help"
	VersionCommand = "version"
)

// Invocation is the result of classifying a normalized token stream.
// Command is empty when no command token appeared; the caller resolves
// that to the configured default. The zero value means "run the default
// command with no arguments".
type Invocation struct {
	Command string
	Args    []string
	Debug   bool
}

// Classify walks a normalized token stream left to right exactly once.
// -h/--help and --version assign the help and version commands, --debug
// sets the debug flag and is consumed, and the first -- stops built-in
// recognition for the rest of the stream. Every other token becomes the
// command name if none is assigned yet, or a positional argument
// otherwise. Tokens that look like options take the same path; they are
// deliberately not filtered out.
func Classify(tokens []string) Invocation {
	var inv Invocation
	endOpts := false

	for _, tok := range tokens {
		if !endOpts {
			switch tok {
			case "-h", "--help":
				inv.Command = HelpCommand
				continue
			case "--version":
				inv.Command = VersionCommand
				continue
			case "--debug":
				inv.Debug = true
				continue
			case "--":
				endOpts = true
				continue
			}
		}

		if inv.Command == "" {
			inv.Command = tok
		} else {
			inv.Args = append(inv.Args, tok)
		}
	}

	return inv
}
