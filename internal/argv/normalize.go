package argv

import "strings"

// Options configures Normalize.
type Options struct {
	// ValueShorts is the set of short option letters registered as taking
	// a required value. When such a letter appears inside a combined token
	// with characters after it, the rest of the token is consumed as the
	// option's value. git-nest's own surface registers none; the set
	// exists so the pass stays correct for any option table.
	ValueShorts map[rune]bool
}

func (o Options) takesValue(r rune) bool {
	return o.ValueShorts[r]
}

// Normalize rewrites a raw token stream so that every option occupies its
// own token: combined short options are split one letter per token, and
// --name=value becomes two tokens. A literal -- ends rewriting; it and
// all remaining tokens pass through unchanged. The input slice is never
// modified.
func Normalize(tokens []string, opts Options) []string {
	out := make([]string, 0, len(tokens))

	for i, tok := range tokens {
		switch {
		case tok == "--":
			out = append(out, tokens[i:]...)
			return out
		case isShortCluster(tok):
			out = appendSplitShorts(out, tok, opts)
		case isLongWithValue(tok):
			name, value, _ := strings.Cut(tok, "=")
			out = append(out, name, value)
		default:
			out = append(out, tok)
		}
	}

	return out
}

// isShortCluster reports whether tok is a single dash followed by at
// least two characters, the first of which is not itself a dash.
func isShortCluster(tok string) bool {
	return len(tok) > 2 && tok[0] == '-' && tok[1] != '-'
}

// isLongWithValue reports whether tok is --name=value with a non-empty
// name. A bare --=value is left alone.
func isLongWithValue(tok string) bool {
	if !strings.HasPrefix(tok, "--") {
		return false
	}
	return strings.Index(tok, "=") > 2
}

// appendSplitShorts emits one -x token per letter of the cluster. A
// letter that takes a value and has characters after it consumes the
// remainder of the cluster as that value.
func appendSplitShorts(out []string, tok string, opts Options) []string {
	letters := []rune(tok[1:])
	for i, r := range letters {
		out = append(out, "-"+string(r))
		if opts.takesValue(r) && i+1 < len(letters) {
			out = append(out, string(letters[i+1:]))
			break
		}
	}
	return out
}
