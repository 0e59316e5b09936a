package actions

import "strings"

// nestName normalizes a nested checkout path to the remote name git-nest
// registered for it. Paths are accepted with one trailing slash, as tab
// completion produces them.
func nestName(path string) string {
	return strings.TrimSuffix(path, "/")
}
