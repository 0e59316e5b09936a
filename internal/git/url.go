package git

import "strings"

// ExtractRepoName returns the directory name a repository URL would be
// cloned into: the final path segment with any .git suffix stripped.
// Both URL and SCP-like forms resolve the same way, so
// https://example.com/repo.git and git@example.com:owner/repo.git both
// yield "repo".
func ExtractRepoName(repository string) string {
	name := strings.TrimSuffix(repository, "/")

	if i := strings.LastIndexAny(name, "/:"); i >= 0 {
		name = name[i+1:]
	}

	return strings.TrimSuffix(name, ".git")
}
