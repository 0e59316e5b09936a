// Package testhelpers provides testing utilities for git-nest, including
// a scene system, Git repository helpers, and custom assertions.
package testhelpers

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/require"
)

// Must is a generic helper function that panics if err is not nil,
// otherwise returns the value. This is useful for test setup code
// where errors are not expected and should halt execution immediately.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// OpenRepo opens the repository with go-git so state can be asserted
// without shelling out.
func OpenRepo(t *testing.T, repo *GitRepo) *gogit.Repository {
	t.Helper()

	r, err := gogit.PlainOpen(repo.Dir)
	require.NoError(t, err, "Failed to open repository")
	return r
}

// ExpectRemotes asserts that the repository has exactly the expected
// remote names, compared sorted.
func ExpectRemotes(t *testing.T, repo *GitRepo, expected []string) {
	t.Helper()

	r := OpenRepo(t, repo)
	remotes, err := r.Remotes()
	require.NoError(t, err, "Failed to list remotes")

	names := []string{}
	for _, remote := range remotes {
		names = append(names, remote.Config().Name)
	}

	sort.Strings(names)
	sort.Strings(expected)

	require.Equal(t, expected, names, "Remotes do not match")
}

// ExpectRemoteURL asserts that the named remote exists and points at url.
func ExpectRemoteURL(t *testing.T, repo *GitRepo, name, url string) {
	t.Helper()

	r := OpenRepo(t, repo)
	remote, err := r.Remote(name)
	require.NoError(t, err, "Remote %q not found", name)
	require.Contains(t, remote.Config().URLs, url, "Remote %q does not point at %q", name, url)
}

// ExpectNoRemote asserts that the named remote is not configured.
func ExpectNoRemote(t *testing.T, repo *GitRepo, name string) {
	t.Helper()

	r := OpenRepo(t, repo)
	_, err := r.Remote(name)
	require.ErrorIs(t, err, gogit.ErrRemoteNotFound, "Remote %q should not exist", name)
}

// ExpectStagedUnderPrefix asserts that the index holds at least one added
// entry under prefix/.
func ExpectStagedUnderPrefix(t *testing.T, repo *GitRepo, prefix string) {
	t.Helper()

	r := OpenRepo(t, repo)
	wt, err := r.Worktree()
	require.NoError(t, err, "Failed to get worktree")

	status, err := wt.Status()
	require.NoError(t, err, "Failed to compute status")

	for path, fileStatus := range status {
		if strings.HasPrefix(path, prefix+"/") && fileStatus.Staging == gogit.Added {
			return
		}
	}

	require.Fail(t, "Nothing staged under prefix", "expected staged entries under %s/", prefix)
}

// ExpectFileExists asserts that a path exists in the working tree.
func ExpectFileExists(t *testing.T, repo *GitRepo, relPath string) {
	t.Helper()

	_, err := os.Stat(filepath.Join(repo.Dir, relPath))
	require.NoError(t, err, "Expected %s to exist in the working tree", relPath)
}

// ExpectNoFile asserts that a path does not exist in the working tree.
func ExpectNoFile(t *testing.T, repo *GitRepo, relPath string) {
	t.Helper()

	_, err := os.Stat(filepath.Join(repo.Dir, relPath))
	require.True(t, os.IsNotExist(err), "Expected %s to be gone from the working tree", relPath)
}
