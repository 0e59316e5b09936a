package cli_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alphabetum/git-nest/internal/argv"
	"github.com/alphabetum/git-nest/internal/cli"
	"github.com/alphabetum/git-nest/internal/config"
	"github.com/alphabetum/git-nest/internal/git"
	"github.com/alphabetum/git-nest/internal/output"
	"github.com/alphabetum/git-nest/internal/runtime"
	"github.com/alphabetum/git-nest/testhelpers"
)

// newSceneContext builds a runtime context whose git runner executes real
// git inside the scene directory, with both streams captured.
func newSceneContext(t *testing.T, scene *testhelpers.Scene) (*runtime.Context, *strings.Builder, *strings.Builder) {
	t.Helper()

	stdout := &strings.Builder{}
	stderr := &strings.Builder{}

	logger, err := output.NewWithOptions(output.Options{
		Debug:  true,
		Stdout: stdout,
		Stderr: stderr,
	})
	require.NoError(t, err)

	runner := &git.ExecRunner{
		Dir:    scene.Dir,
		Env:    append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null"),
		Log:    logger,
		Stdout: stdout,
		Stderr: stderr,
	}

	ctx := &runtime.Context{
		Context: context.Background(),
		Git:     runner,
		Log:     logger,
		Env:     config.Env{DefaultCommand: config.FallbackCommand},
		Build:   runtime.BuildInfo{Version: "test"},
		Debug:   true,
	}

	return ctx, stdout, stderr
}

func runNest(t *testing.T, scene *testhelpers.Scene, command string, args ...string) (int, string, string) {
	t.Helper()

	ctx, stdout, stderr := newSceneContext(t, scene)
	status := cli.RunWithContext(ctx, argv.Invocation{Command: command, Args: args})
	return status, stdout.String(), stderr.String()
}

func TestIntegrationAddNestsRepository(t *testing.T) {
	t.Parallel()

	scene := testhelpers.NewSceneParallel(t, testhelpers.BasicSceneSetup)
	upstream := scene.CreateUpstream(t, "lib")

	status, _, stderr := runNest(t, scene, "add", upstream.Dir, "lib")
	require.Equal(t, 0, status, "add failed: %s", stderr)

	testhelpers.ExpectRemotes(t, scene.Repo, []string{"lib"})
	testhelpers.ExpectRemoteURL(t, scene.Repo, "lib", upstream.Dir)
	testhelpers.ExpectStagedUnderPrefix(t, scene.Repo, "lib")
	testhelpers.ExpectFileExists(t, scene.Repo, "lib/lib_test.txt")
}

func TestIntegrationAddDefaultsPathToRepoName(t *testing.T) {
	t.Parallel()

	scene := testhelpers.NewSceneParallel(t, testhelpers.BasicSceneSetup)
	upstream := scene.CreateUpstream(t, "lib")
	defaultName := filepath.Base(upstream.Dir)

	status, _, stderr := runNest(t, scene, "add", upstream.Dir)
	require.Equal(t, 0, status, "add failed: %s", stderr)

	testhelpers.ExpectRemotes(t, scene.Repo, []string{defaultName})
	testhelpers.ExpectFileExists(t, scene.Repo, defaultName+"/lib_test.txt")
}

func TestIntegrationPullBringsUpstreamChanges(t *testing.T) {
	t.Parallel()

	scene := testhelpers.NewSceneParallel(t, testhelpers.BasicSceneSetup)
	upstream := scene.CreateUpstream(t, "lib")

	status, _, stderr := runNest(t, scene, "add", upstream.Dir, "lib")
	require.Equal(t, 0, status, "add failed: %s", stderr)
	require.NoError(t, scene.Repo.RunGitCommand("commit", "-m", "Nest lib"))

	require.NoError(t, upstream.CreateChangeAndCommit("update", "update"))

	status, _, stderr = runNest(t, scene, "pull", "lib/", "master")
	require.Equal(t, 0, status, "pull failed: %s", stderr)

	testhelpers.ExpectFileExists(t, scene.Repo, "lib/update_test.txt")
}

func TestIntegrationFetchThenMerge(t *testing.T) {
	t.Parallel()

	scene := testhelpers.NewSceneParallel(t, testhelpers.BasicSceneSetup)
	upstream := scene.CreateUpstream(t, "lib")

	status, _, stderr := runNest(t, scene, "add", upstream.Dir, "lib")
	require.Equal(t, 0, status, "add failed: %s", stderr)
	require.NoError(t, scene.Repo.RunGitCommand("commit", "-m", "Nest lib"))

	require.NoError(t, upstream.CreateChangeAndCommit("update", "update"))

	status, _, stderr = runNest(t, scene, "fetch", "lib")
	require.Equal(t, 0, status, "fetch failed: %s", stderr)
	testhelpers.ExpectNoFile(t, scene.Repo, "lib/update_test.txt")

	status, _, stderr = runNest(t, scene, "merge", "lib/master")
	require.Equal(t, 0, status, "merge failed: %s", stderr)
	testhelpers.ExpectFileExists(t, scene.Repo, "lib/update_test.txt")
}

func TestIntegrationDeinitKeepsWorkingTree(t *testing.T) {
	t.Parallel()

	scene := testhelpers.NewSceneParallel(t, testhelpers.BasicSceneSetup)
	upstream := scene.CreateUpstream(t, "lib")

	status, _, stderr := runNest(t, scene, "add", upstream.Dir, "lib")
	require.Equal(t, 0, status, "add failed: %s", stderr)
	require.NoError(t, scene.Repo.RunGitCommand("commit", "-m", "Nest lib"))

	status, _, stderr = runNest(t, scene, "deinit", "lib/")
	require.Equal(t, 0, status, "deinit failed: %s", stderr)

	testhelpers.ExpectNoRemote(t, scene.Repo, "lib")
	testhelpers.ExpectFileExists(t, scene.Repo, "lib/lib_test.txt")
}

func TestIntegrationRmRemovesPathAndRemote(t *testing.T) {
	t.Parallel()

	scene := testhelpers.NewSceneParallel(t, testhelpers.BasicSceneSetup)
	upstream := scene.CreateUpstream(t, "lib")

	status, _, stderr := runNest(t, scene, "add", upstream.Dir, "lib")
	require.Equal(t, 0, status, "add failed: %s", stderr)
	require.NoError(t, scene.Repo.RunGitCommand("commit", "-m", "Nest lib"))

	status, _, stderr = runNest(t, scene, "rm", "lib/")
	require.Equal(t, 0, status, "rm failed: %s", stderr)

	testhelpers.ExpectNoRemote(t, scene.Repo, "lib")
	testhelpers.ExpectNoFile(t, scene.Repo, "lib")
}

func TestIntegrationGitFailurePropagates(t *testing.T) {
	t.Parallel()

	scene := testhelpers.NewSceneParallel(t, testhelpers.BasicSceneSetup)

	status, _, stderr := runNest(t, scene, "pull", "nosuch", "master")

	require.NotEqual(t, 0, status, "pulling an unregistered remote must fail")
	require.NotEmpty(t, stderr, "git's own diagnostics reach stderr")
}

func TestRunReadsEnvironment(t *testing.T) {
	testhelpers.RequireGit(t)

	build := runtime.BuildInfo{Version: "test", Commit: "none", Date: "unknown"}

	t.Run("unknown command exits 1", func(t *testing.T) {
		require.Equal(t, 1, cli.Run([]string{"frobnicate"}, build))
	})

	t.Run("--version resolves to the version command", func(t *testing.T) {
		require.Equal(t, 0, cli.Run([]string{"--version"}, build))
	})

	t.Run("DEFAULT_COMMAND drives a bare invocation", func(t *testing.T) {
		t.Setenv("DEFAULT_COMMAND", "commands")
		require.Equal(t, 0, cli.Run(nil, build))
	})

	t.Run("GIT_NEST_LOG_FILE records the invocation", func(t *testing.T) {
		logPath := filepath.Join(t.TempDir(), "git-nest.log")
		t.Setenv("GIT_NEST_LOG_FILE", logPath)

		require.Equal(t, 0, cli.Run([]string{"version"}, build))

		contents, err := os.ReadFile(logPath)
		require.NoError(t, err)
		require.Contains(t, string(contents), "command: version")
	})
}
