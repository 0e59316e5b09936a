package testhelpers

import (
	"os"
	"os/exec"
	"testing"
)

// Scene is a test scene: a temporary directory holding a Git repository,
// entered for the duration of the test so git-nest commands run inside it.
type Scene struct {
	Dir    string
	Repo   *GitRepo
	oldDir string
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a new test scene and changes into it. Cleanup is
// registered with t.Cleanup; set DEBUG to keep the directory around for
// inspection. Scenes change the working directory, so tests using them
// must not run in parallel; use NewSceneParallel for tests that address
// the scene by path instead.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	// Keep the user's global git config out of scene repositories.
	t.Setenv("GIT_CONFIG_GLOBAL", "/dev/null")

	scene := newScene(t, setup)

	oldDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get current directory: %v", err)
	}
	scene.oldDir = oldDir

	if err := os.Chdir(scene.Dir); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}

	t.Cleanup(func() {
		os.Chdir(oldDir)
	})

	return scene
}

// NewSceneParallel creates a scene without changing the working
// directory, so tests can run in parallel by pointing commands at
// Scene.Dir.
func NewSceneParallel(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()
	return newScene(t, setup)
}

func newScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()
	RequireGit(t)

	tmpDir, err := os.MkdirTemp("", "git-nest-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	t.Cleanup(func() {
		if os.Getenv("DEBUG") == "" {
			os.RemoveAll(tmpDir)
		}
	})

	repo, err := NewGitRepo(tmpDir)
	if err != nil {
		t.Fatalf("Failed to create Git repo: %v", err)
	}

	scene := &Scene{
		Dir:  tmpDir,
		Repo: repo,
	}

	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}

	return scene
}

// BasicSceneSetup creates a scene with a single commit, so the repository
// has a master branch to merge into.
func BasicSceneSetup(scene *Scene) error {
	return scene.Repo.CreateChangeAndCommit("1", "1")
}

// CreateUpstream initializes a sibling repository with a single commit on
// master, suitable for nesting into the scene's repository. Its Dir is
// usable directly as a repository URL.
func (s *Scene) CreateUpstream(t *testing.T, name string) *GitRepo {
	t.Helper()

	dir := s.Dir + "-" + name
	repo, err := NewGitRepo(dir)
	if err != nil {
		t.Fatalf("Failed to create upstream repo: %v", err)
	}
	if err := repo.CreateChangeAndCommit("upstream", name); err != nil {
		t.Fatalf("Failed to seed upstream repo: %v", err)
	}

	t.Cleanup(func() {
		if os.Getenv("DEBUG") == "" {
			os.RemoveAll(dir)
		}
	})

	return repo
}

// RequireGit skips the test when no git binary is available.
func RequireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not found on PATH")
	}
}
