// Package scenario provides a high-level test scenario that combines a Scene
// and a runtime Context to provide a terse API for integration tests.
package scenario

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"pancake.dev/pancake/internal/config"
	"pancake.dev/pancake/internal/git"
	"pancake.dev/pancake/internal/runtime"
	"pancake.dev/pancake/internal/tui"
	"pancake.dev/pancake/testhelpers"
)

// Scenario combines a Scene with an in-process runtime Context whose console
// output is captured in Output.
type Scenario struct {
	T          *testing.T
	Scene      *testhelpers.Scene
	Context    *runtime.Context
	Output     *bytes.Buffer
	BinaryPath string
}

// NewScenario creates a new Scenario with an optional setup function.
// NOTE: This function is NOT safe for parallel tests as it uses t.Setenv and NewScene.
func NewScenario(t *testing.T, setup testhelpers.SceneSetup) *Scenario {
	t.Helper()

	// Force non-interactive mode for tests
	t.Setenv("PANCAKE_NON_INTERACTIVE", "true")
	t.Setenv("GIT_CONFIG_GLOBAL", "/dev/null")

	s := &Scenario{
		T:      t,
		Scene:  testhelpers.NewScene(t, setup),
		Output: &bytes.Buffer{},
	}
	return s.Rebuild()
}

// NewScenarioParallel creates a new Scenario that is safe for parallel tests.
// It has no in-process Context; drive it through the CLI binary.
func NewScenarioParallel(t *testing.T, setup testhelpers.SceneSetup) *Scenario {
	t.Helper()
	return &Scenario{
		T:      t,
		Scene:  testhelpers.NewSceneParallel(t, setup),
		Output: &bytes.Buffer{},
	}
}

// Rebuild reopens the repository and reloads configuration and branch graph
// from disk, keeping the captured output.
func (s *Scenario) Rebuild() *Scenario {
	s.T.Helper()

	eng, err := git.NewEngine(s.Scene.Dir)
	require.NoError(s.T, err)

	store := config.NewStore(s.Scene.Dir)
	s.Context = runtime.NewContext(context.Background(), store, eng, tui.NewSplogWithWriter(s.Output))
	if config.IsInitialized(store) {
		require.NoError(s.T, s.Context.Load())
	}
	return s
}

// WithInitialCommit creates an initial commit on the main branch.
func (s *Scenario) WithInitialCommit() *Scenario {
	s.T.Helper()
	require.NoError(s.T, s.Scene.Repo.CreateChangeAndCommit("initial", "init"))
	return s
}

// Init writes a default repository configuration with main as the main branch.
func (s *Scenario) Init() *Scenario {
	s.T.Helper()
	require.NoError(s.T, config.SaveRepoConfig(s.Context.Store, config.NewRepoConfig("main", "origin")))
	require.NoError(s.T, s.Context.Git.AddExclude(s.Context, "/"+config.Dir+"/"))
	return s.Rebuild()
}

// RunGit runs a git command in the scenario's repository.
func (s *Scenario) RunGit(args ...string) *Scenario {
	s.T.Helper()
	require.NoError(s.T, s.Scene.Repo.RunGitCommand(args...))
	return s
}

// Checkout checks out a branch.
func (s *Scenario) Checkout(branch string) *Scenario {
	s.T.Helper()
	require.NoError(s.T, s.Scene.Repo.CheckoutBranch(branch))
	return s
}

// CommitChange writes a file named after name and commits it with message.
func (s *Scenario) CommitChange(name, message string) *Scenario {
	s.T.Helper()
	require.NoError(s.T, s.Scene.Repo.CreateChangeAndCommit(message, name))
	return s
}

// TrackBranch records parent as the parent of branch and saves the graph.
func (s *Scenario) TrackBranch(branch, parent string) *Scenario {
	s.T.Helper()
	s.Context.Graph.Add(branch, parent)
	require.NoError(s.T, s.Context.SaveGraph())
	return s
}

// WithStack sets up a branch hierarchy. The map keys are branch names,
// and values are their parent branch names. Each branch gets one commit
// and is tracked. The scenario must be initialized.
func (s *Scenario) WithStack(structure map[string]string) *Scenario {
	s.T.Helper()
	require.NotNil(s.T, s.Context.Graph, "call Init before WithStack")

	// Parents outside the structure must already exist.
	created := map[string]bool{}
	for len(created) < len(structure) {
		progress := false
		for branch, parent := range structure {
			if created[branch] {
				continue
			}
			if _, pending := structure[parent]; pending && !created[parent] {
				continue
			}
			s.Checkout(parent)
			require.NoError(s.T, s.Scene.Repo.CreateAndCheckoutBranch(branch))
			require.NoError(s.T, s.Scene.Repo.CreateChangeAndCommit("change on "+branch, branch))
			s.Context.Graph.Add(branch, parent)
			created[branch] = true
			progress = true
		}
		if !progress {
			s.T.Fatalf("could not resolve stack structure: circular dependency")
		}
	}

	require.NoError(s.T, s.Context.SaveGraph())
	return s
}

// ClearOutput discards captured output.
func (s *Scenario) ClearOutput() *Scenario {
	s.Output.Reset()
	return s
}

// WithBinaryPath sets the path to the pk binary for RunCli methods.
func (s *Scenario) WithBinaryPath(path string) *Scenario {
	s.BinaryPath = path
	return s
}

// RunCli executes a pk command, requires it to succeed and returns its output.
func (s *Scenario) RunCli(args ...string) string {
	s.T.Helper()
	output, err := s.RunCliAndGetOutput(args...)
	require.NoError(s.T, err, "CLI command failed: pk %v\nOutput: %s", args, output)
	return output
}

// RunCliAndGetOutput executes a pk command and returns its output and error.
func (s *Scenario) RunCliAndGetOutput(args ...string) (string, error) {
	s.T.Helper()
	if s.BinaryPath == "" {
		s.T.Fatal("BinaryPath not set. Call WithBinaryPath first.")
	}
	output, err := testhelpers.RunCli(s.BinaryPath, s.Scene.Dir, args...)
	if s.Context != nil {
		s.Rebuild()
	}
	return output, err
}

// RunExpectError executes a pk command, requires it to fail and returns its output.
func (s *Scenario) RunExpectError(args ...string) string {
	s.T.Helper()
	output, err := s.RunCliAndGetOutput(args...)
	require.Error(s.T, err, "expected CLI command to fail: pk %v\nOutput: %s", args, output)
	return output
}

// ExpectBranch asserts that the current branch is as expected.
func (s *Scenario) ExpectBranch(expected string) *Scenario {
	s.T.Helper()
	actual, err := s.Scene.Repo.CurrentBranchName()
	require.NoError(s.T, err)
	require.Equal(s.T, expected, actual)
	return s
}

// ExpectStackStructure asserts recorded parents for the given branches.
func (s *Scenario) ExpectStackStructure(expected map[string]string) *Scenario {
	s.T.Helper()
	recorded := testhelpers.ReadRecordedParents(s.T, s.Scene.Repo)
	for branch, parent := range expected {
		actual, ok := recorded[branch]
		require.True(s.T, ok, "branch %s is not tracked", branch)
		require.Equal(s.T, parent, actual, "Parent of %s does not match", branch)
	}
	return s
}

// ExpectStacked asserts that every branch in structure contains its parent's tip.
func (s *Scenario) ExpectStacked(structure map[string]string) *Scenario {
	s.T.Helper()
	for branch, parent := range structure {
		require.True(s.T, s.Scene.Repo.IsAncestor(parent, branch), "%s is not on top of %s", branch, parent)
	}
	return s
}
