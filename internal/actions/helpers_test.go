package actions_test

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/require"

	"pancake.dev/pancake/internal/config"
	pkerrors "pancake.dev/pancake/internal/errors"
	"pancake.dev/pancake/internal/git"
	"pancake.dev/pancake/internal/runtime"
	"pancake.dev/pancake/internal/tui"
)

// fakeGit is an in-memory git.Engine. Rebasing a branch listed in conflicts
// stops once per listed count, leaving a rebase in progress.
type fakeGit struct {
	current      string
	branches     map[string]bool
	remotes      []string
	conflicts    map[string]int
	unmerged     map[string]bool
	failCheckout map[string]bool
	rebasing     string
	excludes     []string
	commits      []git.CommitOptions
	calls        []string
}

var _ git.Engine = (*fakeGit)(nil)

func newFakeGit(current string, branches ...string) *fakeGit {
	f := &fakeGit{
		current:      current,
		branches:     map[string]bool{},
		conflicts:    map[string]int{},
		unmerged:     map[string]bool{},
		failCheckout: map[string]bool{},
	}
	if current != "" {
		f.branches[current] = true
	}
	for _, b := range branches {
		f.branches[b] = true
	}
	return f
}

func (f *fakeGit) CurrentBranch() (string, error) {
	if f.current == "" {
		return "", pkerrors.ErrNotOnBranch
	}
	return f.current, nil
}

func (f *fakeGit) BranchExists(name string) (bool, error) {
	return f.branches[name], nil
}

func (f *fakeGit) ResolveCommit(name string) (string, error) {
	if !f.branches[name] {
		return "", pkerrors.NewBranchNotFoundError(name)
	}
	return "sha-" + name, nil
}

func (f *fakeGit) BranchNames() ([]string, error) {
	names := make([]string, 0, len(f.branches))
	for name := range f.branches {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (f *fakeGit) RemoteNames() ([]string, error) {
	return f.remotes, nil
}

func (f *fakeGit) CreateBranch(name, commit string) error {
	if f.branches[name] {
		return &pkerrors.BranchAlreadyExistsError{BranchName: name}
	}
	f.branches[name] = true
	f.calls = append(f.calls, fmt.Sprintf("branch %s %s", name, commit))
	return nil
}

func (f *fakeGit) Checkout(_ context.Context, branch string) error {
	if !f.branches[branch] || f.failCheckout[branch] {
		return pkerrors.NewGitCommandError("git", []string{"checkout", branch}, "", "error: pathspec '"+branch+"' did not match", 1, nil)
	}
	f.current = branch
	f.calls = append(f.calls, "checkout "+branch)
	return nil
}

func (f *fakeGit) DeleteBranch(_ context.Context, branch string, force bool) error {
	if f.unmerged[branch] && !force {
		return pkerrors.NewGitCommandError("git", []string{"branch", "-d", branch}, "",
			"error: the branch '"+branch+"' is not fully merged", 1, nil)
	}
	delete(f.branches, branch)
	f.calls = append(f.calls, "delete "+branch)
	return nil
}

func (f *fakeGit) Commit(_ context.Context, opts git.CommitOptions) error {
	f.commits = append(f.commits, opts)
	return nil
}

func (f *fakeGit) Rebase(_ context.Context, upstream string) (git.RebaseResult, string, error) {
	f.calls = append(f.calls, fmt.Sprintf("rebase %s onto %s", f.current, upstream))
	if f.conflicts[f.current] > 0 {
		f.conflicts[f.current]--
		f.rebasing = f.current
		return git.RebaseConflict, "CONFLICT (content): Merge conflict in file.txt", nil
	}
	return git.RebaseDone, "", nil
}

func (f *fakeGit) RebaseContinue(_ context.Context) error {
	if f.rebasing == "" {
		return pkerrors.NewGitCommandError("git", []string{"rebase", "--continue"}, "", "fatal: No rebase in progress?", 128, nil)
	}
	f.calls = append(f.calls, "continue "+f.rebasing)
	f.rebasing = ""
	return nil
}

func (f *fakeGit) RebaseAbort(_ context.Context) error {
	f.calls = append(f.calls, "abort "+f.rebasing)
	f.rebasing = ""
	return nil
}

func (f *fakeGit) IsRebaseInProgress(_ context.Context) bool {
	return f.rebasing != ""
}

func (f *fakeGit) UnmergedFiles(_ context.Context) ([]string, error) {
	if f.rebasing == "" {
		return []string{}, nil
	}
	return []string{"file.txt"}, nil
}

func (f *fakeGit) AddExclude(_ context.Context, pattern string) error {
	f.excludes = append(f.excludes, pattern)
	return nil
}

// newTestContext builds an initialized context over fake with the given
// branch graph. Every tracked branch and main exist in fake.
func newTestContext(t *testing.T, fake *fakeGit, parents map[string]string) (*runtime.Context, *bytes.Buffer) {
	t.Helper()
	ctx, out := newUninitializedContext(t, fake)

	require.NoError(t, config.SaveRepoConfig(ctx.Store, config.NewRepoConfig("main", "origin")))
	require.NoError(t, ctx.Load())

	fake.branches["main"] = true
	for name, parent := range parents {
		ctx.Graph.Add(name, parent)
		fake.branches[name] = true
	}
	require.NoError(t, ctx.SaveGraph())
	return ctx, out
}

// newUninitializedContext builds a context over fake with an empty store
func newUninitializedContext(t *testing.T, fake *fakeGit) (*runtime.Context, *bytes.Buffer) {
	t.Helper()
	t.Setenv("PANCAKE_NON_INTERACTIVE", "true")

	out := &bytes.Buffer{}
	store := config.NewStoreFromFS(memfs.New())
	return runtime.NewContext(context.Background(), store, fake, tui.NewSplogWithWriter(out)), out
}

// readCheckpoint returns the raw checkpoint document, or nil when absent
func readCheckpoint(t *testing.T, ctx *runtime.Context) []byte {
	t.Helper()
	if !ctx.Store.Exists(config.ContinuationFile) {
		return nil
	}
	data, err := ctx.Store.ReadFile(config.ContinuationFile)
	require.NoError(t, err)
	return data
}

// reloadedParent reads the graph back from the store
func reloadedParent(t *testing.T, ctx *runtime.Context, name string) (string, bool) {
	t.Helper()
	fresh := runtime.NewContext(context.Background(), ctx.Store, ctx.Git, ctx.Splog)
	require.NoError(t, fresh.Load())
	return fresh.Graph.Parent(name)
}

// linearStack is main -> first -> second -> third
var linearStack = map[string]string{
	"first":  "main",
	"second": "first",
	"third":  "second",
}
