package git_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	pkerrors "pancake.dev/pancake/internal/errors"
	"pancake.dev/pancake/internal/git"
	"pancake.dev/pancake/testhelpers"
)

func newRunner(t *testing.T, scene *testhelpers.Scene) *git.CommandRunner {
	t.Helper()
	return git.NewCommandRunner(scene.Dir).WithEnv("GIT_CONFIG_GLOBAL=/dev/null")
}

func TestCommandRunner(t *testing.T) {
	t.Run("run returns trimmed stdout", func(t *testing.T) {
		scene := testhelpers.NewSceneParallel(t, testhelpers.BasicSceneSetup)
		runner := newRunner(t, scene)

		out, err := runner.Run(context.Background(), "branch", "--show-current")
		require.NoError(t, err)
		require.Equal(t, "main", out)
		require.Equal(t, scene.Dir, runner.WorkingDir())
	})

	t.Run("exec reports non-zero exits without an error", func(t *testing.T) {
		scene := testhelpers.NewSceneParallel(t, testhelpers.BasicSceneSetup)
		runner := newRunner(t, scene)

		res, err := runner.Exec(context.Background(), "rev-parse", "--verify", "refs/heads/missing")
		require.NoError(t, err)
		require.NotZero(t, res.ExitCode)
		require.NotEmpty(t, res.Diagnostics())
	})

	t.Run("run wraps failures as git command errors", func(t *testing.T) {
		scene := testhelpers.NewSceneParallel(t, testhelpers.BasicSceneSetup)
		runner := newRunner(t, scene)

		_, err := runner.Run(context.Background(), "checkout", "does-not-exist")
		require.Error(t, err)
		require.True(t, errors.Is(err, pkerrors.ErrExternalTool))

		var gitErr *pkerrors.GitCommandError
		require.True(t, errors.As(err, &gitErr))
		require.Equal(t, []string{"checkout", "does-not-exist"}, gitErr.Args)
		require.Contains(t, err.Error(), "`git checkout does-not-exist` failed with exit code")
		require.Contains(t, err.Error(), "Git stderr:")
	})

	t.Run("run lines splits output", func(t *testing.T) {
		scene := testhelpers.NewSceneParallel(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.CreateBranch("alpha"))
		runner := newRunner(t, scene)

		lines, err := runner.RunLines(context.Background(), "for-each-ref", "--format=%(refname:short)", "refs/heads/")
		require.NoError(t, err)
		require.Equal(t, []string{"alpha", "main"}, lines)

		empty, err := runner.RunLines(context.Background(), "diff", "--name-only")
		require.NoError(t, err)
		require.Empty(t, empty)
	})
}

func TestResultDiagnostics(t *testing.T) {
	require.Equal(t, "bad", git.Result{Stderr: " bad \n", Stdout: "ignored"}.Diagnostics())
	require.Equal(t, "fallback", git.Result{Stdout: "fallback\n"}.Diagnostics())
}

func TestResultOutput(t *testing.T) {
	res := git.Result{
		Stdout: "Auto-merging shared_test.txt\nCONFLICT (add/add): Merge conflict in shared_test.txt\n",
		Stderr: "Rebasing (1/1)\rerror: could not apply 6e7bb87... feature side\nhint: resolve all conflicts manually\n",
	}
	require.Equal(t, "Auto-merging shared_test.txt\n"+
		"CONFLICT (add/add): Merge conflict in shared_test.txt\n"+
		"error: could not apply 6e7bb87... feature side\n"+
		"hint: resolve all conflicts manually", res.Output())

	require.Equal(t, "only stderr", git.Result{Stderr: "\n only stderr \n"}.Output())
	require.Empty(t, git.Result{}.Output())
}
