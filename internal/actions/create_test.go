package actions_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pancake.dev/pancake/internal/actions"
	pkerrors "pancake.dev/pancake/internal/errors"
	"pancake.dev/pancake/internal/utils"
)

func TestCreateAction(t *testing.T) {
	t.Run("creates on top of the current branch", func(t *testing.T) {
		fake := newFakeGit("first")
		ctx, out := newTestContext(t, fake, map[string]string{"first": "main"})

		require.NoError(t, actions.CreateAction(ctx, actions.CreateOptions{BranchName: "second"}))
		require.Equal(t, []string{"branch second sha-first", "checkout second"}, fake.calls)
		require.Equal(t, "Created branch 'second' based on 'first' and switched to it\n", out.String())

		parent, ok := reloadedParent(t, ctx, "second")
		require.True(t, ok)
		require.Equal(t, "first", parent)

		meta, ok := ctx.Graph.Meta("second")
		require.True(t, ok)
		require.NotEmpty(t, meta.CreatedAt)
	})

	t.Run("uses an explicit base", func(t *testing.T) {
		fake := newFakeGit("main", "release")
		ctx, _ := newTestContext(t, fake, nil)

		require.NoError(t, actions.CreateAction(ctx, actions.CreateOptions{BranchName: "hotfix", Base: "release"}))
		parent, ok := reloadedParent(t, ctx, "hotfix")
		require.True(t, ok)
		require.Equal(t, "release", parent)
		require.Equal(t, "hotfix", fake.current)
	})

	t.Run("missing base", func(t *testing.T) {
		fake := newFakeGit("main")
		ctx, _ := newTestContext(t, fake, nil)

		err := actions.CreateAction(ctx, actions.CreateOptions{BranchName: "x", Base: "nope"})
		require.EqualError(t, err, "Base branch 'nope' does not exist")
		require.False(t, ctx.Graph.IsTracked("x"))
	})

	t.Run("existing name", func(t *testing.T) {
		fake := newFakeGit("main")
		ctx, _ := newTestContext(t, fake, linearStack)

		err := actions.CreateAction(ctx, actions.CreateOptions{BranchName: "first"})
		require.ErrorIs(t, err, pkerrors.ErrBranchAlreadyExists)
		require.Equal(t, "Branch 'first' already exists", err.Error())
	})

	t.Run("detached head", func(t *testing.T) {
		fake := newFakeGit("")
		ctx, _ := newTestContext(t, fake, nil)

		err := actions.CreateAction(ctx, actions.CreateOptions{BranchName: "x"})
		require.EqualError(t, err, "HEAD is not currently on a branch. Cannot determine base branch.")
	})

	t.Run("name is required without a terminal", func(t *testing.T) {
		fake := newFakeGit("main")
		ctx, _ := newTestContext(t, fake, nil)

		err := actions.CreateAction(ctx, actions.CreateOptions{})
		require.EqualError(t, err, "a branch name is required: `pk branch create <name>`")
	})

	t.Run("rejects names git cannot store", func(t *testing.T) {
		fake := newFakeGit("main")
		ctx, _ := newTestContext(t, fake, nil)

		err := actions.CreateAction(ctx, actions.CreateOptions{BranchName: "my feature"})
		var invalid *utils.InvalidBranchNameError
		require.ErrorAs(t, err, &invalid)
		require.Contains(t, err.Error(), "Try 'my-feature'")
		require.Empty(t, fake.calls)
		require.False(t, ctx.Graph.IsTracked("my feature"))
	})
}
