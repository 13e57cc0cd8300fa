package actions_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pancake.dev/pancake/internal/actions"
	pkerrors "pancake.dev/pancake/internal/errors"
)

func TestDelete(t *testing.T) {
	t.Run("reparents children onto the deleted branch's parent", func(t *testing.T) {
		fake := newFakeGit("main")
		ctx, out := newTestContext(t, fake, map[string]string{
			"first":   "main",
			"middle":  "first",
			"child-a": "middle",
			"child-b": "middle",
		})

		require.NoError(t, actions.Delete(ctx, actions.DeleteOptions{BranchName: "middle"}))
		require.Equal(t,
			"Restacked 'child-a' onto 'first'\nRestacked 'child-b' onto 'first'\n"+
				"Deleted branch 'middle' and restacked 2 child branch(es)\n",
			out.String())

		for _, child := range []string{"child-a", "child-b"} {
			parent, ok := reloadedParent(t, ctx, child)
			require.True(t, ok)
			require.Equal(t, "first", parent)
		}
		require.False(t, ctx.Graph.IsTracked("middle"))
		require.False(t, fake.branches["middle"])
		require.Equal(t, []string{"child-a", "child-b"}, ctx.Graph.Children("first"))
	})

	t.Run("deletes a leaf", func(t *testing.T) {
		fake := newFakeGit("main")
		ctx, out := newTestContext(t, fake, linearStack)

		require.NoError(t, actions.Delete(ctx, actions.DeleteOptions{BranchName: "third"}))
		require.Equal(t, "Deleted branch 'third'\n", out.String())
		_, ok := reloadedParent(t, ctx, "third")
		require.False(t, ok)
	})

	t.Run("children of a parentless branch become parentless", func(t *testing.T) {
		fake := newFakeGit("main")
		ctx, out := newTestContext(t, fake, map[string]string{
			"root": "",
			"leaf": "root",
		})

		require.NoError(t, actions.Delete(ctx, actions.DeleteOptions{BranchName: "root"}))
		require.Contains(t, out.String(), "Restacked 'leaf' onto 'main'")
		_, ok := reloadedParent(t, ctx, "leaf")
		require.False(t, ok)
		require.True(t, ctx.Graph.IsTracked("leaf"))
	})

	t.Run("unmerged branch needs force", func(t *testing.T) {
		fake := newFakeGit("main")
		fake.unmerged["second"] = true
		ctx, _ := newTestContext(t, fake, linearStack)

		err := actions.Delete(ctx, actions.DeleteOptions{BranchName: "second"})
		require.Error(t, err)
		require.Contains(t, err.Error(), "Branch 'second' has unmerged changes. Use `--force` to delete anyway.")
		require.Contains(t, err.Error(), "not fully merged")

		require.True(t, fake.branches["second"])
		parent, ok := reloadedParent(t, ctx, "third")
		require.True(t, ok)
		require.Equal(t, "second", parent)

		require.NoError(t, actions.Delete(ctx, actions.DeleteOptions{BranchName: "second", Force: true}))
		require.False(t, fake.branches["second"])
		parent, _ = reloadedParent(t, ctx, "third")
		require.Equal(t, "first", parent)
	})

	t.Run("refuses the checked out branch", func(t *testing.T) {
		fake := newFakeGit("second")
		ctx, _ := newTestContext(t, fake, linearStack)

		err := actions.Delete(ctx, actions.DeleteOptions{BranchName: "second"})
		require.EqualError(t, err, "Cannot delete the currently checked out branch 'second'")
		require.True(t, fake.branches["second"])
	})

	t.Run("missing branch", func(t *testing.T) {
		fake := newFakeGit("main")
		ctx, _ := newTestContext(t, fake, linearStack)

		err := actions.Delete(ctx, actions.DeleteOptions{BranchName: "ghost"})
		require.ErrorIs(t, err, pkerrors.ErrBranchNotFound)
		require.Equal(t, "Branch 'ghost' does not exist", err.Error())
	})
}
