package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	pkerrors "pancake.dev/pancake/internal/errors"
)

// newTestGraph builds a graph from child -> parent pairs; "" means no parent
func newTestGraph(t *testing.T, parents map[string]string) *Graph {
	t.Helper()
	g := NewGraph()
	g.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	for name, parent := range parents {
		g.Add(name, parent)
	}
	return g
}

func TestGraph(t *testing.T) {
	t.Parallel()

	t.Run("add records parent and creation time", func(t *testing.T) {
		t.Parallel()
		g := newTestGraph(t, map[string]string{"feature": "main"})

		parent, ok := g.Parent("feature")
		require.True(t, ok)
		require.Equal(t, "main", parent)

		meta, ok := g.Meta("feature")
		require.True(t, ok)
		require.Equal(t, "2024-05-01T12:00:00Z", meta.CreatedAt)
	})

	t.Run("parent is absent for untracked and parentless branches", func(t *testing.T) {
		t.Parallel()
		g := newTestGraph(t, map[string]string{"solo": ""})

		_, ok := g.Parent("solo")
		require.False(t, ok)
		_, ok = g.Parent("missing")
		require.False(t, ok)
		require.True(t, g.IsTracked("solo"))
		require.False(t, g.IsTracked("main"))
	})

	t.Run("children are every branch naming the parent, sorted", func(t *testing.T) {
		t.Parallel()
		g := newTestGraph(t, map[string]string{
			"c":     "root",
			"a":     "root",
			"b":     "root",
			"root":  "main",
			"other": "main",
		})

		require.Equal(t, []string{"a", "b", "c"}, g.Children("root"))
		require.Equal(t, []string{"other", "root"}, g.Children("main"))
		require.Empty(t, g.Children("a"))
	})

	t.Run("reparent and remove", func(t *testing.T) {
		t.Parallel()
		g := newTestGraph(t, map[string]string{"a": "main", "b": "a"})

		g.Reparent("b", "main")
		parent, _ := g.Parent("b")
		require.Equal(t, "main", parent)

		g.Reparent("b", "")
		_, ok := g.Parent("b")
		require.False(t, ok)

		g.Reparent("missing", "a")
		require.False(t, g.IsTracked("missing"))

		g.Remove("a")
		require.Equal(t, []string{"b"}, g.Names())
		require.Equal(t, 1, g.Len())
	})
}

func TestFindTop(t *testing.T) {
	t.Parallel()

	g := newTestGraph(t, map[string]string{
		"a":  "main",
		"b":  "a",
		"c":  "b",
		"f":  "c",
		"g1": "f",
		"g2": "f",
	})

	t.Run("follows single children to a fork", func(t *testing.T) {
		top, err := g.FindTop("a")
		require.NoError(t, err)
		require.Equal(t, "f", top)
	})

	t.Run("a fork is its own top", func(t *testing.T) {
		top, err := g.FindTop("f")
		require.NoError(t, err)
		require.Equal(t, "f", top)
	})

	t.Run("a leaf is its own top", func(t *testing.T) {
		top, err := g.FindTop("g2")
		require.NoError(t, err)
		require.Equal(t, "g2", top)
	})
}

func TestFindBottom(t *testing.T) {
	t.Parallel()

	g := newTestGraph(t, map[string]string{
		"a":    "main",
		"b":    "a",
		"c":    "b",
		"solo": "",
		"x":    "solo",
	})

	for _, name := range []string{"a", "b", "c"} {
		bottom, err := g.FindBottom(name)
		require.NoError(t, err)
		require.Equal(t, "a", bottom, name)

		again, err := g.FindBottom(bottom)
		require.NoError(t, err)
		require.Equal(t, bottom, again)
	}

	bottom, err := g.FindBottom("x")
	require.NoError(t, err)
	require.Equal(t, "solo", bottom)
}

func TestCycleGuard(t *testing.T) {
	t.Parallel()

	g := newTestGraph(t, map[string]string{"a": "b", "b": "a"})

	_, err := g.FindBottom("a")
	require.ErrorIs(t, err, pkerrors.ErrCyclicGraph)

	_, err = g.FindTop("a")
	require.ErrorIs(t, err, pkerrors.ErrCyclicGraph)

	_, err = g.CollectSequence("a")
	require.ErrorIs(t, err, pkerrors.ErrCyclicGraph)

	require.Empty(t, g.BuildForest())
}
