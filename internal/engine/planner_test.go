package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollectSequence(t *testing.T) {
	t.Parallel()

	t.Run("pre-order with lexicographic siblings", func(t *testing.T) {
		t.Parallel()
		g := newTestGraph(t, map[string]string{
			"root": "main",
			"b":    "root",
			"a":    "root",
			"a2":   "a",
			"a1":   "a",
			"b1":   "b",
		})

		seq, err := g.CollectSequence("root")
		require.NoError(t, err)
		require.Equal(t, []string{"root", "a", "a1", "a2", "b", "b1"}, seq)
	})

	t.Run("visits every descendant once after its parent", func(t *testing.T) {
		t.Parallel()
		parents := map[string]string{
			"s":   "main",
			"t":   "s",
			"u":   "s",
			"v":   "t",
			"w":   "t",
			"x":   "u",
			"y":   "x",
			"z":   "x",
			"zz":  "main",
			"zzz": "zz",
		}
		g := newTestGraph(t, parents)

		seq, err := g.CollectSequence("s")
		require.NoError(t, err)
		require.Len(t, seq, 8)
		require.Equal(t, "s", seq[0])

		position := make(map[string]int)
		for i, name := range seq {
			_, dup := position[name]
			require.False(t, dup, "visited %s twice", name)
			position[name] = i
		}
		for name, idx := range position {
			if name == "s" {
				continue
			}
			require.Less(t, position[parents[name]], idx, "%s before its parent", name)
		}
		require.NotContains(t, seq, "zz")
	})

	t.Run("subtree of an inner branch", func(t *testing.T) {
		t.Parallel()
		g := newTestGraph(t, map[string]string{"a": "main", "b": "a", "c": "b"})

		seq, err := g.CollectSequence("b")
		require.NoError(t, err)
		require.Equal(t, []string{"b", "c"}, seq)
	})

	t.Run("untracked start is empty", func(t *testing.T) {
		t.Parallel()
		g := newTestGraph(t, map[string]string{"a": "main"})

		seq, err := g.CollectSequence("main")
		require.NoError(t, err)
		require.Empty(t, seq)
	})
}
