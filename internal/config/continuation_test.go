package config

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/require"
)

func TestContinuationState(t *testing.T) {
	t.Parallel()

	t.Run("returns nil when no checkpoint exists", func(t *testing.T) {
		t.Parallel()
		store := NewStoreFromFS(memfs.New())

		state, err := GetContinuationState(store)
		require.NoError(t, err)
		require.Nil(t, state)
	})

	t.Run("persists and reloads", func(t *testing.T) {
		t.Parallel()
		store := NewStoreFromFS(memfs.New())
		state := &ContinuationState{
			Kind:           "sync",
			Branches:       []string{"a", "b", "c"},
			CurrentIndex:   1,
			OriginalBranch: "c",
		}

		require.NoError(t, PersistContinuationState(store, state))

		loaded, err := GetContinuationState(store)
		require.NoError(t, err)
		require.Equal(t, state, loaded)
	})

	t.Run("uses the documented field names", func(t *testing.T) {
		t.Parallel()
		fs := memfs.New()
		store := NewStoreFromFS(fs)

		require.NoError(t, PersistContinuationState(store, &ContinuationState{
			Kind:           "restack",
			Branches:       []string{"a"},
			OriginalBranch: "a",
		}))

		data, err := util.ReadFile(fs, ".pancake/operation_state.json")
		require.NoError(t, err)
		require.JSONEq(t, `{"kind":"restack","branches":["a"],"current_index":0,"original_branch":"a"}`, string(data))
	})

	t.Run("clear removes the checkpoint and tolerates a missing file", func(t *testing.T) {
		t.Parallel()
		store := NewStoreFromFS(memfs.New())
		require.NoError(t, PersistContinuationState(store, &ContinuationState{Kind: "sync", Branches: []string{"a"}}))

		require.NoError(t, ClearContinuationState(store))
		require.False(t, store.Exists(ContinuationFile))
		require.NoError(t, ClearContinuationState(store))
	})

	t.Run("rejects an out of range index", func(t *testing.T) {
		t.Parallel()
		fs := memfs.New()
		require.NoError(t, util.WriteFile(fs, ".pancake/operation_state.json",
			[]byte(`{"kind":"sync","branches":["a"],"current_index":2,"original_branch":"a"}`), 0o600))

		_, err := GetContinuationState(NewStoreFromFS(fs))
		require.Error(t, err)
		require.Contains(t, err.Error(), "out of range")
	})

	t.Run("index equal to length is valid", func(t *testing.T) {
		t.Parallel()
		state := &ContinuationState{Kind: "sync", Branches: []string{"a", "b"}, CurrentIndex: 2}
		require.NoError(t, state.Validate())
	})
}
