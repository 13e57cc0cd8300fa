package cli_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSyncCommand(t *testing.T) {
	t.Parallel()
	binaryPath := getPkBinary(t)

	t.Run("sync all after main moves", func(t *testing.T) {
		t.Parallel()
		s := newLinearStack(t, binaryPath)

		s.RunCli("co", "main")
		require.NoError(t, s.Scene.Repo.CreateChangeAndCommit("main moved", "main"))
		s.RunCli("co", "second")

		output := s.RunCli("sync", "--all")
		require.Contains(t, output, "Synced 3 branch(es): first -> second -> third")
		s.ExpectBranch("second")
		s.ExpectStacked(map[string]string{"first": "main", "second": "first", "third": "second"})
	})

	t.Run("conflict then continue", func(t *testing.T) {
		t.Parallel()
		s := newLinearStack(t, binaryPath)

		require.NoError(t, s.Scene.Repo.WriteFile("shared.txt", "third\n"))
		s.RunGit("add", "shared.txt").RunGit("commit", "-m", "third shared")
		s.RunCli("co", "main")
		require.NoError(t, s.Scene.Repo.WriteFile("shared.txt", "main\n"))
		s.RunGit("add", "shared.txt").RunGit("commit", "-m", "main shared")
		s.RunCli("co", "first")

		output := s.RunExpectError("s")
		require.Contains(t, output, "Error: Git rebase failed while rebasing 'third' onto 'second'")
		require.True(t, s.Scene.Repo.RebaseInProgress())

		output = s.RunExpectError("restack", "--continue")
		require.Contains(t, output, "pk sync")

		require.NoError(t, s.Scene.Repo.WriteFile("shared.txt", "resolved\n"))
		require.NoError(t, s.Scene.Repo.MarkMergeConflictsAsResolved())
		output = s.RunCli("sync", "--continue")
		require.Contains(t, output, "Synced 3 branch(es)")
		require.False(t, s.Scene.Repo.RebaseInProgress())
		s.ExpectBranch("first")
		s.ExpectStacked(map[string]string{"first": "main", "second": "first", "third": "second"})
	})

	t.Run("abort clears the operation", func(t *testing.T) {
		t.Parallel()
		s := newLinearStack(t, binaryPath)

		require.NoError(t, s.Scene.Repo.WriteFile("shared.txt", "third\n"))
		s.RunGit("add", "shared.txt").RunGit("commit", "-m", "third shared")
		s.RunCli("co", "main")
		require.NoError(t, s.Scene.Repo.WriteFile("shared.txt", "main\n"))
		s.RunGit("add", "shared.txt").RunGit("commit", "-m", "main shared")
		s.RunCli("co", "first")

		s.RunExpectError("sync")
		output := s.RunCli("sync", "--abort")
		require.Contains(t, output, "Aborted sync operation.")
		require.False(t, s.Scene.Repo.RebaseInProgress())

		output = s.RunExpectError("sync", "--continue")
		require.Contains(t, output, "Error: ")
	})

	t.Run("flags that cannot be combined", func(t *testing.T) {
		t.Parallel()
		s := newLinearStack(t, binaryPath)

		output := s.RunExpectError("sync", "--continue", "--abort")
		require.Contains(t, output, "Error: Cannot use --continue and --abort together.")
		require.Equal(t, 1, strings.Count(output, "Error: "))
	})
}

func TestRestackCommand(t *testing.T) {
	t.Parallel()
	binaryPath := getPkBinary(t)

	t.Run("restack is idempotent", func(t *testing.T) {
		t.Parallel()
		s := newLinearStack(t, binaryPath)

		output := s.RunCli("restack")
		require.Contains(t, output, "Restacked 3 branch(es): first -> second -> third")
		before, err := s.Scene.Repo.GetRevision("third")
		require.NoError(t, err)

		s.RunCli("restack")
		after, err := s.Scene.Repo.GetRevision("third")
		require.NoError(t, err)
		require.Equal(t, before, after)
	})

	t.Run("untracked current branch", func(t *testing.T) {
		t.Parallel()
		s := newLinearStack(t, binaryPath)

		s.RunCli("co", "main")
		output := s.RunExpectError("restack")
		require.Contains(t, output, "Error: ")
	})
}
