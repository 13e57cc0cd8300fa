package testhelpers

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Must is a generic helper function that panics if err is not nil,
// otherwise returns the value. This is useful for test setup code
// where errors are not expected and should halt execution immediately.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// ExpectBranches asserts that the repository has exactly the expected local branches.
func ExpectBranches(t *testing.T, repo *GitRepo, expected []string) {
	t.Helper()

	cmd := exec.Command("git", "-C", repo.Dir,
		"for-each-ref", "refs/heads/", "--format=%(refname:short)")
	output, err := cmd.Output()
	require.NoError(t, err, "Failed to list branches")

	actual := splitLines(string(output))
	sort.Strings(actual)
	expected = append([]string{}, expected...)
	sort.Strings(expected)

	require.Equal(t, expected, actual, "Branches do not match")
}

// ExpectCommits asserts that the newest commit subjects on branch match expected.
func ExpectCommits(t *testing.T, repo *GitRepo, branch string, expected []string) {
	t.Helper()

	output, err := repo.RunGitCommandAndGetOutput("log", "--format=%s", branch)
	require.NoError(t, err, "Failed to list commits")

	commits := splitLines(output)
	if len(commits) < len(expected) {
		require.Fail(t, "Not enough commits", "Expected %d commits, got %d", len(expected), len(commits))
		return
	}
	require.Equal(t, expected, commits[:len(expected)], "Commits do not match")
}

// ReadRecordedParents reads the stored branch graph and returns each tracked
// branch's recorded parent, with "" for branches that have none.
func ReadRecordedParents(t *testing.T, repo *GitRepo) map[string]string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(repo.Dir, ".pancake", "stacks.json"))
	require.NoError(t, err, "Failed to read stacks.json")

	var doc struct {
		Branches map[string]struct {
			Parent *string `json:"parent"`
		} `json:"branches"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))

	parents := make(map[string]string, len(doc.Branches))
	for name, meta := range doc.Branches {
		if meta.Parent != nil {
			parents[name] = *meta.Parent
		} else {
			parents[name] = ""
		}
	}
	return parents
}

// ExpectRecordedParents asserts that the stored branch graph matches expected exactly.
func ExpectRecordedParents(t *testing.T, repo *GitRepo, expected map[string]string) {
	t.Helper()
	require.Equal(t, expected, ReadRecordedParents(t, repo), "Recorded parents do not match")
}

// ExpectOutputLines asserts that every expected line appears in output, in order.
func ExpectOutputLines(t *testing.T, output string, expected ...string) {
	t.Helper()

	rest := output
	for _, line := range expected {
		idx := strings.Index(rest, line)
		require.GreaterOrEqual(t, idx, 0, "expected %q in output:\n%s", line, output)
		rest = rest[idx+len(line):]
	}
}
