// Package git provides low-level Git operations.
//
// Reads (current branch, refs, remotes) go through go-git. Anything that
// rewrites the worktree shells out to the git binary:
//   - Branch management (create, delete, checkout)
//   - Commits (commit, amend)
//   - Rebase (start, continue, abort, conflict status)
//
// This package should be the only place where direct git commands are executed.
package git
