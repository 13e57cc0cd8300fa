package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// RebaseResult represents the result of a rebase operation
type RebaseResult int

const (
	// RebaseDone indicates the rebase was successful
	RebaseDone RebaseResult = iota
	// RebaseConflict indicates the rebase stopped, usually on a conflict
	RebaseConflict
)

// Rebase rebases the checked out branch onto upstream. Any non-zero exit is
// reported as RebaseConflict together with git's stdout and stderr; an error
// means git could not be run at all.
func (r *CommandRunner) Rebase(ctx context.Context, upstream string) (RebaseResult, string, error) {
	res, err := r.Exec(ctx, "rebase", upstream)
	if err != nil {
		return RebaseConflict, "", err
	}
	if res.ExitCode != 0 {
		return RebaseConflict, res.Output(), nil
	}
	return RebaseDone, "", nil
}

// RebaseContinue continues an in-progress rebase without opening an editor
func (r *CommandRunner) RebaseContinue(ctx context.Context) error {
	if _, err := r.Run(ctx, "-c", "core.editor=true", "rebase", "--continue"); err != nil {
		return err
	}
	return nil
}

// RebaseAbort aborts an in-progress rebase
func (r *CommandRunner) RebaseAbort(ctx context.Context) error {
	if _, err := r.Run(ctx, "rebase", "--abort"); err != nil {
		return err
	}
	return nil
}

// IsRebaseInProgress checks if a rebase is currently in progress
func (r *CommandRunner) IsRebaseInProgress(ctx context.Context) bool {
	// rebase-merge / rebase-apply are more reliable than REBASE_HEAD, which can
	// linger after the rebase finished
	gitDir, err := r.Run(ctx, "rev-parse", "--git-dir")
	if err != nil {
		return false
	}
	if !filepath.IsAbs(gitDir) && r.workingDir != "" {
		gitDir = filepath.Join(r.workingDir, gitDir)
	}

	for _, dir := range []string{"rebase-merge", "rebase-apply"} {
		if _, err := os.Stat(filepath.Join(gitDir, dir)); err == nil {
			return true
		}
	}
	return false
}

// Checkout switches the worktree to branch
func (r *CommandRunner) Checkout(ctx context.Context, branch string) error {
	if _, err := r.Run(ctx, "checkout", branch); err != nil {
		return err
	}
	return nil
}

// DeleteBranch deletes a local branch. Without force git refuses branches
// that are not merged.
func (r *CommandRunner) DeleteBranch(ctx context.Context, branch string, force bool) error {
	flag := "-d"
	if force {
		flag = "-D"
	}
	if _, err := r.Run(ctx, "branch", flag, branch); err != nil {
		return err
	}
	return nil
}

// CommitOptions configures Commit
type CommitOptions struct {
	Message string
	All     bool
	Amend   bool
}

// Commit records a commit on the checked out branch
func (r *CommandRunner) Commit(ctx context.Context, opts CommitOptions) error {
	if opts.All {
		if _, err := r.Run(ctx, "add", "-A"); err != nil {
			return fmt.Errorf("failed to stage changes: %w", err)
		}
	}
	args := []string{"commit", "-m", opts.Message}
	if opts.Amend {
		args = append(args, "--amend")
	}
	if _, err := r.Run(ctx, args...); err != nil {
		return err
	}
	return nil
}

// UnmergedFiles lists paths with unresolved conflicts
func (r *CommandRunner) UnmergedFiles(ctx context.Context) ([]string, error) {
	return r.RunLines(ctx, "diff", "--name-only", "--diff-filter=U")
}
