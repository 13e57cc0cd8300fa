package actions

import (
	"context"
	"fmt"

	"pancake.dev/pancake/internal/git"
)

// RebaseOutcome classifies one rebase step. Fatal failures are returned as
// errors instead.
type RebaseOutcome int

const (
	// RebaseSuccess means the branch now sits on top of its parent
	RebaseSuccess RebaseOutcome = iota
	// RebaseConflict means git stopped and left the rebase for the user
	RebaseConflict
)

// RebaseExecutor performs single rebase steps against the git engine
type RebaseExecutor struct {
	git git.Engine
}

// NewRebaseExecutor creates a RebaseExecutor
func NewRebaseExecutor(eng git.Engine) *RebaseExecutor {
	return &RebaseExecutor{git: eng}
}

// Rebase checks out branch and rebases it onto onto. Any non-zero exit from
// git rebase is a conflict, reported with git's output. A failed checkout or
// a git that cannot be run is returned as an error.
func (e *RebaseExecutor) Rebase(ctx context.Context, branch, onto string) (RebaseOutcome, string, error) {
	if err := e.git.Checkout(ctx, branch); err != nil {
		return RebaseSuccess, "", fmt.Errorf("failed to checkout branch '%s': %w", branch, err)
	}

	result, diagnostics, err := e.git.Rebase(ctx, onto)
	if err != nil {
		return RebaseSuccess, "", err
	}
	if result == git.RebaseConflict {
		return RebaseConflict, diagnostics, nil
	}
	return RebaseSuccess, "", nil
}

// ContinueCurrent resumes the stopped rebase
func (e *RebaseExecutor) ContinueCurrent(ctx context.Context) error {
	return e.git.RebaseContinue(ctx)
}

// AbortCurrent abandons the stopped rebase
func (e *RebaseExecutor) AbortCurrent(ctx context.Context) error {
	return e.git.RebaseAbort(ctx)
}
