package actions

import (
	"errors"
	"fmt"

	pkerrors "pancake.dev/pancake/internal/errors"
	"pancake.dev/pancake/internal/runtime"
)

// SyncOptions contains options for the sync command
type SyncOptions struct {
	// All starts from the bottom of the current stack instead of the current branch
	All bool
	// FromMain treats the main branch as the sync base, which implies All
	FromMain bool
	Continue bool
	Abort    bool
}

// SyncAction rebases the current branch and everything above it onto their
// recorded parents
func SyncAction(ctx *runtime.Context, opts SyncOptions) error {
	if opts.Continue && opts.Abort {
		return errors.New("Cannot use --continue and --abort together.")
	}
	if (opts.Continue || opts.Abort) && (opts.All || opts.FromMain) {
		return errors.New("Cannot combine --continue/--abort with --all/--from-main.")
	}

	if opts.Continue {
		return ContinueOperation(ctx, OperationSync)
	}
	if opts.Abort {
		return AbortOperation(ctx, OperationSync)
	}

	if err := ensureNoActiveOperation(ctx); err != nil {
		return err
	}

	currentBranch, err := trackedCurrentBranch(ctx)
	if err != nil {
		return err
	}

	startBranch := currentBranch
	if opts.All || opts.FromMain {
		startBranch, err = ctx.Graph.FindBottom(currentBranch)
		if err != nil {
			return err
		}
	}

	branches, err := ctx.Graph.CollectSequence(startBranch)
	if err != nil {
		return err
	}
	if len(branches) == 0 {
		return fmt.Errorf("No tracked branches to sync starting from '%s'", startBranch)
	}

	return StartOperation(ctx, OperationSync, branches, currentBranch)
}

// trackedCurrentBranch returns the checked out branch, which must be tracked
func trackedCurrentBranch(ctx *runtime.Context) (string, error) {
	currentBranch, err := ctx.Git.CurrentBranch()
	if err != nil {
		return "", err
	}
	if !ctx.Graph.IsTracked(currentBranch) {
		return "", &pkerrors.UntrackedBranchError{BranchName: currentBranch}
	}
	return currentBranch, nil
}
