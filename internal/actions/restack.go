package actions

import (
	"errors"
	"fmt"

	"pancake.dev/pancake/internal/runtime"
)

// RestackOptions contains options for the restack command
type RestackOptions struct {
	Continue bool
	Abort    bool
}

// RestackAction rebases the whole stack containing the current branch, from
// its bottom to its tops
func RestackAction(ctx *runtime.Context, opts RestackOptions) error {
	if opts.Continue && opts.Abort {
		return errors.New("Cannot use --continue and --abort together.")
	}

	if opts.Continue {
		return ContinueOperation(ctx, OperationRestack)
	}
	if opts.Abort {
		return AbortOperation(ctx, OperationRestack)
	}

	if err := ensureNoActiveOperation(ctx); err != nil {
		return err
	}

	currentBranch, err := trackedCurrentBranch(ctx)
	if err != nil {
		return err
	}

	bottomBranch, err := ctx.Graph.FindBottom(currentBranch)
	if err != nil {
		return err
	}
	branches, err := ctx.Graph.CollectSequence(bottomBranch)
	if err != nil {
		return err
	}
	if len(branches) == 0 {
		return fmt.Errorf("No tracked branches to restack starting from '%s'", bottomBranch)
	}

	return StartOperation(ctx, OperationRestack, branches, currentBranch)
}
