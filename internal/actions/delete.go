package actions

import (
	"errors"
	"fmt"

	pkerrors "pancake.dev/pancake/internal/errors"
	"pancake.dev/pancake/internal/runtime"
	"pancake.dev/pancake/internal/tui"
)

// DeleteOptions contains options for deleting a branch
type DeleteOptions struct {
	BranchName string
	Force      bool
}

// Delete deletes a branch, moving its children onto its recorded parent.
// The graph is only saved once the git branch is gone; a failed deletion
// leaves the stored graph as it was.
func Delete(ctx *runtime.Context, opts DeleteOptions) error {
	exists, err := ctx.Git.BranchExists(opts.BranchName)
	if err != nil {
		return err
	}
	if !exists {
		return pkerrors.NewBranchNotFoundError(opts.BranchName)
	}

	currentBranch, err := ctx.Git.CurrentBranch()
	if err != nil && !errors.Is(err, pkerrors.ErrNotOnBranch) {
		return err
	}
	if currentBranch == opts.BranchName {
		return fmt.Errorf("Cannot delete the currently checked out branch '%s'", opts.BranchName)
	}

	parent, _ := ctx.Graph.Parent(opts.BranchName)
	children := ctx.Graph.Children(opts.BranchName)

	displayParent := parent
	if displayParent == "" {
		displayParent = ctx.Config.MainBranch()
	}
	for _, child := range children {
		ctx.Graph.Reparent(child, parent)
		ctx.Splog.Info("Restacked '%s' onto '%s'", child, displayParent)
	}

	if err := deleteGitBranch(ctx, opts); err != nil {
		return err
	}

	ctx.Graph.Remove(opts.BranchName)
	if err := ctx.SaveGraph(); err != nil {
		return err
	}

	if len(children) == 0 {
		ctx.Splog.Info("Deleted branch '%s'", opts.BranchName)
	} else {
		ctx.Splog.Info("Deleted branch '%s' and restacked %d child branch(es)", opts.BranchName, len(children))
	}
	return nil
}

func deleteGitBranch(ctx *runtime.Context, opts DeleteOptions) error {
	if opts.Force {
		if err := ctx.Git.DeleteBranch(ctx, opts.BranchName, true); err != nil {
			return fmt.Errorf("failed to delete branch '%s': %w", opts.BranchName, err)
		}
		return nil
	}

	deleteErr := ctx.Git.DeleteBranch(ctx, opts.BranchName, false)
	if deleteErr == nil {
		return nil
	}

	confirmed, err := tui.PromptConfirm(
		fmt.Sprintf("Branch '%s' has unmerged changes. Delete it anyway?", opts.BranchName), false)
	if err != nil || !confirmed {
		return fmt.Errorf("Branch '%s' has unmerged changes. Use `--force` to delete anyway.\nError: %w",
			opts.BranchName, deleteErr)
	}
	if err := ctx.Git.DeleteBranch(ctx, opts.BranchName, true); err != nil {
		return fmt.Errorf("failed to delete branch '%s': %w", opts.BranchName, err)
	}
	return nil
}
