package actions

import (
	"errors"
	"fmt"

	pkerrors "pancake.dev/pancake/internal/errors"
	"pancake.dev/pancake/internal/runtime"
	"pancake.dev/pancake/internal/tui"
	"pancake.dev/pancake/internal/utils"
)

// CreateOptions contains options for creating a branch
type CreateOptions struct {
	BranchName string
	// Base defaults to the current branch
	Base string
}

// CreateAction creates a branch at the tip of its base, checks it out and
// tracks it with the base as parent
func CreateAction(ctx *runtime.Context, opts CreateOptions) error {
	branchName := opts.BranchName
	if branchName == "" {
		name, err := tui.PromptInput("Name of the new branch", ctx.Config.Stack.Prefix)
		if errors.Is(err, tui.ErrInteractiveDisabled) {
			return errors.New("a branch name is required: `pk branch create <name>`")
		}
		if err != nil {
			return err
		}
		if name == "" {
			return errors.New("a branch name is required")
		}
		branchName = name
	}
	if err := utils.ValidateBranchName(branchName); err != nil {
		return err
	}

	baseBranch := opts.Base
	if baseBranch != "" {
		exists, err := ctx.Git.BranchExists(baseBranch)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("Base branch '%s' does not exist", baseBranch)
		}
	} else {
		current, err := ctx.Git.CurrentBranch()
		if errors.Is(err, pkerrors.ErrNotOnBranch) {
			return errors.New("HEAD is not currently on a branch. Cannot determine base branch.")
		}
		if err != nil {
			return err
		}
		baseBranch = current
	}

	exists, err := ctx.Git.BranchExists(branchName)
	if err != nil {
		return err
	}
	if exists {
		return &pkerrors.BranchAlreadyExistsError{BranchName: branchName}
	}

	commit, err := ctx.Git.ResolveCommit(baseBranch)
	if err != nil {
		return err
	}
	if err := ctx.Git.CreateBranch(branchName, commit); err != nil {
		return err
	}
	if err := ctx.Git.Checkout(ctx, branchName); err != nil {
		return err
	}

	ctx.Graph.Add(branchName, baseBranch)
	if err := ctx.SaveGraph(); err != nil {
		return err
	}

	ctx.Splog.Info("Created branch '%s' based on '%s' and switched to it", branchName, baseBranch)
	return nil
}
