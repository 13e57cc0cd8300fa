package actions

import (
	"errors"

	pkerrors "pancake.dev/pancake/internal/errors"
	"pancake.dev/pancake/internal/runtime"
	"pancake.dev/pancake/internal/tui"
	"pancake.dev/pancake/internal/tui/style"
)

// CheckoutOptions contains options for the checkout command
type CheckoutOptions struct {
	BranchName string
}

// CheckoutAction checks out a branch, prompting for one of the tracked
// branches when no name is given
func CheckoutAction(ctx *runtime.Context, opts CheckoutOptions) error {
	currentBranch, err := ctx.Git.CurrentBranch()
	if err != nil && !errors.Is(err, pkerrors.ErrNotOnBranch) {
		return err
	}

	branchName := opts.BranchName
	if branchName == "" {
		branchName, err = promptForTrackedBranch(ctx, currentBranch)
		if err != nil {
			return err
		}
	}

	exists, err := ctx.Git.BranchExists(branchName)
	if err != nil {
		return err
	}
	if !exists {
		return pkerrors.NewBranchNotFoundError(branchName)
	}

	if branchName == currentBranch {
		ctx.Splog.Info("Already on '%s'", branchName)
		return nil
	}
	return switchTo(ctx, branchName, "Switched to branch '%s'")
}

func promptForTrackedBranch(ctx *runtime.Context, currentBranch string) (string, error) {
	names := ctx.Graph.Names()
	if len(names) == 0 {
		return "", errors.New("No tracked branches to check out. Create one with `pk branch create <name>`.")
	}

	options := make([]tui.SelectOption, len(names))
	defaultIndex := 0
	for i, name := range names {
		label := name
		if name == currentBranch {
			label += style.ColorDim(" (current)")
			defaultIndex = i
		}
		options[i] = tui.SelectOption{Label: label, Value: name}
	}

	selected, err := tui.PromptSelect("Checkout a branch", options, defaultIndex)
	if errors.Is(err, tui.ErrInteractiveDisabled) {
		return "", errors.New("a branch name is required when not running interactively: `pk checkout <branch-name>`")
	}
	return selected, err
}
