package actions

import (
	"fmt"

	pkerrors "pancake.dev/pancake/internal/errors"
	"pancake.dev/pancake/internal/runtime"
)

// Direction represents the traversal direction for top/bottom
type Direction string

const (
	// DirectionBottom specifies navigating towards the main branch
	DirectionBottom Direction = "BOTTOM"
	// DirectionTop specifies navigating towards the stack tips
	DirectionTop Direction = "TOP"
)

// UpAction moves count branches towards the children of the current branch
func UpAction(ctx *runtime.Context, count int) error {
	currentBranch, err := ctx.Git.CurrentBranch()
	if err != nil {
		return err
	}

	target := currentBranch
	for i := 0; i < count; i++ {
		children := ctx.Graph.Children(target)
		switch {
		case len(children) == 0:
			if i == 0 {
				return pkerrors.NewNavigationError(pkerrors.ErrNoChildrenInStack,
					"Branch '%s' has no children in the stack", currentBranch)
			}
			return pkerrors.NewNavigationError(pkerrors.ErrNoChildrenInStack,
				"Cannot move up %d branches (only moved %d)", count, i)
		case len(children) == 1:
			target = children[0]
		default:
			if count > 1 {
				return pkerrors.NewNavigationError(pkerrors.ErrAmbiguousChildren,
					"Branch '%s' has multiple children. Cannot automatically navigate up %d branches.", target, count)
			}
			ctx.Splog.Info("Branch '%s' has multiple children. Select one:", target)
			for idx, child := range children {
				ctx.Splog.Info("  %d: %s", idx+1, child)
			}
			return pkerrors.NewNavigationError(pkerrors.ErrAmbiguousChildren,
				"Multiple children found.\nUse `pk checkout <branch-name>` to select a specific branch.")
		}
	}

	return switchTo(ctx, target, "Switched to branch '%s'")
}

// DownAction moves count branches towards the parent of the current branch.
// Only tracked parents can be reached.
func DownAction(ctx *runtime.Context, count int) error {
	currentBranch, err := ctx.Git.CurrentBranch()
	if err != nil {
		return err
	}

	target := currentBranch
	for i := 0; i < count; i++ {
		parent, ok := ctx.Graph.Parent(target)
		if !ok || !ctx.Graph.IsTracked(parent) {
			if i == 0 {
				return pkerrors.NewNavigationError(pkerrors.ErrNoParentInStack,
					"Branch '%s' has no parent in the stack", currentBranch)
			}
			return pkerrors.NewNavigationError(pkerrors.ErrNoParentInStack,
				"Cannot move down %d branches (only moved %d)", count, i)
		}
		target = parent
	}

	return switchTo(ctx, target, "Switched to branch '%s'")
}

// SwitchBranchAction switches to the top or bottom of the current stack
func SwitchBranchAction(ctx *runtime.Context, direction Direction) error {
	currentBranch, err := trackedCurrentBranch(ctx)
	if err != nil {
		return err
	}

	var target, where string
	switch direction {
	case DirectionTop:
		target, err = ctx.Graph.FindTop(currentBranch)
		where = "top"
	case DirectionBottom:
		target, err = ctx.Graph.FindBottom(currentBranch)
		where = "bottom"
	default:
		return fmt.Errorf("invalid direction: %s", direction)
	}
	if err != nil {
		return err
	}

	if target == currentBranch {
		ctx.Splog.Info("Already at the %s of the stack: '%s'", where, currentBranch)
		return nil
	}

	return switchTo(ctx, target, "Switched to branch '%s' ("+where+" of stack)")
}

func switchTo(ctx *runtime.Context, branch, message string) error {
	if err := ctx.Git.Checkout(ctx, branch); err != nil {
		return err
	}
	ctx.Splog.Info(message, branch)
	return nil
}
