package actions

import (
	"fmt"
	"strings"

	"pancake.dev/pancake/internal/config"
	pkerrors "pancake.dev/pancake/internal/errors"
	"pancake.dev/pancake/internal/runtime"
)

// OperationKind names one of the two bulk rebase commands
type OperationKind string

const (
	// OperationSync is `pk sync`
	OperationSync OperationKind = "sync"
	// OperationRestack is `pk restack`
	OperationRestack OperationKind = "restack"
)

// Name returns the lowercase name used in messages
func (k OperationKind) Name() string {
	return string(k)
}

// Command returns the command that resumes or aborts the operation
func (k OperationKind) Command() string {
	return "pk " + string(k)
}

// PastTense returns the verb used in the completion summary
func (k OperationKind) PastTense() string {
	switch k {
	case OperationSync:
		return "Synced"
	case OperationRestack:
		return "Restacked"
	default:
		return "Processed"
	}
}

// pendingOperation is the in-memory form of the checkpoint
type pendingOperation struct {
	Kind           OperationKind
	Branches       []string
	CurrentIndex   int
	OriginalBranch string
}

func (p *pendingOperation) state() *config.ContinuationState {
	return &config.ContinuationState{
		Kind:           string(p.Kind),
		Branches:       p.Branches,
		CurrentIndex:   p.CurrentIndex,
		OriginalBranch: p.OriginalBranch,
	}
}

func loadPendingOperation(ctx *runtime.Context) (*pendingOperation, error) {
	state, err := config.GetContinuationState(ctx.Store)
	if err != nil || state == nil {
		return nil, err
	}
	return &pendingOperation{
		Kind:           OperationKind(state.Kind),
		Branches:       state.Branches,
		CurrentIndex:   state.CurrentIndex,
		OriginalBranch: state.OriginalBranch,
	}, nil
}

func (p *pendingOperation) save(ctx *runtime.Context) error {
	return config.PersistContinuationState(ctx.Store, p.state())
}

// ensureNoActiveOperation fails if any checkpoint exists, without touching it
func ensureNoActiveOperation(ctx *runtime.Context) error {
	existing, err := loadPendingOperation(ctx)
	if err != nil {
		return err
	}
	if existing != nil {
		return &pkerrors.OperationInProgressError{Kind: existing.Kind.Name(), Command: existing.Kind.Command()}
	}
	return nil
}

// StartOperation checkpoints a new sync or restack over branches and runs it
// to completion. On a conflict the checkpoint is left behind for
// ContinueOperation or AbortOperation.
func StartOperation(ctx *runtime.Context, kind OperationKind, branches []string, originalBranch string) error {
	if err := ensureNoActiveOperation(ctx); err != nil {
		return err
	}

	if len(branches) == 0 {
		ctx.Splog.Info("Nothing to %s.", kind.Name())
		return nil
	}

	op := &pendingOperation{
		Kind:           kind,
		Branches:       branches,
		OriginalBranch: originalBranch,
	}
	if err := op.save(ctx); err != nil {
		return err
	}
	ctx.Splog.Debug("Started %s of %d branch(es) from '%s'", kind.Name(), len(branches), originalBranch)

	if err := processOperation(ctx, op); err != nil {
		return err
	}
	return finalizeOperation(ctx, op)
}

// ContinueOperation resumes the checkpointed operation of the given kind
// after the user resolved a conflict
func ContinueOperation(ctx *runtime.Context, kind OperationKind) error {
	op, err := loadPendingOperation(ctx)
	if err != nil {
		return err
	}
	if op == nil {
		return &pkerrors.NoOperationError{Kind: kind.Name()}
	}
	if op.Kind != kind {
		return &pkerrors.OperationKindMismatchError{Kind: op.Kind.Name(), Command: op.Kind.Command()}
	}

	if op.CurrentIndex >= len(op.Branches) {
		return finalizeOperation(ctx, op)
	}

	executor := NewRebaseExecutor(ctx.Git)
	if err := executor.ContinueCurrent(ctx); err != nil {
		return err
	}
	op.CurrentIndex++
	if err := op.save(ctx); err != nil {
		return err
	}

	if err := processOperation(ctx, op); err != nil {
		return err
	}
	return finalizeOperation(ctx, op)
}

// AbortOperation abandons the checkpointed operation of the given kind. The
// in-progress rebase is aborted and the checkpoint removed; branches already
// rebased stay rebased and the original branch is not checked out again.
func AbortOperation(ctx *runtime.Context, kind OperationKind) error {
	op, err := loadPendingOperation(ctx)
	if err != nil {
		return err
	}
	if op == nil {
		return &pkerrors.NoOperationError{Kind: kind.Name()}
	}
	if op.Kind != kind {
		return &pkerrors.OperationKindMismatchError{Kind: op.Kind.Name(), Command: op.Kind.Command(), Abort: true}
	}

	executor := NewRebaseExecutor(ctx.Git)
	if ctx.Git.IsRebaseInProgress(ctx) {
		if err := executor.AbortCurrent(ctx); err != nil {
			ctx.Splog.Warn("Failed to abort the in-progress rebase: %v", err)
		}
	} else {
		ctx.Splog.Debug("No rebase in progress; clearing the %s checkpoint only", kind.Name())
	}

	if err := config.ClearContinuationState(ctx.Store); err != nil {
		return err
	}
	ctx.Splog.Info("Aborted %s operation.", kind.Name())
	return nil
}

// processOperation rebases branches from CurrentIndex to the end, persisting
// progress after each one
func processOperation(ctx *runtime.Context, op *pendingOperation) error {
	executor := NewRebaseExecutor(ctx.Git)

	for op.CurrentIndex < len(op.Branches) {
		branch := op.Branches[op.CurrentIndex]

		exists, err := ctx.Git.BranchExists(branch)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("Branch '%s' no longer exists", branch)
		}

		parent, ok := ctx.Graph.Parent(branch)
		if !ok {
			return fmt.Errorf("Branch '%s' has no recorded parent", branch)
		}

		ctx.Splog.Info("Rebasing '%s' onto '%s'", branch, parent)
		outcome, diagnostics, err := executor.Rebase(ctx, branch, parent)
		if err != nil {
			return err
		}
		if outcome == RebaseConflict {
			if err := op.save(ctx); err != nil {
				return err
			}
			PrintConflictStatus(ctx, branch)
			return pkerrors.NewRebaseConflictError(branch, parent, op.Kind.Command(), diagnostics)
		}

		op.CurrentIndex++
		if err := op.save(ctx); err != nil {
			return err
		}
	}
	return nil
}

// finalizeOperation clears the checkpoint, returns to the branch the
// operation started from, and reports the sequence
func finalizeOperation(ctx *runtime.Context, op *pendingOperation) error {
	if err := config.ClearContinuationState(ctx.Store); err != nil {
		return err
	}
	if err := ctx.Git.Checkout(ctx, op.OriginalBranch); err != nil {
		return err
	}
	ctx.Splog.Info("%s %d branch(es): %s", op.Kind.PastTense(), len(op.Branches), strings.Join(op.Branches, " -> "))
	return nil
}
