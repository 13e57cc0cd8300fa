package actions

import (
	"errors"

	"pancake.dev/pancake/internal/git"
	"pancake.dev/pancake/internal/runtime"
	"pancake.dev/pancake/internal/tui"
)

// CommitOptions contains options for the commit command
type CommitOptions struct {
	Message string
	All     bool
	Amend   bool
}

var errCommitMessageRequired = errors.New("Commit message is required. Use `-m <message>` to provide one.")

// CommitAction records a commit on the current branch
func CommitAction(ctx *runtime.Context, opts CommitOptions) error {
	currentBranch, err := ctx.Git.CurrentBranch()
	if err != nil {
		return err
	}

	message := opts.Message
	if message == "" {
		message, err = tui.PromptTextInput("Commit message:", "")
		if errors.Is(err, tui.ErrInteractiveDisabled) {
			return errCommitMessageRequired
		}
		if err != nil {
			return err
		}
		if message == "" {
			return errCommitMessageRequired
		}
	}

	if err := ctx.Git.Commit(ctx, git.CommitOptions{
		Message: message,
		All:     opts.All,
		Amend:   opts.Amend,
	}); err != nil {
		return err
	}

	if opts.Amend {
		ctx.Splog.Info("Amended commit on branch '%s'", currentBranch)
	} else {
		ctx.Splog.Info("Created commit on branch '%s'", currentBranch)
	}
	return nil
}
