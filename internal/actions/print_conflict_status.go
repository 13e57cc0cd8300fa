package actions

import (
	"pancake.dev/pancake/internal/runtime"
	"pancake.dev/pancake/internal/tui/style"
)

// PrintConflictStatus lists the files left unmerged by a stopped rebase
func PrintConflictStatus(ctx *runtime.Context, branchName string) {
	unmergedFiles, err := ctx.Git.UnmergedFiles(ctx)
	if err != nil {
		ctx.Splog.Debug("Failed to list unmerged files: %v", err)
		return
	}
	if len(unmergedFiles) == 0 {
		return
	}

	ctx.Splog.Info("Unmerged files in %s:", style.ColorBranchName(branchName, false))
	for _, file := range unmergedFiles {
		ctx.Splog.Info("  %s", file)
	}
}
