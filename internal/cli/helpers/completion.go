package helpers

import (
	"github.com/spf13/cobra"

	"pancake.dev/pancake/internal/runtime"
)

// CompleteTrackedBranches is a helper for cobra.ValidArgsFunction that
// returns the branches pancake tracks.
func CompleteTrackedBranches(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	ctx, err := runtime.GetContext(cmd.Context())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	defer func() { _ = ctx.Splog.Close() }()
	return ctx.Graph.Names(), cobra.ShellCompDirectiveNoFileComp
}

// CompleteBranches returns every local branch name
func CompleteBranches(cmd *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	ctx, err := runtime.GetRepoContext(cmd.Context())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	defer func() { _ = ctx.Splog.Close() }()
	branches, err := ctx.Git.BranchNames()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return branches, cobra.ShellCompDirectiveNoFileComp
}
