package navigation

import (
	"github.com/spf13/cobra"

	"pancake.dev/pancake/internal/actions"
	"pancake.dev/pancake/internal/cli/helpers"
	"pancake.dev/pancake/internal/runtime"
)

// NewCheckoutCmd creates the checkout command
func NewCheckoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "checkout [branch]",
		Aliases: []string{"co"},
		Short:   "Switch to a branch",
		Long: `Switch to a branch.

Without a branch name, pick one of the tracked branches interactively.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: helpers.CompleteTrackedBranches,
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				opts := actions.CheckoutOptions{}
				if len(args) > 0 {
					opts.BranchName = args[0]
				}
				return actions.CheckoutAction(ctx, opts)
			})
		},
	}
}
