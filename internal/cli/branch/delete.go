package branch

import (
	"github.com/spf13/cobra"

	"pancake.dev/pancake/internal/actions"
	"pancake.dev/pancake/internal/cli/helpers"
	"pancake.dev/pancake/internal/runtime"
)

// NewDeleteCmd creates the branch delete command under the given name
func NewDeleteCmd(name, short string) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   name + " <name>",
		Short: short,
		Long: short + `.

Children of the deleted branch are re-parented onto its parent. Unmerged
branches need --force, or confirmation when running in a terminal.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: helpers.CompleteTrackedBranches,
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.Delete(ctx, actions.DeleteOptions{
					BranchName: args[0],
					Force:      force,
				})
			})
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Force delete even with unmerged changes")

	return cmd
}
