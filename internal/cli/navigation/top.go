package navigation

import (
	"github.com/spf13/cobra"

	"pancake.dev/pancake/internal/actions"
	"pancake.dev/pancake/internal/cli/helpers"
	"pancake.dev/pancake/internal/runtime"
)

// NewTopCmd creates the top command
func NewTopCmd() *cobra.Command {
	return newSwitchCmd("top", "Navigate to the topmost branch in the current stack", actions.DirectionTop)
}

// NewBottomCmd creates the bottom command
func NewBottomCmd() *cobra.Command {
	return newSwitchCmd("bottom", "Navigate to the bottom of the current stack (just above main)", actions.DirectionBottom)
}

func newSwitchCmd(use, short string, direction actions.Direction) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.SwitchBranchAction(ctx, direction)
			})
		},
	}
}
