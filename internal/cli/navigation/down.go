package navigation

import (
	"github.com/spf13/cobra"

	"pancake.dev/pancake/internal/actions"
	"pancake.dev/pancake/internal/cli/helpers"
	"pancake.dev/pancake/internal/runtime"
)

// NewDownCmd creates the down command
func NewDownCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "down [count]",
		Aliases: []string{"d"},
		Short:   "Navigate down the stack (to the parent branch)",
		Long: `Navigate down the stack (to the parent branch).

Moves count branches towards the recorded parents, default 1. The move stops
at a parent that is not tracked, such as the main branch.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := helpers.ParseCount(args)
			if err != nil {
				return err
			}
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.DownAction(ctx, count)
			})
		},
	}
}
