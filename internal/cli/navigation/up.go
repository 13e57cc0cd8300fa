// Package navigation provides CLI commands for moving around a stack.
package navigation

import (
	"github.com/spf13/cobra"

	"pancake.dev/pancake/internal/actions"
	"pancake.dev/pancake/internal/cli/helpers"
	"pancake.dev/pancake/internal/runtime"
)

// NewUpCmd creates the up command
func NewUpCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "up [count]",
		Aliases: []string{"u"},
		Short:   "Navigate up the stack (to a child branch)",
		Long: `Navigate up the stack (to a child branch).

Moves count branches towards the children of the current branch, default 1.
A branch with several children stops the move; use pk checkout instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := helpers.ParseCount(args)
			if err != nil {
				return err
			}
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.UpAction(ctx, count)
			})
		},
	}
}
