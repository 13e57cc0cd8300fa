package navigation

import (
	"github.com/spf13/cobra"

	"pancake.dev/pancake/internal/actions"
	"pancake.dev/pancake/internal/cli/helpers"
	"pancake.dev/pancake/internal/runtime"
)

// NewLogCmd creates the log command
func NewLogCmd() *cobra.Command {
	var (
		all   bool
		short bool
	)

	cmd := &cobra.Command{
		Use:     "log",
		Aliases: []string{"l"},
		Short:   "Show the tracked stacks in ASCII form",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.LogAction(ctx, actions.LogOptions{Short: short})
			})
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Show all stacks (currently the default behavior)")
	cmd.Flags().BoolVar(&short, "short", false, "Print a condensed representation")

	return cmd
}
