package stack

import (
	"github.com/spf13/cobra"

	"pancake.dev/pancake/internal/actions"
	"pancake.dev/pancake/internal/cli/helpers"
	"pancake.dev/pancake/internal/runtime"
)

// NewRestackCmd creates the restack command
func NewRestackCmd() *cobra.Command {
	var opts actions.RestackOptions

	cmd := &cobra.Command{
		Use:   "restack",
		Short: "Restack the entire stack from bottom to top",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.RestackAction(ctx, opts)
			})
		},
	}

	cmd.Flags().BoolVar(&opts.Continue, "continue", false, "Continue an in-progress restack after resolving conflicts")
	cmd.Flags().BoolVar(&opts.Abort, "abort", false, "Abort the in-progress restack")

	return cmd
}
