// Package stack provides CLI commands for operating on entire stacks.
package stack

import (
	"github.com/spf13/cobra"

	"pancake.dev/pancake/internal/actions"
	"pancake.dev/pancake/internal/cli/helpers"
	"pancake.dev/pancake/internal/runtime"
)

// NewSyncCmd creates the sync command
func NewSyncCmd() *cobra.Command {
	var opts actions.SyncOptions

	cmd := &cobra.Command{
		Use:     "sync",
		Aliases: []string{"s"},
		Short:   "Sync the current branch (and optionally the entire stack)",
		Long: `Sync the current branch (and optionally the entire stack).

Rebases the current branch and every branch above it onto its recorded parent,
parents first. When a rebase stops on a conflict, resolve it and run
pk sync --continue, or give up with pk sync --abort.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.SyncAction(ctx, opts)
			})
		},
	}

	cmd.Flags().BoolVar(&opts.All, "all", false, "Sync every branch in the current stack (start from the bottom)")
	cmd.Flags().BoolVar(&opts.FromMain, "from-main", false, "Treat the configured main branch as the sync base (implies --all)")
	cmd.Flags().BoolVar(&opts.Continue, "continue", false, "Continue an in-progress sync after resolving conflicts")
	cmd.Flags().BoolVar(&opts.Abort, "abort", false, "Abort the in-progress sync")

	return cmd
}
