package cli

import (
	"github.com/spf13/cobra"

	"pancake.dev/pancake/internal/actions"
	"pancake.dev/pancake/internal/cli/helpers"
	"pancake.dev/pancake/internal/runtime"
)

func newCommitCmd() *cobra.Command {
	var opts actions.CommitOptions

	cmd := &cobra.Command{
		Use:     "commit",
		Aliases: []string{"c"},
		Short:   "Create a commit in the current branch",
		Long: `Create a commit in the current branch.

Without -m, prompts for the message when running in a terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.CommitAction(ctx, opts)
			})
		},
	}

	cmd.Flags().StringVarP(&opts.Message, "message", "m", "", "Commit message")
	cmd.Flags().BoolVarP(&opts.All, "all", "a", false, "Stage all changes before committing")
	cmd.Flags().BoolVar(&opts.Amend, "amend", false, "Amend the last commit")

	return cmd
}
