package cli

import (
	"github.com/spf13/cobra"

	"pancake.dev/pancake/internal/actions"
	"pancake.dev/pancake/internal/cli/helpers"
	"pancake.dev/pancake/internal/runtime"
)

func newInitCmd() *cobra.Command {
	var opts actions.InitOptions

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize Pancake in the current repository",
		Long: `Initialize Pancake in the current repository.

Writes .pancake/config with the main branch and remote. Without --main-branch,
the first of main, master and develop that exists is used, falling back to the
checked out branch. Without --remote, origin is preferred.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.RunInRepo(cmd, func(ctx *runtime.Context) error {
				return actions.InitAction(ctx, opts)
			})
		},
	}

	cmd.Flags().BoolVar(&opts.Force, "force", false, "Overwrite existing configuration")
	cmd.Flags().StringVar(&opts.MainBranch, "main-branch", "", "Explicitly set the main branch")
	cmd.Flags().StringVar(&opts.Remote, "remote", "", "Explicitly set the Git remote to use")
	_ = cmd.RegisterFlagCompletionFunc("main-branch", helpers.CompleteBranches)

	return cmd
}
