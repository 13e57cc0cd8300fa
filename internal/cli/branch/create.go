package branch

import (
	"github.com/spf13/cobra"

	"pancake.dev/pancake/internal/actions"
	"pancake.dev/pancake/internal/cli/helpers"
	"pancake.dev/pancake/internal/runtime"
)

// NewCreateCmd creates the branch create command under the given name
func NewCreateCmd(name, short string) *cobra.Command {
	var base string

	cmd := &cobra.Command{
		Use:   name + " [name]",
		Short: short,
		Long: short + `.

The new branch starts at the tip of its base, is checked out, and records the
base as its parent. The base defaults to the current branch.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				opts := actions.CreateOptions{Base: base}
				if len(args) > 0 {
					opts.BranchName = args[0]
				}
				return actions.CreateAction(ctx, opts)
			})
		},
	}

	cmd.Flags().StringVar(&base, "base", "", "Specify a different base branch (defaults to current branch)")
	_ = cmd.RegisterFlagCompletionFunc("base", helpers.CompleteBranches)

	return cmd
}
