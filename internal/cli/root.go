// Package cli wires the pk commands together.
package cli

import (
	"github.com/spf13/cobra"

	"pancake.dev/pancake/internal/cli/branch"
	"pancake.dev/pancake/internal/cli/navigation"
	"pancake.dev/pancake/internal/cli/stack"
	"pancake.dev/pancake/internal/tui/style"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pk",
		Short: "Pancake CLI: stacked branches on top of git",
		Long: `Pancake keeps a stack of dependent branches, records each branch's parent,
and rebases whole stacks onto their updated bases.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			style.ConfigureColorProfile()
		},
	}

	rootCmd.AddCommand(
		newInitCmd(),
		branch.NewBranchCmd(),
		branch.NewCreateCmd("bc", "Create a new branch in the stack (alias for 'branch create')"),
		branch.NewDeleteCmd("bd", "Delete a branch from the stack (alias for 'branch delete')"),
		navigation.NewLogCmd(),
		navigation.NewUpCmd(),
		navigation.NewDownCmd(),
		navigation.NewTopCmd(),
		navigation.NewBottomCmd(),
		navigation.NewCheckoutCmd(),
		newCommitCmd(),
		stack.NewSyncCmd(),
		stack.NewRestackCmd(),
	)

	return rootCmd
}
