// Package branch provides CLI commands for managing branches in a stack.
package branch

import (
	"github.com/spf13/cobra"
)

// NewBranchCmd creates the branch command group
func NewBranchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "branch",
		Short: "Branch management commands",
		Args:  cobra.NoArgs,
	}

	createCmd := NewCreateCmd("create", "Create a new branch in the stack")
	createCmd.Aliases = []string{"c"}
	deleteCmd := NewDeleteCmd("delete", "Delete a branch from the stack")
	deleteCmd.Aliases = []string{"d"}

	cmd.AddCommand(createCmd, deleteCmd)
	return cmd
}
