// Package helpers provides shared helper functions for CLI commands.
package helpers

import (
	"strconv"

	"github.com/spf13/cobra"

	"pancake.dev/pancake/internal/runtime"
)

// Run is a helper that provides a runtime context for an initialized
// repository to a command's execution function
func Run(cmd *cobra.Command, fn func(ctx *runtime.Context) error) error {
	ctx, err := runtime.GetContext(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = ctx.Splog.Close() }()
	return fn(ctx)
}

// RunInRepo is like Run but does not require `pk init` to have been run
func RunInRepo(cmd *cobra.Command, fn func(ctx *runtime.Context) error) error {
	ctx, err := runtime.GetRepoContext(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = ctx.Splog.Close() }()
	return fn(ctx)
}

// ParseCount reads an optional positional step count, defaulting to 1
func ParseCount(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	count, err := strconv.Atoi(args[0])
	if err != nil || count < 1 {
		return 0, &InvalidCountError{Value: args[0]}
	}
	return count, nil
}

// InvalidCountError is returned for a step count that is not a positive number
type InvalidCountError struct {
	Value string
}

func (e *InvalidCountError) Error() string {
	return "invalid count '" + e.Value + "': must be a positive number"
}
