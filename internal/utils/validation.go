package utils

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsInteractive checks if both stdin and stdout are terminals
func IsInteractive() bool {
	// Allow forcing non-interactive mode via environment variable
	if os.Getenv("PANCAKE_NON_INTERACTIVE") != "" {
		return false
	}

	return (isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())) &&
		(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))
}
