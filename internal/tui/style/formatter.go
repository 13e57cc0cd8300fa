// Package style holds the colors pancake renders with.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// StackColors is the palette cycled through for successive stacks in `pk log`
var StackColors = []lipgloss.Color{
	lipgloss.Color("6"),  // Cyan
	lipgloss.Color("2"),  // Green
	lipgloss.Color("3"),  // Yellow
	lipgloss.Color("5"),  // Magenta
	lipgloss.Color("4"),  // Blue
	lipgloss.Color("14"), // Bright cyan
	lipgloss.Color("10"), // Bright green
	lipgloss.Color("11"), // Bright yellow
}

// ConfigureColorProfile turns colors off when NO_COLOR is set or stdout is
// not a terminal
func ConfigureColorProfile() {
	if os.Getenv("NO_COLOR") != "" ||
		!(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// StackStyle returns the style for the stack at index
func StackStyle(index int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(StackColors[index%len(StackColors)])
}

// ColorBranchName colors a branch name based on whether it's current
func ColorBranchName(branchName string, isCurrent bool) string {
	if isCurrent {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Render(branchName + " (current)")
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("12")).
		Render(branchName)
}

// ColorDim makes text dim/gray
func ColorDim(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Render(text)
}
