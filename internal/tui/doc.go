// Package tui provides the terminal user interface for pancake.
//
// It handles:
//   - Interactive prompts and selections (using survey and bubbletea)
//   - Structured logging and status reporting (Splog)
//   - Rendering the forest of tracked stacks (using lipgloss)
package tui
