// Package actions provides high-level business logic for CLI commands.
//
// Each action corresponds to a pancake command (branch create, sync, up, ...)
// and orchestrates operations across the engine, git, and config packages.
//
// Key patterns:
//   - Actions accept runtime.Context which provides the graph, git, and Splog
//   - Sync and restack run as a checkpointed operation that survives a
//     conflict and resumes with --continue
//   - Actions handle user interaction through the tui package
package actions
