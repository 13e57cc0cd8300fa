// Package runtime provides the execution context for pancake commands.
//
// It encapsulates shared dependencies needed by actions, such as the git
// engine, the branch graph, the logger, and the repository root path.
package runtime
