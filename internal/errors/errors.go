// Package errors provides sentinel errors and custom error types for pancake.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrNotInitialized indicates that `pk init` has not been run in this repository
	ErrNotInitialized = errors.New("Pancake is not initialized. Run `pk init` first.")

	// ErrNotOnBranch indicates that HEAD is not on a branch
	ErrNotOnBranch = errors.New("HEAD is not currently on a branch")

	// ErrBranchNotFound indicates that a branch does not exist
	ErrBranchNotFound = errors.New("branch not found")

	// ErrBranchAlreadyExists indicates that a branch with the requested name exists
	ErrBranchAlreadyExists = errors.New("branch already exists")

	// ErrUntrackedCurrentBranch indicates that the checked out branch is not in the graph
	ErrUntrackedCurrentBranch = errors.New("current branch is not tracked")

	// ErrNoParentInStack indicates a downward move with no tracked parent
	ErrNoParentInStack = errors.New("no parent in the stack")

	// ErrNoChildrenInStack indicates an upward move with no children
	ErrNoChildrenInStack = errors.New("no children in the stack")

	// ErrAmbiguousChildren indicates an upward move from a branch with several children
	ErrAmbiguousChildren = errors.New("multiple children in the stack")

	// ErrOperationAlreadyInProgress indicates a checkpoint already exists
	ErrOperationAlreadyInProgress = errors.New("operation already in progress")

	// ErrOperationKindMismatch indicates the checkpoint belongs to the other bulk command
	ErrOperationKindMismatch = errors.New("operation kind mismatch")

	// ErrNoOperationInProgress indicates there is no checkpoint to continue or abort
	ErrNoOperationInProgress = errors.New("no operation in progress")

	// ErrRebaseConflict indicates that a rebase operation encountered a conflict
	ErrRebaseConflict = errors.New("rebase conflict")

	// ErrExternalTool indicates that git itself failed
	ErrExternalTool = errors.New("external tool failure")

	// ErrCyclicGraph indicates the recorded parents loop back on themselves
	ErrCyclicGraph = errors.New("cyclic branch graph")
)

// BranchNotFoundError represents an error when a branch is not found
type BranchNotFoundError struct {
	BranchName string
}

func (e *BranchNotFoundError) Error() string {
	return fmt.Sprintf("Branch '%s' does not exist", e.BranchName)
}

// Is returns true if the target error is ErrBranchNotFound
func (e *BranchNotFoundError) Is(target error) bool {
	return target == ErrBranchNotFound
}

// NewBranchNotFoundError creates a new BranchNotFoundError
func NewBranchNotFoundError(branchName string) *BranchNotFoundError {
	return &BranchNotFoundError{BranchName: branchName}
}

// BranchAlreadyExistsError is returned when creating a branch whose name is taken
type BranchAlreadyExistsError struct {
	BranchName string
}

func (e *BranchAlreadyExistsError) Error() string {
	return fmt.Sprintf("Branch '%s' already exists", e.BranchName)
}

// Is returns true if the target error is ErrBranchAlreadyExists
func (e *BranchAlreadyExistsError) Is(target error) bool {
	return target == ErrBranchAlreadyExists
}

// UntrackedBranchError is returned when the current branch is not in the graph
type UntrackedBranchError struct {
	BranchName string
}

func (e *UntrackedBranchError) Error() string {
	return fmt.Sprintf("Current branch '%s' is not tracked by Pancake", e.BranchName)
}

// Is returns true if the target error is ErrUntrackedCurrentBranch
func (e *UntrackedBranchError) Is(target error) bool {
	return target == ErrUntrackedCurrentBranch
}

// NavigationError describes a failed up/down move. Sentinel is one of
// ErrNoParentInStack, ErrNoChildrenInStack or ErrAmbiguousChildren.
type NavigationError struct {
	Sentinel error
	Message  string
}

func (e *NavigationError) Error() string {
	return e.Message
}

// Is matches the navigation sentinel
func (e *NavigationError) Is(target error) bool {
	return target == e.Sentinel
}

// NewNavigationError creates a NavigationError with a formatted message
func NewNavigationError(sentinel error, format string, args ...interface{}) *NavigationError {
	return &NavigationError{Sentinel: sentinel, Message: fmt.Sprintf(format, args...)}
}

// OperationInProgressError is returned when a bulk operation is started while
// another one is checkpointed.
type OperationInProgressError struct {
	Kind    string
	Command string
}

func (e *OperationInProgressError) Error() string {
	return fmt.Sprintf("A %s operation is already in progress. Use `%s --continue` or `%s --abort`.",
		e.Kind, e.Command, e.Command)
}

// Is returns true if the target error is ErrOperationAlreadyInProgress
func (e *OperationInProgressError) Is(target error) bool {
	return target == ErrOperationAlreadyInProgress
}

// OperationKindMismatchError is returned when --continue/--abort is issued to
// the wrong bulk command.
type OperationKindMismatchError struct {
	Kind    string
	Command string
	Abort   bool
}

func (e *OperationKindMismatchError) Error() string {
	if e.Abort {
		return fmt.Sprintf("A %s operation is in progress. Use `%s --abort`.", e.Kind, e.Command)
	}
	return fmt.Sprintf("A %s operation is in progress. Use `%s --continue` or `%s --abort`.",
		e.Kind, e.Command, e.Command)
}

// Is returns true if the target error is ErrOperationKindMismatch
func (e *OperationKindMismatchError) Is(target error) bool {
	return target == ErrOperationKindMismatch
}

// NoOperationError is returned when there is nothing to continue or abort
type NoOperationError struct {
	Kind string
}

func (e *NoOperationError) Error() string {
	return fmt.Sprintf("No %s operation is currently in progress.", e.Kind)
}

// Is returns true if the target error is ErrNoOperationInProgress
func (e *NoOperationError) Is(target error) bool {
	return target == ErrNoOperationInProgress
}

// RebaseConflictError represents an error when a rebase encounters a conflict
type RebaseConflictError struct {
	BranchName  string
	Parent      string
	Command     string
	Diagnostics string
}

func (e *RebaseConflictError) Error() string {
	msg := fmt.Sprintf(
		"Git rebase failed while rebasing '%s' onto '%s'. Resolve the conflicts, then run `%s --continue` (or `%s --abort`).",
		e.BranchName, e.Parent, e.Command, e.Command)
	if e.Diagnostics != "" {
		msg += "\n\nGit output:\n" + e.Diagnostics
	}
	return msg
}

// Is returns true if the target error is ErrRebaseConflict
func (e *RebaseConflictError) Is(target error) bool {
	return target == ErrRebaseConflict
}

// NewRebaseConflictError creates a new RebaseConflictError
func NewRebaseConflictError(branchName, parent, command, diagnostics string) *RebaseConflictError {
	return &RebaseConflictError{
		BranchName:  branchName,
		Parent:      parent,
		Command:     command,
		Diagnostics: diagnostics,
	}
}

// CyclicGraphError reports the branch at which a traversal revisited itself
type CyclicGraphError struct {
	BranchName string
}

func (e *CyclicGraphError) Error() string {
	return fmt.Sprintf("branch metadata contains a cycle through '%s'", e.BranchName)
}

// Is returns true if the target error is ErrCyclicGraph
func (e *CyclicGraphError) Is(target error) bool {
	return target == ErrCyclicGraph
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command  string
	Args     []string
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("`%s %s` failed", e.Command, strings.Join(e.Args, " "))
	if e.ExitCode > 0 {
		msg += fmt.Sprintf(" with exit code %d", e.ExitCode)
	}
	msg += "."
	if details := e.Diagnostics(); details != "" {
		if strings.TrimSpace(e.Stderr) != "" {
			msg += "\n\nGit stderr:\n" + details
		} else {
			msg += "\n\nGit stdout:\n" + details
		}
	} else if e.Err != nil {
		msg += fmt.Sprintf(" %v", e.Err)
	}
	return msg
}

// Diagnostics returns trimmed stderr, falling back to stdout
func (e *GitCommandError) Diagnostics() string {
	if s := strings.TrimSpace(e.Stderr); s != "" {
		return s
	}
	return strings.TrimSpace(e.Stdout)
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrExternalTool
func (e *GitCommandError) Is(target error) bool {
	return target == ErrExternalTool
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, exitCode int, err error) *GitCommandError {
	return &GitCommandError{
		Command:  command,
		Args:     args,
		Stdout:   stdout,
		Stderr:   stderr,
		ExitCode: exitCode,
		Err:      err,
	}
}
