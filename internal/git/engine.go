package git

import (
	"context"
)

// Engine is the set of version-control primitives pancake consumes. Reads go
// through go-git; anything that rewrites the worktree shells out to git.
type Engine interface {
	CurrentBranch() (string, error)
	BranchExists(name string) (bool, error)
	ResolveCommit(name string) (string, error)
	BranchNames() ([]string, error)
	RemoteNames() ([]string, error)

	CreateBranch(name, commit string) error
	Checkout(ctx context.Context, branch string) error
	DeleteBranch(ctx context.Context, branch string, force bool) error
	Commit(ctx context.Context, opts CommitOptions) error

	Rebase(ctx context.Context, upstream string) (RebaseResult, string, error)
	RebaseContinue(ctx context.Context) error
	RebaseAbort(ctx context.Context) error
	IsRebaseInProgress(ctx context.Context) bool
	UnmergedFiles(ctx context.Context) ([]string, error)

	AddExclude(ctx context.Context, pattern string) error
}

// realEngine implements Engine with a go-git repository and a git command runner
type realEngine struct {
	*Repository
	*CommandRunner
}

// NewEngine returns the Engine for the repository at root
func NewEngine(root string) (Engine, error) {
	repo, err := OpenRepository(root)
	if err != nil {
		return nil, err
	}
	return &realEngine{
		Repository:    repo,
		CommandRunner: NewCommandRunner(repo.Root()),
	}, nil
}

var _ Engine = (*realEngine)(nil)
