package git

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	pkerrors "pancake.dev/pancake/internal/errors"
)

// Repository wraps a go-git repository for read access to refs
type Repository struct {
	*gogit.Repository
	root string
}

// OpenRepository opens the git repository containing path
func OpenRepository(path string) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := gogit.PlainOpenWithOptions(absPath, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("must be run inside a Git repository: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("bare repositories are not supported by Pancake: %w", err)
	}

	return &Repository{
		Repository: repo,
		root:       worktree.Filesystem.Root(),
	}, nil
}

// NewRepository wraps an already opened go-git repository
func NewRepository(repo *gogit.Repository, root string) *Repository {
	return &Repository{Repository: repo, root: root}
}

// FindRepoRoot returns the root directory of the repository containing the
// current working directory
func FindRepoRoot() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	repo, err := OpenRepository(wd)
	if err != nil {
		return "", err
	}
	return repo.Root(), nil
}

// Root returns the worktree root
func (r *Repository) Root() string {
	return r.root
}

// CurrentBranch returns the checked out branch name
func (r *Repository) CurrentBranch() (string, error) {
	head, err := r.Head()
	if err != nil {
		return "", fmt.Errorf("unable to resolve current HEAD: %w", err)
	}
	if !head.Name().IsBranch() {
		return "", pkerrors.ErrNotOnBranch
	}
	return head.Name().Short(), nil
}

// BranchExists reports whether a local branch exists
func (r *Repository) BranchExists(name string) (bool, error) {
	_, err := r.Reference(plumbing.NewBranchReferenceName(name), true)
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up branch %s: %w", name, err)
	}
	return true, nil
}

// ResolveCommit returns the commit id a branch points at
func (r *Repository) ResolveCommit(name string) (string, error) {
	ref, err := r.Reference(plumbing.NewBranchReferenceName(name), true)
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return "", pkerrors.NewBranchNotFoundError(name)
	}
	if err != nil {
		return "", fmt.Errorf("unable to resolve branch '%s': %w", name, err)
	}
	return ref.Hash().String(), nil
}

// CreateBranch points a new branch ref at commit without checking it out
func (r *Repository) CreateBranch(name, commit string) error {
	refName := plumbing.NewBranchReferenceName(name)
	if _, err := r.Reference(refName, false); err == nil {
		return &pkerrors.BranchAlreadyExistsError{BranchName: name}
	}
	ref := plumbing.NewHashReference(refName, plumbing.NewHash(commit))
	if err := r.Storer.SetReference(ref); err != nil {
		return fmt.Errorf("failed to create branch '%s': %w", name, err)
	}
	return nil
}

// BranchNames returns all local branch names, sorted
func (r *Repository) BranchNames() ([]string, error) {
	branches, err := r.Branches()
	if err != nil {
		return nil, fmt.Errorf("failed to get branches: %w", err)
	}

	var names []string
	err = branches.ForEach(func(ref *plumbing.Reference) error {
		names = append(names, ref.Name().Short())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate branches: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

// RemoteNames returns configured remote names, sorted
func (r *Repository) RemoteNames() ([]string, error) {
	remotes, err := r.Remotes()
	if err != nil {
		return nil, fmt.Errorf("failed to list remotes: %w", err)
	}
	names := make([]string, 0, len(remotes))
	for _, remote := range remotes {
		names = append(names, remote.Config().Name)
	}
	sort.Strings(names)
	return names, nil
}
