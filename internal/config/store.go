package config

import (
	"errors"
	"fmt"
	"os"
	"path"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

// Dir is the directory, relative to the repository root, holding pancake's files
const Dir = ".pancake"

// Store reads and writes pancake's files relative to a repository root
type Store struct {
	fs billy.Filesystem
}

// NewStore returns a Store rooted at the repository root on disk
func NewStore(repoRoot string) *Store {
	return &Store{fs: osfs.New(repoRoot)}
}

// NewStoreFromFS returns a Store over an arbitrary filesystem
func NewStoreFromFS(fs billy.Filesystem) *Store {
	return &Store{fs: fs}
}

// Root returns the filesystem root the store writes under
func (s *Store) Root() string {
	return s.fs.Root()
}

// Exists reports whether name exists
func (s *Store) Exists(name string) bool {
	_, err := s.fs.Stat(name)
	return err == nil
}

// ReadFile returns the contents of name. A missing file is reported with an
// error satisfying errors.Is(err, os.ErrNotExist).
func (s *Store) ReadFile(name string) ([]byte, error) {
	return util.ReadFile(s.fs, name)
}

// WriteFile replaces name with data. The data is written to a temporary file
// in the same directory and renamed over the target, so readers see either
// the old or the new contents.
func (s *Store) WriteFile(name string, data []byte) error {
	dir := path.Dir(name)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	tmp, err := s.fs.TempFile(dir, "."+path.Base(name)+".tmp")
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := s.fs.Rename(tmpName, name); err != nil {
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

// Remove deletes name. Removing a missing file is not an error.
func (s *Store) Remove(name string) error {
	err := s.fs.Remove(name)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove %s: %w", name, err)
	}
	return nil
}
