package config

import (
	"errors"
	"fmt"
	"os"
	"path"

	"gopkg.in/yaml.v3"

	pkerrors "pancake.dev/pancake/internal/errors"
)

// ConfigFile is the repository configuration written by `pk init`
var ConfigFile = path.Join(Dir, "config")

// RepoConfig represents the repository configuration
type RepoConfig struct {
	Repository RepositoryConfig `yaml:"repository"`
	Stack      StackConfig      `yaml:"stack"`
}

// RepositoryConfig names the main branch and the remote of the repository
type RepositoryConfig struct {
	MainBranch string `yaml:"main_branch"`
	Remote     string `yaml:"remote"`
}

// StackConfig holds stack defaults
type StackConfig struct {
	MaxDepth int    `yaml:"max_depth"`
	Prefix   string `yaml:"prefix"`
}

// NewRepoConfig returns the default configuration for a repository
func NewRepoConfig(mainBranch, remote string) *RepoConfig {
	return &RepoConfig{
		Repository: RepositoryConfig{
			MainBranch: mainBranch,
			Remote:     remote,
		},
		Stack: StackConfig{
			MaxDepth: 10,
		},
	}
}

// IsInitialized checks if `pk init` has been run
func IsInitialized(store *Store) bool {
	return store.Exists(ConfigFile)
}

// GetRepoConfig reads the repository configuration
func GetRepoConfig(store *Store) (*RepoConfig, error) {
	data, err := store.ReadFile(ConfigFile)
	if errors.Is(err, os.ErrNotExist) {
		return nil, pkerrors.ErrNotInitialized
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", ConfigFile, err)
	}

	config := NewRepoConfig("", "")
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ConfigFile, err)
	}
	return config, nil
}

// SaveRepoConfig writes the repository configuration
func SaveRepoConfig(store *Store, config *RepoConfig) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to serialize Pancake config: %w", err)
	}
	return store.WriteFile(ConfigFile, data)
}

// MainBranch returns the configured main branch, or "main" as default
func (c *RepoConfig) MainBranch() string {
	if c == nil || c.Repository.MainBranch == "" {
		return "main"
	}
	return c.Repository.MainBranch
}
