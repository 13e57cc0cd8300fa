package runtime

import (
	"context"
	"fmt"
	"os"

	"pancake.dev/pancake/internal/config"
	"pancake.dev/pancake/internal/engine"
	pkerrors "pancake.dev/pancake/internal/errors"
	"pancake.dev/pancake/internal/git"
	"pancake.dev/pancake/internal/tui"
)

// Context provides access to the repository state and output for commands
type Context struct {
	context.Context
	RepoRoot string
	Store    *config.Store
	Config   *config.RepoConfig
	Graph    *engine.Graph
	Git      git.Engine
	Splog    *tui.Splog
}

// NewContext assembles a context from already constructed parts
func NewContext(ctx context.Context, store *config.Store, eng git.Engine, splog *tui.Splog) *Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Context{
		Context:  ctx,
		RepoRoot: store.Root(),
		Store:    store,
		Git:      eng,
		Splog:    splog,
	}
}

// Load reads the repository configuration and the branch graph into the context
func (c *Context) Load() error {
	cfg, err := config.GetRepoConfig(c.Store)
	if err != nil {
		return err
	}
	graph, err := engine.LoadGraph(c.Store)
	if err != nil {
		return err
	}
	c.Config = cfg
	c.Graph = graph
	return nil
}

// SaveGraph persists the branch graph
func (c *Context) SaveGraph() error {
	return engine.SaveGraph(c.Store, c.Graph)
}

// GetRepoContext opens the repository containing the working directory
// without requiring `pk init`
func GetRepoContext(ctx context.Context) (*Context, error) {
	repoRoot, err := git.FindRepoRoot()
	if err != nil {
		return nil, err
	}

	eng, err := git.NewEngine(repoRoot)
	if err != nil {
		return nil, err
	}

	splog, err := tui.NewSplogWithConfig(os.Stdout, tui.GetLogFilePath())
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	return NewContext(ctx, config.NewStore(repoRoot), eng, splog), nil
}

// GetContext returns a context for an initialized repository, with its
// configuration and branch graph loaded
func GetContext(ctx context.Context) (*Context, error) {
	c, err := GetRepoContext(ctx)
	if err != nil {
		return nil, err
	}

	if !config.IsInitialized(c.Store) {
		return nil, pkerrors.ErrNotInitialized
	}
	if err := c.Load(); err != nil {
		return nil, err
	}
	return c, nil
}
