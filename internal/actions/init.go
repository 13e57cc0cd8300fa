package actions

import (
	"errors"
	"fmt"
	"path/filepath"

	"pancake.dev/pancake/internal/config"
	"pancake.dev/pancake/internal/runtime"
	"pancake.dev/pancake/internal/utils"
)

// InitOptions contains options for the init command
type InitOptions struct {
	Force      bool
	MainBranch string
	Remote     string
}

// InitAction writes the repository configuration
func InitAction(ctx *runtime.Context, opts InitOptions) error {
	mainBranch := opts.MainBranch
	if mainBranch == "" {
		detected, err := detectMainBranch(ctx)
		if err != nil {
			return err
		}
		mainBranch = detected
	}

	remote := opts.Remote
	if remote == "" {
		remote = detectRemote(ctx)
	}

	configPath := filepath.Join(ctx.RepoRoot, config.ConfigFile)
	if config.IsInitialized(ctx.Store) && !opts.Force {
		return fmt.Errorf("Pancake is already initialized at %s\nUse `pk init --force` to overwrite the existing configuration.", configPath)
	}

	if err := config.SaveRepoConfig(ctx.Store, config.NewRepoConfig(mainBranch, remote)); err != nil {
		return err
	}
	if err := ctx.Git.AddExclude(ctx, "/"+config.Dir+"/"); err != nil {
		ctx.Splog.Warn("Could not add %s to .git/info/exclude: %v", config.Dir, err)
	}

	ctx.Splog.Info("Pancake initialized.\n- repo: %s\n- main branch: %s\n- remote: %s", ctx.RepoRoot, mainBranch, remote)
	ctx.Splog.Tip("Start a stack with `pk branch create <name>`.")
	return nil
}

func detectMainBranch(ctx *runtime.Context) (string, error) {
	for _, candidate := range []string{"main", "master", "develop"} {
		exists, err := ctx.Git.BranchExists(candidate)
		if err != nil {
			return "", err
		}
		if exists {
			return candidate, nil
		}
	}

	current, err := ctx.Git.CurrentBranch()
	if err != nil {
		return "", errors.New("unable to detect the main branch; use `pk init --main-branch <name>`")
	}
	return current, nil
}

func detectRemote(ctx *runtime.Context) string {
	remotes, err := ctx.Git.RemoteNames()
	if err != nil || len(remotes) == 0 {
		return "origin"
	}
	if utils.ContainsString(remotes, "origin") {
		return "origin"
	}
	return remotes[0]
}
