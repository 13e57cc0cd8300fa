package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

// AddExclude appends pattern to .git/info/exclude unless it is already listed
func (r *CommandRunner) AddExclude(ctx context.Context, pattern string) error {
	excludePath, err := r.Run(ctx, "rev-parse", "--git-path", "info/exclude")
	if err != nil {
		return err
	}
	if !filepath.IsAbs(excludePath) && r.workingDir != "" {
		excludePath = filepath.Join(r.workingDir, excludePath)
	}

	fs := osfs.New(filepath.Dir(excludePath))
	name := filepath.Base(excludePath)

	data, err := util.ReadFile(fs, name)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to read %s: %w", excludePath, err)
	}
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == pattern {
			return nil
		}
	}

	content := string(data)
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += pattern + "\n"
	if err := util.WriteFile(fs, name, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", excludePath, err)
	}
	return nil
}
