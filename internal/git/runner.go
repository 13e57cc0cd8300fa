package git

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	pkerrors "pancake.dev/pancake/internal/errors"
)

// CommandRunner handles execution of git commands
type CommandRunner struct {
	workingDir string
	env        []string
}

// NewCommandRunner creates a new CommandRunner
func NewCommandRunner(workingDir string) *CommandRunner {
	return &CommandRunner{workingDir: workingDir}
}

// WithEnv returns a copy of the runner that appends env to every command
func (r *CommandRunner) WithEnv(env ...string) *CommandRunner {
	return &CommandRunner{
		workingDir: r.workingDir,
		env:        append(append([]string{}, r.env...), env...),
	}
}

// WorkingDir returns the directory commands run in
func (r *CommandRunner) WorkingDir() string {
	return r.workingDir
}

// Result is the captured outcome of a git invocation
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Diagnostics returns trimmed stderr, falling back to stdout
func (r Result) Diagnostics() string {
	if s := strings.TrimSpace(r.Stderr); s != "" {
		return s
	}
	return strings.TrimSpace(r.Stdout)
}

// Output returns stdout followed by stderr, each trimmed. Progress lines
// redrawn with a carriage return keep only their final text.
func (r Result) Output() string {
	var parts []string
	for _, stream := range []string{r.Stdout, r.Stderr} {
		lines := strings.Split(strings.TrimSpace(stream), "\n")
		for i, line := range lines {
			if idx := strings.LastIndex(line, "\r"); idx >= 0 {
				lines[i] = line[idx+1:]
			}
		}
		if text := strings.TrimSpace(strings.Join(lines, "\n")); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n")
}

// Run executes a git command and returns its trimmed stdout. A non-zero exit
// is returned as a *GitCommandError.
func (r *CommandRunner) Run(ctx context.Context, args ...string) (string, error) {
	res, err := r.Exec(ctx, args...)
	if err != nil {
		return "", err
	}
	if res.ExitCode != 0 {
		return "", pkerrors.NewGitCommandError("git", args, res.Stdout, res.Stderr, res.ExitCode, nil)
	}
	return strings.TrimSpace(res.Stdout), nil
}

// Exec executes a git command and captures its output. A non-zero exit is not
// an error here; only a failure to run git at all is. There is no default
// deadline: a hung git blocks until ctx is canceled.
func (r *CommandRunner) Exec(ctx context.Context, args ...string) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	if len(r.env) > 0 {
		cmd.Env = append(os.Environ(), r.env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, pkerrors.NewGitCommandError("git", args, res.Stdout, res.Stderr, -1, err)
	}
	return res, nil
}

// RunLines executes a git command and returns output as lines
func (r *CommandRunner) RunLines(ctx context.Context, args ...string) ([]string, error) {
	output, err := r.Run(ctx, args...)
	if err != nil {
		return nil, err
	}
	if output == "" {
		return []string{}, nil
	}
	return strings.Split(output, "\n"), nil
}
