package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrGitNotFound is returned when the git binary is not on PATH.
var ErrGitNotFound = errors.New("git not found")

// ErrCloneFailed is returned when git clone exits with a non-zero status.
var ErrCloneFailed = errors.New("clone failed")

// Client defines the interface for version-control operations.
// All methods block until the underlying command completes.
type Client interface {
	// Clone clones the given branch of the repository at url into dir.
	// Returns ErrGitNotFound if the git binary is absent and ErrCloneFailed
	// with captured diagnostics on a non-zero exit.
	Clone(ctx context.Context, url, branch, dir string) error
}

// Config holds configuration for the repository to clone.
type Config struct {
	// URL is the remote repository to clone.
	URL string `mapstructure:"url" default:"https://github.com/FuroreBalistico/DJ-app.git"`
	// Branch is the branch to clone.
	Branch string `mapstructure:"branch" default:"main"`
}

// CLIClient implements Client using the git CLI via os/exec.
type CLIClient struct{}

// NewCLIClient creates a Client backed by the system git binary.
func NewCLIClient() *CLIClient {
	return &CLIClient{}
}

// cloneArgs returns the git CLI arguments for a clone invocation.
func cloneArgs(url, branch, dir string) []string {
	return []string{"clone", "-b", branch, url, dir}
}

// Clone clones the given branch of url into dir, blocking until git exits.
func (c *CLIClient) Clone(ctx context.Context, url, branch, dir string) error {
	if _, err := exec.LookPath("git"); err != nil {
		return fmt.Errorf("%w: %w", ErrGitNotFound, err)
	}

	cmd := exec.CommandContext(ctx, "git", cloneArgs(url, branch, dir)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%w: exit code %d: %s", ErrCloneFailed, exitErr.ExitCode(), strings.TrimSpace(stderr.String()))
		}
		return fmt.Errorf("%w: %w", ErrCloneFailed, err)
	}
	return nil
}
