// Package git provides access to git repositories via shell commands.
package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/fwojciec/gitwebhl"
)

// Compile-time interface verification.
var _ gitwebhl.BlobSource = (*Runner)(nil)

// Runner reads blobs by executing git against repositories under a root
// directory, the equivalent of gitweb's $projectroot.
type Runner struct {
	root string
}

// NewRunner creates a new git runner for repositories under root.
func NewRunner(root string) *Runner {
	return &Runner{root: root}
}

// Blob returns the contents of the blob named by ref.
func (r *Runner) Blob(ctx context.Context, ref gitwebhl.BlobRef) (string, error) {
	repoPath, err := r.repoPath(ref.Project)
	if err != nil {
		return "", err
	}
	object := ref.Object()
	if strings.HasPrefix(object, "-") {
		return "", fmt.Errorf("invalid object name %q", object)
	}
	args := []string{"-C", repoPath, "cat-file", "blob", "--end-of-options", object}
	cmd := exec.CommandContext(ctx, "git", args...)
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("git cat-file failed: %s", strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("git cat-file failed: %w", err)
	}
	return string(output), nil
}

// repoPath joins a project onto the root, refusing projects that escape it.
func (r *Runner) repoPath(project string) (string, error) {
	if project == "" {
		return filepath.Clean(r.root), nil
	}
	if filepath.IsAbs(project) || !filepath.IsLocal(project) {
		return "", fmt.Errorf("project %q is outside the repository root", project)
	}
	return filepath.Join(r.root, project), nil
}
