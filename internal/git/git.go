package git

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// TopLevel returns the absolute path of the repository containing dir.
func TopLevel(dir string) (string, error) {
	out, err := output(dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("not inside a git repository: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// CurrentBranch returns the current branch's short name, or empty string if
// HEAD is detached.
func CurrentBranch(dir string) (string, error) {
	out, err := output(dir, "symbolic-ref", "--short", "HEAD")
	if err != nil {
		// Detached HEAD: symbolic-ref fails.
		return "", nil
	}
	return strings.TrimSpace(out), nil
}

// BranchExists checks if a local branch exists.
func BranchExists(dir, branch string) (bool, error) {
	err := runQuiet(dir, "show-ref", "--verify", "--quiet", "refs/heads/"+branch)
	if err != nil {
		if isExitError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// DiffFiles returns the paths changed relative to base, excluding deleted
// files, as reported by git diff --name-only. Paths are relative to the
// repository top level.
func DiffFiles(dir, base string) ([]string, error) {
	out, err := output(dir, "diff", "--name-only", "--diff-filter=d", base)
	if err != nil {
		return nil, fmt.Errorf("diff against %s: %w", base, err)
	}
	return splitLines(out), nil
}

// TrackedFiles returns every path tracked in the repository, relative to dir.
func TrackedFiles(dir string) ([]string, error) {
	out, err := output(dir, "ls-files")
	if err != nil {
		return nil, fmt.Errorf("listing tracked files: %w", err)
	}
	return splitLines(out), nil
}

// IsRepo returns true if dir is inside a git working tree.
func IsRepo(dir string) bool {
	out, err := output(dir, "rev-parse", "--is-inside-work-tree")
	return err == nil && strings.TrimSpace(out) == "true"
}

func splitLines(out string) []string {
	var files []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			files = append(files, line)
		}
	}
	return files
}

// output executes a git command and returns its stdout. Stderr is captured
// and included in the error message on failure.
func output(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

// runQuiet executes a git command without printing stdout.
func runQuiet(dir string, args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return nil
}

func isExitError(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}
