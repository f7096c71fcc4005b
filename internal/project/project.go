package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lee-pai-long/kyo/internal/git"
)

// Descriptor identifies the environment for the current checkout. It is
// recomputed from git and filesystem state on every invocation and never
// persisted.
type Descriptor struct {
	Root          string
	Name          string
	Branch        string
	PythonVersion string
}

// Detect resolves the descriptor for the repository containing dir.
// versionFile is the pin file path relative to the repository top level;
// a missing or empty pin leaves PythonVersion empty rather than failing, so
// callers can decide whether the pin is required.
func Detect(dir, versionFile string) (*Descriptor, error) {
	top, err := git.TopLevel(dir)
	if err != nil {
		return nil, err
	}

	branch, err := git.CurrentBranch(top)
	if err != nil {
		return nil, err
	}
	if branch == "" {
		return nil, fmt.Errorf("detached HEAD: a checked-out branch is required to name the environment")
	}

	d := &Descriptor{
		Root:   top,
		Name:   filepath.Base(top),
		Branch: branch,
	}

	if versionFile != "" {
		data, err := os.ReadFile(filepath.Join(top, versionFile)) //nolint:gosec // pin file path comes from project config
		if err == nil {
			d.PythonVersion = strings.TrimSpace(string(data))
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading %s: %w", versionFile, err)
		}
	}

	return d, nil
}

// EnvName derives the virtualenv name. The pair (project, branch) keeps
// concurrent work on multiple branches in separate environments; slashes in
// branch names are flattened so the result stays a single path component.
func (d *Descriptor) EnvName() string {
	branch := strings.ReplaceAll(d.Branch, "/", "-")
	return d.Name + "-" + branch
}

// SourceBranch resolves the branch checks diff against. An explicit value
// wins; otherwise the first of main, master that exists locally.
func SourceBranch(dir, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	for _, candidate := range []string{"main", "master"} {
		ok, err := git.BranchExists(dir, candidate)
		if err != nil {
			return "", err
		}
		if ok {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no source branch found (tried main, master); set source_branch in kyo.yaml")
}

// ChangedPythonFiles returns the .py files changed relative to the source
// branch. When the checkout is on the source branch itself (empty diff is
// indistinguishable from "nothing to check"), every tracked .py file is
// returned instead so checks still cover the code base.
func ChangedPythonFiles(dir, sourceBranch string) ([]string, error) {
	branch, err := git.CurrentBranch(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	if branch == sourceBranch {
		files, err = git.TrackedFiles(dir)
	} else {
		files, err = git.DiffFiles(dir, sourceBranch)
	}
	if err != nil {
		return nil, err
	}

	var py []string
	for _, f := range files {
		if strings.HasSuffix(f, ".py") {
			py = append(py, f)
		}
	}
	return py, nil
}
