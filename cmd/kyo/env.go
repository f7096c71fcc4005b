package main

import (
	"fmt"

	"github.com/lee-pai-long/kyo/internal/config"
	"github.com/lee-pai-long/kyo/internal/git"
	"github.com/lee-pai-long/kyo/internal/project"
	"github.com/spf13/cobra"
)

// projectEnv resolves the project directory and configuration once per
// command. The environment descriptor is detected lazily so commands that
// only read configuration keep working outside a git checkout.
type projectEnv struct {
	dir  string
	cfg  *config.Project
	desc *project.Descriptor
}

func loadEnv(cmd *cobra.Command) (*projectEnv, error) {
	dir, _ := cmd.Flags().GetString("dir")

	// Configuration lives at the repository top level when there is one.
	cfgDir := dir
	if git.IsRepo(dir) {
		top, err := git.TopLevel(dir)
		if err != nil {
			return nil, err
		}
		cfgDir = top
	}

	cfg, err := config.Load(cfgDir)
	if err != nil {
		return nil, err
	}

	return &projectEnv{dir: cfgDir, cfg: cfg}, nil
}

// descriptor detects and memoizes the environment descriptor.
func (e *projectEnv) descriptor() (*project.Descriptor, error) {
	if e.desc != nil {
		return e.desc, nil
	}
	d, err := project.Detect(e.dir, e.cfg.PythonVersionFile)
	if err != nil {
		return nil, err
	}
	e.desc = d
	return d, nil
}

// envName returns the derived virtualenv name, requiring a pinned python
// version so later pyenv steps cannot run against an unnamed interpreter.
func (e *projectEnv) envName() (string, error) {
	d, err := e.descriptor()
	if err != nil {
		return "", err
	}
	if d.PythonVersion == "" {
		return "", fmt.Errorf("missing python version: %s is absent or empty (run kyo init)", e.cfg.PythonVersionFile)
	}
	return d.EnvName(), nil
}
