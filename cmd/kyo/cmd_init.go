package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Bootstrap the development environment",
		Long: "Install the toolchain, create the virtualenv, install requirements,\n" +
			"and generate the .env/.envrc files. Every step is idempotent: rerunning\n" +
			"init skips whatever is already in place.",
		RunE: runInit,
	}
}

func runInit(cmd *cobra.Command, _ []string) error {
	env, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	if err := ensurePythonPin(env); err != nil {
		return err
	}

	return runTarget(cmd, env, "init")
}

// ensurePythonPin makes sure the version pin file exists, prompting for a
// version on a TTY and failing with the file name otherwise.
func ensurePythonPin(env *projectEnv) error {
	pin := filepath.Join(env.dir, env.cfg.PythonVersionFile)
	if data, err := os.ReadFile(pin); err == nil && strings.TrimSpace(string(data)) != "" { //nolint:gosec // pin path comes from project config
		return nil
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("missing python version: create %s with the desired version", env.cfg.PythonVersionFile)
	}

	version, err := promptInput("Python version to pin", "3.12.1", validateVersion)
	if err != nil {
		return err
	}
	if err := os.WriteFile(pin, []byte(version+"\n"), 0644); err != nil { //nolint:gosec // pin file needs to be readable
		return fmt.Errorf("writing %s: %w", env.cfg.PythonVersionFile, err)
	}
	return nil
}

func validateVersion(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("version is required")
	}
	for _, part := range strings.Split(s, ".") {
		if part == "" {
			return fmt.Errorf("malformed version %q", s)
		}
		for _, r := range part {
			if r < '0' || r > '9' {
				return fmt.Errorf("malformed version %q", s)
			}
		}
	}
	return nil
}
