package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove bytecode caches and other build droppings",
		RunE:  runClean,
	}
	cmd.Flags().Bool("dry-run", false, "List matching files without removing them")
	return cmd
}

func runClean(cmd *cobra.Command, _ []string) error {
	env, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	if dryRun {
		matches, err := findMatching(env.dir, env.cfg.CleanGlobs)
		if err != nil {
			return err
		}
		for _, m := range matches {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), m)
		}
		return nil
	}

	return runTarget(cmd, env, "clean")
}

// findMatching walks the project tree and returns every path whose base name
// matches one of the glob patterns. Directories matching a pattern (like
// __pycache__) are returned whole and not descended into. The .git directory
// is never considered.
func findMatching(root string, patterns []string) ([]string, error) {
	var matches []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		if d.IsDir() && d.Name() == ".git" {
			return filepath.SkipDir
		}
		for _, pattern := range patterns {
			ok, err := filepath.Match(pattern, d.Name())
			if err != nil {
				return fmt.Errorf("bad clean glob %q: %w", pattern, err)
			}
			if ok {
				matches = append(matches, path)
				if d.IsDir() {
					return filepath.SkipDir
				}
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// removeMatching deletes everything findMatching reports and returns the
// removed paths.
func removeMatching(root string, patterns []string) ([]string, error) {
	matches, err := findMatching(root, patterns)
	if err != nil {
		return nil, err
	}
	for _, m := range matches {
		if err := os.RemoveAll(m); err != nil {
			return nil, fmt.Errorf("removing %s: %w", m, err)
		}
	}
	return matches, nil
}
