package main

import (
	"github.com/spf13/cobra"
)

// The four check commands share one shape: resolve the changed-file list
// against the source branch and hand it to an external tool. test and lint
// propagate failure; smell and safe are best-effort and always exit zero.

func newTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Run the test suite over changed files",
		RunE:  checkRunE("test"),
	}
}

func newLintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint",
		Short: "Run the style checker over changed files",
		RunE:  checkRunE("lint"),
	}
}

func newSmellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "smell",
		Short: "Run static analysis over changed files (best effort)",
		RunE:  checkRunE("smell"),
	}
}

func newSafeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "safe",
		Short: "Scan dependencies for known vulnerabilities (best effort)",
		RunE:  checkRunE("safe"),
	}
}

func checkRunE(target string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		env, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		return runTarget(cmd, env, target)
	}
}
