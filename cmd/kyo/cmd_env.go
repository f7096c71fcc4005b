package main

import (
	"github.com/spf13/cobra"
)

func newEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Generate the .env and .envrc files",
		Long: "Write .env (FLASK_APP, FLASK_ENV, PYENV_VERSION) and .envrc (the direnv\n" +
			"loader directive). Existing files are never rewritten, even when the\n" +
			"branch has changed since they were generated; delete a file to\n" +
			"regenerate it.",
		RunE: runEnv,
	}
}

func runEnv(cmd *cobra.Command, _ []string) error {
	env, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	return runTarget(cmd, env, "env")
}
