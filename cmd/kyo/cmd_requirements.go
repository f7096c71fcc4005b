package main

import (
	"github.com/spf13/cobra"
)

func newRequirementsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "requirements",
		Short: "Upgrade pip and install pinned requirements",
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			return runTarget(cmd, env, "requirements")
		},
	}
}
