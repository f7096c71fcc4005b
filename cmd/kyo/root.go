package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "kyo",
		Short:   "Bootstrap and drive a local development environment",
		Version: version,
	}

	cmd.PersistentFlags().String("dir", ".", "Project directory")

	cmd.AddCommand(
		newInitCmd(),
		newEnvCmd(),
		newCleanCmd(),
		newRequirementsCmd(),
		newTestCmd(),
		newLintCmd(),
		newSmellCmd(),
		newSafeCmd(),
		newRunCmd(),
		newShellCmd(),
		newDBCmd(),
		newTodoCmd(),
		newTasksCmd(),
		newDoctorCmd(),
		newStatusCmd(),
	)

	return cmd
}
