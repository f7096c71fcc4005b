package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

func newTodoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "List tagged comments in changed files",
		RunE:  runTodo,
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

func runTodo(cmd *cobra.Command, _ []string) error {
	env, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	asJSON, _ := cmd.Flags().GetBool("json")

	if asJSON {
		matches, err := collectTodos(env)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(matches)
	}

	return runTarget(cmd, env, "todo")
}
