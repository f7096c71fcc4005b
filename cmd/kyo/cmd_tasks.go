package main

import (
	"fmt"

	"github.com/lee-pai-long/kyo/internal/ui"
	"github.com/spf13/cobra"
)

func newTasksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "List every task and what it does",
		RunE:  runTasks,
	}
}

func runTasks(cmd *cobra.Command, _ []string) error {
	env, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	g, err := buildGraph(env, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	// Internal tasks carry no help string and are omitted. Names are
	// padded to the longest so descriptions line up.
	width := 0
	for _, t := range g.Tasks() {
		if t.Help != "" && len(t.Name) > width {
			width = len(t.Name)
		}
	}

	out := cmd.OutOrStdout()
	for _, t := range g.Tasks() {
		if t.Help == "" {
			continue
		}
		// Pad before styling: ANSI escapes would count toward the width.
		name := ui.TitleStyle.Render(fmt.Sprintf("%-*s", width, t.Name))
		_, _ = fmt.Fprintf(out, "%s  %s\n", name, t.Help)
	}
	return nil
}
