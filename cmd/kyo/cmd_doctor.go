package main

import (
	"fmt"

	"github.com/lee-pai-long/kyo/internal/toolchain"
	"github.com/lee-pai-long/kyo/internal/ui"
	"github.com/spf13/cobra"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose the environment for common issues",
		RunE:  runDoctor,
	}
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	ok := true

	check := func(label, tool, hint string, required bool) {
		_, _ = fmt.Fprintf(out, "Checking %s... ", label)
		if toolchain.Installed(tool) {
			_, _ = fmt.Fprintln(out, ui.OKStyle.Render("found"))
			return
		}
		if required {
			_, _ = fmt.Fprintln(out, ui.ErrStyle.Render("NOT FOUND"))
			_, _ = fmt.Fprintf(out, "  %s\n", hint)
			ok = false
		} else {
			_, _ = fmt.Fprintln(out, ui.WarnStyle.Render("not found (kyo init will install it)"))
		}
	}

	check("git", "git", "git is required. Install it from https://git-scm.com/", true)
	check("pyenv", "pyenv", "", false)
	check("direnv", "direnv", "", false)
	check("curl", "curl", "curl is required to install pyenv and direnv.", true)

	env, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	d, derr := env.descriptor()
	if derr == nil {
		_, _ = fmt.Fprintf(out, "Project: %s (branch %s)\n", d.Name, d.Branch)
		if d.PythonVersion == "" {
			_, _ = fmt.Fprintf(out, "  %s\n", ui.WarnStyle.Render("no python version pinned in "+env.cfg.PythonVersionFile))
		} else {
			_, _ = fmt.Fprintf(out, "  python %s, environment %s\n", d.PythonVersion, d.EnvName())
		}
	} else {
		_, _ = fmt.Fprintf(out, "No git checkout found here (%v)\n", derr)
	}

	if ok {
		_, _ = fmt.Fprintln(out, "\nAll checks passed.")
		return nil
	}
	_, _ = fmt.Fprintln(out, "\nSome checks failed. See above for details.")
	return fmt.Errorf("doctor checks failed")
}
