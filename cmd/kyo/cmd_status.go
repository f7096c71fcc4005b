package main

import (
	"encoding/json"
	"path/filepath"

	"github.com/lee-pai-long/kyo/internal/envfile"
	"github.com/lee-pai-long/kyo/internal/toolchain"
	"github.com/lee-pai-long/kyo/internal/ui"
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the environment descriptor and what is in place",
		RunE:  runStatus,
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

type envStatus struct {
	Project       string `json:"project"`
	Branch        string `json:"branch"`
	PythonVersion string `json:"python_version,omitempty"`
	EnvName       string `json:"env_name,omitempty"`
	EnvFile       bool   `json:"env_file"`
	EnvrcFile     bool   `json:"envrc_file"`
	Pyenv         bool   `json:"pyenv"`
	Direnv        bool   `json:"direnv"`
	Virtualenv    bool   `json:"virtualenv"`
}

func runStatus(cmd *cobra.Command, _ []string) error {
	env, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	d, err := env.descriptor()
	if err != nil {
		return err
	}

	s := envStatus{
		Project:       d.Name,
		Branch:        d.Branch,
		PythonVersion: d.PythonVersion,
		EnvFile:       envfile.Exists(filepath.Join(env.dir, ".env")),
		EnvrcFile:     envfile.Exists(filepath.Join(env.dir, ".envrc")),
		Pyenv:         toolchain.Installed("pyenv"),
		Direnv:        toolchain.Installed("direnv"),
	}
	if d.PythonVersion != "" {
		s.EnvName = d.EnvName()
		s.Virtualenv = toolchain.VirtualenvExists(s.EnvName)
	}

	out := cmd.OutOrStdout()

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}

	tbl := ui.NewTable(out, "WHAT", "VALUE")
	tbl.Row("project", s.Project)
	tbl.Row("branch", s.Branch)
	tbl.Row("python", orDash(s.PythonVersion))
	tbl.Row("environment", orDash(s.EnvName))
	tbl.Row(".env", present(s.EnvFile))
	tbl.Row(".envrc", present(s.EnvrcFile))
	tbl.Row("pyenv", present(s.Pyenv))
	tbl.Row("direnv", present(s.Direnv))
	tbl.Row("virtualenv", present(s.Virtualenv))
	return tbl.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func present(ok bool) string {
	if ok {
		return "present"
	}
	return "missing"
}
