package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/lee-pai-long/kyo/internal/envfile"
	"github.com/lee-pai-long/kyo/internal/project"
	"github.com/lee-pai-long/kyo/internal/taskgraph"
	"github.com/lee-pai-long/kyo/internal/todo"
	"github.com/lee-pai-long/kyo/internal/toolchain"
	"github.com/lee-pai-long/kyo/internal/ui"
	"github.com/spf13/cobra"
)

// runTarget builds the graph and executes the given targets through a fresh
// runner, so memoization is scoped to one invocation like a make run.
func runTarget(cmd *cobra.Command, env *projectEnv, targets ...string) error {
	out := cmd.OutOrStdout()
	g, err := buildGraph(env, out)
	if err != nil {
		return err
	}
	return taskgraph.NewRunner(g, out).Run(cmd.Context(), targets...)
}

// buildGraph assembles the full task graph. Tasks without a Help string are
// internal and omitted from `kyo tasks`. Actions resolve the environment
// descriptor at run time, so building the graph never touches git.
func buildGraph(env *projectEnv, out io.Writer) (*taskgraph.Graph, error) {
	return taskgraph.New([]taskgraph.Task{
		{
			Name: "init",
			Help: "Bootstrap the development environment",
			Deps: []string{"pyenv", "python", "requirements", "direnv", "envrc", "env", "allow"},
			Action: func(context.Context) error {
				_, _ = fmt.Fprintln(out, "Done. Reload your shell so direnv picks up the new environment.")
				return nil
			},
		},
		{
			Name:  "pyenv",
			Check: func() (bool, error) { return toolchain.Installed("pyenv"), nil },
			Action: func(context.Context) error {
				return toolchain.InstallPyenv()
			},
		},
		{
			Name: "python",
			Help: "Install the pinned Python and create the virtualenv",
			Deps: []string{"pyenv"},
			Check: func() (bool, error) {
				name, err := env.envName()
				if err != nil {
					return false, err
				}
				return toolchain.VirtualenvExists(name), nil
			},
			Action: func(context.Context) error {
				d, err := env.descriptor()
				if err != nil {
					return err
				}
				name, err := env.envName()
				if err != nil {
					return err
				}
				if err := toolchain.InstallPython(d.PythonVersion); err != nil {
					return err
				}
				return toolchain.CreateVirtualenv(d.PythonVersion, name)
			},
		},
		{
			Name: "requirements",
			Help: "Upgrade pip and install pinned requirements",
			Deps: []string{"python"},
			Action: func(context.Context) error {
				name, err := env.envName()
				if err != nil {
					return err
				}
				if err := toolchain.UpgradePip(name); err != nil {
					return err
				}
				return toolchain.InstallRequirements(env.dir, name, env.cfg.Requirements)
			},
		},
		{
			Name:  "direnv",
			Check: func() (bool, error) { return toolchain.Installed("direnv"), nil },
			Action: func(context.Context) error {
				return toolchain.InstallDirenv()
			},
		},
		{
			Name:  "envrc",
			Check: func() (bool, error) { return envfile.Exists(filepath.Join(env.dir, ".envrc")), nil },
			Action: func(context.Context) error {
				_, err := envfile.WriteEnvrc(env.dir)
				return err
			},
		},
		{
			Name:  "env",
			Help:  "Generate the .env and .envrc files",
			Deps:  []string{"envrc"},
			Check: func() (bool, error) { return envfile.Exists(filepath.Join(env.dir, ".env")), nil },
			Action: func(context.Context) error {
				name, err := env.envName()
				if err != nil {
					return err
				}
				_, err = envfile.WriteEnv(env.dir, envfile.Data{
					App:     env.cfg.App,
					Mode:    env.cfg.Mode,
					EnvName: name,
				})
				return err
			},
		},
		{
			Name: "allow",
			Deps: []string{"direnv", "envrc"},
			Action: func(context.Context) error {
				return toolchain.AllowDirenv(env.dir)
			},
		},
		{
			Name: "clean",
			Help: "Remove bytecode caches and other build droppings",
			Action: func(context.Context) error {
				removed, err := removeMatching(env.dir, env.cfg.CleanGlobs)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(out, "Removed %d entries.\n", len(removed))
				return nil
			},
		},
		{
			Name:   "test",
			Help:   "Run the test suite over changed files",
			Action: checkAction(env, "pytest"),
		},
		{
			Name:   "lint",
			Help:   "Run the style checker over changed files",
			Action: checkAction(env, "flake8"),
		},
		{
			Name:       "smell",
			Help:       "Run static analysis over changed files (best effort)",
			BestEffort: true,
			Action:     checkAction(env, "pylint"),
		},
		{
			Name:       "safe",
			Help:       "Scan dependencies for known vulnerabilities (best effort)",
			BestEffort: true,
			Action: func(context.Context) error {
				name, err := env.envName()
				if err != nil {
					return err
				}
				return runInEnv(env.dir, name, "safety", "check", "-r", env.cfg.Requirements)
			},
		},
		{
			Name: "run",
			Help: "Start the development server",
			Action: func(context.Context) error {
				name, err := env.envName()
				if err != nil {
					return err
				}
				return runInEnv(env.dir, name, "flask", "run", "--host", "0.0.0.0", "--port", strconv.Itoa(env.cfg.Port))
			},
		},
		{
			Name: "shell",
			Help: "Open an interactive shell with the app context loaded",
			Action: func(context.Context) error {
				name, err := env.envName()
				if err != nil {
					return err
				}
				return runInEnv(env.dir, name, "flask", "shell")
			},
		},
		{
			Name:  "litecli",
			Check: func() (bool, error) { return toolchain.Installed("litecli"), nil },
			Action: func(context.Context) error {
				name, err := env.envName()
				if err != nil {
					return err
				}
				return toolchain.InstallLitecli(name)
			},
		},
		{
			Name: "db",
			Help: "Open a database client on the local database file",
			Deps: []string{"litecli"},
			Action: func(context.Context) error {
				return runTool(env.dir, "litecli", env.cfg.DB.Path)
			},
		},
		{
			Name: "todo",
			Help: "List tagged comments in changed files",
			Action: func(context.Context) error {
				matches, err := collectTodos(env)
				if err != nil {
					return err
				}
				return printTodos(out, matches)
			},
		},
	})
}

// checkAction runs a check tool over the diff-derived python file list.
// A clean diff is a no-op, matching the original bootstrap's behavior of
// checking only what changed against the source branch.
func checkAction(env *projectEnv, tool string) func(context.Context) error {
	return func(context.Context) error {
		name, err := env.envName()
		if err != nil {
			return err
		}
		files, err := changedFiles(env)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			return nil
		}
		return runInEnv(env.dir, name, tool, files...)
	}
}

func changedFiles(env *projectEnv) ([]string, error) {
	base, err := project.SourceBranch(env.dir, env.cfg.SourceBranch)
	if err != nil {
		return nil, err
	}
	return project.ChangedPythonFiles(env.dir, base)
}

func collectTodos(env *projectEnv) ([]todo.Match, error) {
	files, err := changedFiles(env)
	if err != nil {
		return nil, err
	}
	return todo.ScanFiles(env.dir, files, env.cfg.TodoTags)
}

func printTodos(out io.Writer, matches []todo.Match) error {
	if len(matches) == 0 {
		_, _ = fmt.Fprintln(out, "Nothing to do.")
		return nil
	}
	tbl := ui.NewTable(out, "TAG", "MESSAGE", "FILE", "LINE")
	for _, m := range matches {
		tbl.Row(m.Tag, m.Message, m.File, m.Line)
	}
	return tbl.Flush()
}
