// Package toolchain wraps the external tools the bootstrap drives: pyenv,
// pip, direnv, and litecli. Install helpers are guarded by PATH lookups so a
// tool already present on the host is never reinstalled.
package toolchain

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Installed reports whether a tool is resolvable on the search path.
func Installed(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// InstallPyenv installs pyenv via the upstream installer script.
func InstallPyenv() error {
	return run(".", "bash", "-c", "curl -sSL https://pyenv.run | bash")
}

// InstallDirenv installs direnv via the upstream installer script.
func InstallDirenv() error {
	return run(".", "bash", "-c", "curl -sSL https://direnv.net/install.sh | bash")
}

// InstallPython installs the pinned interpreter version. pyenv's
// --skip-existing makes the action idempotent.
func InstallPython(version string) error {
	return run(".", "pyenv", "install", "--skip-existing", version)
}

// CreateVirtualenv creates the named environment for the given interpreter
// version. A failure because the environment already exists is tolerated,
// matching the original bootstrap's `|| :` on this step.
func CreateVirtualenv(version, name string) error {
	err := run(".", "pyenv", "virtualenv", version, name)
	if err != nil && isExitError(err) {
		return nil
	}
	return err
}

// VirtualenvExists checks whether pyenv already knows the named environment.
func VirtualenvExists(name string) bool {
	out, err := output(".", "pyenv", "versions", "--bare")
	if err != nil {
		return false
	}
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == name {
			return true
		}
	}
	return false
}

// UpgradePip upgrades pip inside the named environment.
func UpgradePip(envName string) error {
	return runEnv(".", []string{"PYENV_VERSION=" + envName}, "pyenv", "exec", "pip", "install", "--upgrade", "pip")
}

// InstallRequirements installs the pinned requirement set into the named
// environment, upgrading already-installed packages.
func InstallRequirements(dir, envName, requirements string) error {
	return runEnv(dir, []string{"PYENV_VERSION=" + envName}, "pyenv", "exec", "pip", "install", "--upgrade", "-r", requirements)
}

// AllowDirenv marks the directory as allowed for direnv.
func AllowDirenv(dir string) error {
	return run(dir, "direnv", "allow", dir)
}

// InstallLitecli installs the litecli database client into the named
// environment.
func InstallLitecli(envName string) error {
	return runEnv(".", []string{"PYENV_VERSION=" + envName}, "pyenv", "exec", "pip", "install", "litecli")
}

// run executes a command in dir, streaming output to the console.
func run(dir string, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return nil
}

// runEnv is run with extra environment variables appended.
func runEnv(dir string, env []string, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), env...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return nil
}

// output executes a command and returns its stdout.
func output(dir string, name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%s %s: %w: %s", name, strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

func isExitError(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}
