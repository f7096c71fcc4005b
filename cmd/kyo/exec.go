package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// runTool runs an external tool from dir, streaming output to the console.
func runTool(dir string, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return nil
}

// runInEnv runs a tool through pyenv inside the named virtualenv.
func runInEnv(dir, envName string, name string, args ...string) error {
	cmd := exec.Command("pyenv", append([]string{"exec", name}, args...)...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "PYENV_VERSION="+envName)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return nil
}
