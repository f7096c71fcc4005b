// Package envfile generates the .env and .envrc files that wire the project
// directory into direnv and pyenv. Generation follows make's file-target
// semantics: an existing file is never rewritten, even when the branch or
// project name has changed since it was written. Downstream tooling depends
// on the files being stable across reruns; deleting a file is the only way
// to trigger regeneration.
package envfile

import (
	"fmt"
	"os"
	"path/filepath"
)

// Data carries the values interpolated into .env.
type Data struct {
	// App is the application entry point (FLASK_APP).
	App string
	// Mode is the runtime mode (FLASK_ENV).
	Mode string
	// EnvName is the pyenv virtualenv to activate (PYENV_VERSION).
	EnvName string
}

// EnvContent renders the .env key=value lines.
func EnvContent(d Data) string {
	return fmt.Sprintf("FLASK_APP=%s\nFLASK_ENV=%s\nPYENV_VERSION=%s\n", d.App, d.Mode, d.EnvName)
}

// EnvrcContent renders the single direnv loader directive.
func EnvrcContent() string {
	return "dotenv\n"
}

// Exists reports whether the generated file at path is already present.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// WriteEnv writes .env into dir unless it already exists. It reports whether
// a write happened.
func WriteEnv(dir string, d Data) (bool, error) {
	return writeOnce(filepath.Join(dir, ".env"), EnvContent(d))
}

// WriteEnvrc writes .envrc into dir unless it already exists.
func WriteEnvrc(dir string) (bool, error) {
	return writeOnce(filepath.Join(dir, ".envrc"), EnvrcContent())
}

func writeOnce(path, content string) (bool, error) {
	if Exists(path) {
		return false, nil
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil { //nolint:gosec // env files need to be readable by the shell
		return false, fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return true, nil
}
