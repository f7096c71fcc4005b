package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the project manifest looked up at the repository top level.
const FileName = "kyo.yaml"

// Load reads kyo.yaml from dir, returning stock defaults when the file does
// not exist.
func Load(dir string) (*Project, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName)) //nolint:gosec // manifest path is derived from the project dir
	if err != nil {
		if os.IsNotExist(err) {
			return Defaults(), nil
		}
		return nil, fmt.Errorf("reading %s: %w", FileName, err)
	}
	return Parse(data)
}

// Parse parses and validates kyo.yaml content, filling unset fields with
// stock defaults.
func Parse(data []byte) (*Project, error) {
	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", FileName, err)
	}
	p.merge(Defaults())
	if err := validate(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

func validate(p *Project) error {
	if p.Version != 1 {
		return fmt.Errorf("%s: unsupported version: %d (expected 1)", FileName, p.Version)
	}
	if p.Port < 1 || p.Port > 65535 {
		return fmt.Errorf("%s: port out of range: %d", FileName, p.Port)
	}
	for _, pair := range []struct{ label, path string }{
		{"app", p.App},
		{"python_version_file", p.PythonVersionFile},
		{"requirements", p.Requirements},
		{"db.path", p.DB.Path},
	} {
		if err := validatePath(pair.path, pair.label); err != nil {
			return err
		}
	}
	for _, tag := range p.TodoTags {
		if strings.TrimSpace(tag) == "" {
			return fmt.Errorf("%s: todo_tags must not contain blank entries", FileName)
		}
	}
	return nil
}

// validatePath ensures a path is relative and does not escape the project.
func validatePath(p, label string) error {
	if filepath.IsAbs(p) {
		return fmt.Errorf("%s: %s: absolute path is not allowed: %s", FileName, label, p)
	}
	cleaned := filepath.Clean(p)
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%s: %s: path must not escape project (contains ..): %s", FileName, label, p)
	}
	return nil
}
