package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_missingFileReturnsDefaults(t *testing.T) {
	p, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.App != "app/wsgi.py" {
		t.Errorf("app = %q, want default app/wsgi.py", p.App)
	}
	if p.Port != 5000 {
		t.Errorf("port = %d, want 5000", p.Port)
	}
	if len(p.TodoTags) == 0 {
		t.Error("default todo tags should not be empty")
	}
}

func TestLoad_readsFile(t *testing.T) {
	dir := t.TempDir()
	data := []byte("version: 1\nport: 8080\ndb:\n  path: db/dev.sqlite\n")
	if err := os.WriteFile(filepath.Join(dir, FileName), data, 0644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Port != 8080 {
		t.Errorf("port = %d, want 8080", p.Port)
	}
	if p.DB.Path != "db/dev.sqlite" {
		t.Errorf("db.path = %q, want db/dev.sqlite", p.DB.Path)
	}
	// Unset fields still fall back to defaults.
	if p.Requirements != "requirements.txt" {
		t.Errorf("requirements = %q, want default", p.Requirements)
	}
}

func TestParse_badVersion(t *testing.T) {
	if _, err := Parse([]byte("version: 2\n")); err == nil {
		t.Fatal("expected error for unsupported version")
	}
}

func TestParse_missingVersion(t *testing.T) {
	// A present kyo.yaml must declare version: 1; only a wholly absent
	// file falls back to defaults.
	if _, err := Parse([]byte("port: 8080\n")); err == nil {
		t.Fatal("expected error for missing version")
	}
}

func TestParse_absolutePathRejected(t *testing.T) {
	if _, err := Parse([]byte("version: 1\napp: /etc/passwd\n")); err == nil {
		t.Fatal("expected error for absolute app path")
	}
}

func TestParse_escapingPathRejected(t *testing.T) {
	if _, err := Parse([]byte("version: 1\nrequirements: ../other/reqs.txt\n")); err == nil {
		t.Fatal("expected error for path escaping the project")
	}
}

func TestParse_portOutOfRange(t *testing.T) {
	if _, err := Parse([]byte("version: 1\nport: 70000\n")); err == nil {
		t.Fatal("expected error for out-of-range port")
	}
}

func TestParse_blankTodoTag(t *testing.T) {
	if _, err := Parse([]byte("version: 1\ntodo_tags: [\"TODO\", \" \"]\n")); err == nil {
		t.Fatal("expected error for blank todo tag")
	}
}
