package envfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteEnv_writesOnce(t *testing.T) {
	dir := t.TempDir()
	d := Data{App: "app/wsgi.py", Mode: "development", EnvName: "kyo-main"}

	wrote, err := WriteEnv(dir, d)
	if err != nil {
		t.Fatalf("first write: %v", err)
	}
	if !wrote {
		t.Fatal("first invocation should write the file")
	}

	wrote, err = WriteEnv(dir, d)
	if err != nil {
		t.Fatalf("second write: %v", err)
	}
	if wrote {
		t.Error("second invocation should not rewrite the file")
	}
}

func TestWriteEnv_neverRewritesStaleContent(t *testing.T) {
	dir := t.TempDir()
	if _, err := WriteEnv(dir, Data{App: "app/wsgi.py", Mode: "development", EnvName: "kyo-main"}); err != nil {
		t.Fatal(err)
	}

	// Branch changed, inputs differ: the file must stay as written.
	if _, err := WriteEnv(dir, Data{App: "app/wsgi.py", Mode: "development", EnvName: "kyo-feature"}); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, ".env"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "PYENV_VERSION=kyo-main") {
		t.Errorf("existing .env was rewritten:\n%s", data)
	}
}

func TestEnvContent_keys(t *testing.T) {
	got := EnvContent(Data{App: "app/wsgi.py", Mode: "development", EnvName: "kyo-main"})
	want := "FLASK_APP=app/wsgi.py\nFLASK_ENV=development\nPYENV_VERSION=kyo-main\n"
	if got != want {
		t.Errorf("env content = %q, want %q", got, want)
	}
}

func TestWriteEnvrc(t *testing.T) {
	dir := t.TempDir()

	wrote, err := WriteEnvrc(dir)
	if err != nil {
		t.Fatalf("write envrc: %v", err)
	}
	if !wrote {
		t.Fatal("expected write")
	}

	data, err := os.ReadFile(filepath.Join(dir, ".envrc"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "dotenv\n" {
		t.Errorf(".envrc = %q, want dotenv directive", data)
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if Exists(path) {
		t.Error("file should not exist yet")
	}
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if !Exists(path) {
		t.Error("file should exist")
	}
}
