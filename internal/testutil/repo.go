package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// CreateRepo creates a git repository with an initial commit on main in a
// temp directory and returns its path.
func CreateRepo(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "kyo")

	run(t, t.TempDir(), "git", "init", "-b", "main", dir)
	run(t, dir, "git", "config", "user.email", "test@example.com")
	run(t, dir, "git", "config", "user.name", "Test")

	readme := filepath.Join(dir, "README.md")
	if err := os.WriteFile(readme, []byte("# test\n"), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}
	run(t, dir, "git", "add", ".")
	run(t, dir, "git", "commit", "-m", "initial commit")
	return dir
}

// CreateRepoOnBranch creates a repo like CreateRepo and checks out a new
// branch carrying one extra committed file.
func CreateRepoOnBranch(t *testing.T, branch string, files map[string]string) string {
	t.Helper()
	dir := CreateRepo(t)

	run(t, dir, "git", "checkout", "-b", branch)
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil { //nolint:gosec // test dir
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil { //nolint:gosec // test file
			t.Fatal(err)
		}
	}
	if len(files) > 0 {
		run(t, dir, "git", "add", ".")
		run(t, dir, "git", "commit", "-m", "branch commit")
	}
	return dir
}

// Commit stages and commits the given already-written paths.
func Commit(t *testing.T, dir, message string, paths ...string) {
	t.Helper()
	args := append([]string{"add", "--"}, paths...)
	run(t, dir, "git", args...)
	run(t, dir, "git", "commit", "-m", message)
}

func run(t *testing.T, dir string, name string, args ...string) {
	t.Helper()
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("command %s %v failed: %v", name, args, err)
	}
}
