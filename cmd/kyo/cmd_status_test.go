package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/lee-pai-long/kyo/internal/testutil"
)

func TestRunStatus_table(t *testing.T) {
	dir := testutil.CreateRepo(t)
	writePin(t, dir, "3.12.1")

	out, err := execKyo(t, "--dir", dir, "status")
	if err != nil {
		t.Fatalf("status failed: %v", err)
	}
	for _, want := range []string{"kyo", "main", "3.12.1", "kyo-main"} {
		if !strings.Contains(out, want) {
			t.Errorf("status output missing %q:\n%s", want, out)
		}
	}
}

func TestRunStatus_json(t *testing.T) {
	dir := testutil.CreateRepo(t)
	writePin(t, dir, "3.12.1")

	out, err := execKyo(t, "--dir", dir, "status", "--json")
	if err != nil {
		t.Fatalf("status --json failed: %v", err)
	}

	var s envStatus
	if err := json.Unmarshal([]byte(out), &s); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, out)
	}
	if s.Project != "kyo" || s.Branch != "main" {
		t.Errorf("status = %+v, want project kyo on branch main", s)
	}
	if s.EnvName != "kyo-main" {
		t.Errorf("env name = %q, want kyo-main", s.EnvName)
	}
}

func TestRunStatus_outsideRepo(t *testing.T) {
	if _, err := execKyo(t, "--dir", t.TempDir(), "status"); err == nil {
		t.Fatal("expected error outside a repository")
	}
}
