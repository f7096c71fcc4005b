package taskgraph

import (
	"strings"
	"testing"
)

func phony(name string, deps ...string) Task {
	return Task{Name: name, Deps: deps}
}

func TestNew_emptyName(t *testing.T) {
	_, err := New([]Task{{Name: ""}})
	if err == nil {
		t.Fatal("expected error for empty task name")
	}
}

func TestNew_duplicateName(t *testing.T) {
	_, err := New([]Task{phony("a"), phony("a")})
	if err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("expected duplicate-name error, got %v", err)
	}
}

func TestNew_unknownDep(t *testing.T) {
	_, err := New([]Task{phony("a", "missing")})
	if err == nil || !strings.Contains(err.Error(), "unknown task") {
		t.Fatalf("expected unknown-dep error, got %v", err)
	}
}

func TestNew_selfLoop(t *testing.T) {
	_, err := New([]Task{phony("a", "a")})
	if err == nil || !strings.Contains(err.Error(), "itself") {
		t.Fatalf("expected self-loop error, got %v", err)
	}
}

func TestNew_cycle(t *testing.T) {
	_, err := New([]Task{phony("a", "b"), phony("b", "c"), phony("c", "a")})
	if err == nil || !strings.Contains(err.Error(), "cycle") {
		t.Fatalf("expected cycle error, got %v", err)
	}
}

func TestOrder_depsBeforeDependents(t *testing.T) {
	g, err := New([]Task{
		phony("init", "python", "requirements", "direnv"),
		phony("python"),
		phony("requirements", "python"),
		phony("direnv"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	order, err := g.Order("init")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pos := make(map[string]int, len(order))
	for i, name := range order {
		pos[name] = i
	}
	if pos["python"] > pos["requirements"] {
		t.Errorf("python should run before requirements: %v", order)
	}
	if pos["init"] != len(order)-1 {
		t.Errorf("init should run last: %v", order)
	}
	if len(order) != 4 {
		t.Errorf("order length = %d, want 4", len(order))
	}
}

func TestOrder_onlyTransitiveClosure(t *testing.T) {
	g, err := New([]Task{
		phony("a", "b"),
		phony("b"),
		phony("unrelated"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	order, err := g.Order("a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, name := range order {
		if name == "unrelated" {
			t.Error("unrelated task should not be in the order")
		}
	}
}

func TestOrder_deterministic(t *testing.T) {
	g, err := New([]Task{
		phony("all", "c", "a", "b"),
		phony("c"),
		phony("a"),
		phony("b"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first, err := g.Order("all")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := g.Order("all")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Join(again, ",") != strings.Join(first, ",") {
			t.Fatalf("order changed between runs: %v vs %v", first, again)
		}
	}
}

func TestOrder_unknownTarget(t *testing.T) {
	g, err := New([]Task{phony("a")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := g.Order("nope"); err == nil {
		t.Fatal("expected error for unknown target")
	}
}
