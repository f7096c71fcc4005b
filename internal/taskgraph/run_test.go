package taskgraph

import (
	"context"
	"errors"
	"io"
	"testing"
)

func TestRun_memoizesSharedPrerequisite(t *testing.T) {
	runs := 0
	g, err := New([]Task{
		{Name: "shared", Action: func(context.Context) error { runs++; return nil }},
		{Name: "a", Deps: []string{"shared"}},
		{Name: "b", Deps: []string{"shared"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := NewRunner(g, io.Discard)
	if err := r.Run(context.Background(), "a", "b"); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if runs != 1 {
		t.Errorf("shared prerequisite ran %d times, want 1", runs)
	}
}

func TestRun_memoizesAcrossInvocations(t *testing.T) {
	runs := 0
	g, err := New([]Task{
		{Name: "once", Action: func(context.Context) error { runs++; return nil }},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := NewRunner(g, io.Discard)
	if err := r.Run(context.Background(), "once"); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if err := r.Run(context.Background(), "once"); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if runs != 1 {
		t.Errorf("task ran %d times across one runner, want 1", runs)
	}
}

func TestRun_satisfiedCheckSkipsAction(t *testing.T) {
	ran := false
	g, err := New([]Task{
		{
			Name:   "guarded",
			Check:  func() (bool, error) { return true, nil },
			Action: func(context.Context) error { ran = true; return nil },
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := NewRunner(g, io.Discard)
	if err := r.Run(context.Background(), "guarded"); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if ran {
		t.Error("action should not run when check reports satisfied")
	}
}

func TestRun_unsatisfiedCheckRunsAction(t *testing.T) {
	ran := false
	g, err := New([]Task{
		{
			Name:   "guarded",
			Check:  func() (bool, error) { return false, nil },
			Action: func(context.Context) error { ran = true; return nil },
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := NewRunner(g, io.Discard)
	if err := r.Run(context.Background(), "guarded"); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !ran {
		t.Error("action should run when check reports unsatisfied")
	}
}

func TestRun_failFast(t *testing.T) {
	boom := errors.New("boom")
	reached := false
	g, err := New([]Task{
		{Name: "first", Action: func(context.Context) error { return boom }},
		{Name: "second", Deps: []string{"first"}, Action: func(context.Context) error { reached = true; return nil }},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := NewRunner(g, io.Discard)
	err = r.Run(context.Background(), "second")
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped boom, got %v", err)
	}
	if reached {
		t.Error("dependent should not run after prerequisite failure")
	}
}

func TestRun_bestEffortSwallowsFailure(t *testing.T) {
	reached := false
	g, err := New([]Task{
		{Name: "scan", BestEffort: true, Action: func(context.Context) error { return errors.New("scanner exploded") }},
		{Name: "all", Deps: []string{"scan"}, Action: func(context.Context) error { reached = true; return nil }},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r := NewRunner(g, io.Discard)
	if err := r.Run(context.Background(), "all"); err != nil {
		t.Fatalf("best-effort failure should not abort: %v", err)
	}
	if !reached {
		t.Error("dependent should run after best-effort failure")
	}
}

func TestRun_cancelledContext(t *testing.T) {
	g, err := New([]Task{phony("a")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner(g, io.Discard)
	if err := r.Run(ctx, "a"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
