package taskgraph

import (
	"context"
	"fmt"
	"io"
)

// Runner executes tasks from a Graph, remembering what already ran so that a
// task reached through several dependents executes at most once per Runner.
type Runner struct {
	graph *Graph
	out   io.Writer
	done  map[string]bool
}

// NewRunner creates a Runner writing progress to out.
func NewRunner(g *Graph, out io.Writer) *Runner {
	return &Runner{graph: g, out: out, done: make(map[string]bool)}
}

// Run executes the targets and their transitive prerequisites in dependency
// order. Each task runs at most once per Runner. A task whose completion
// check reports satisfied skips its action but still counts as done.
//
// The first failing task aborts the run unless it is marked best-effort, in
// which case the failure is reported and execution continues.
func (r *Runner) Run(ctx context.Context, targets ...string) error {
	order, err := r.graph.Order(targets...)
	if err != nil {
		return err
	}

	for _, name := range order {
		if r.done[name] {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		t, _ := r.graph.Task(name)

		if t.Check != nil {
			ok, err := t.Check()
			if err != nil {
				return fmt.Errorf("%s: checking state: %w", name, err)
			}
			if ok {
				r.done[name] = true
				_, _ = fmt.Fprintf(r.out, "%s: up to date\n", name)
				continue
			}
		}

		if t.Action != nil {
			if err := t.Action(ctx); err != nil {
				if !t.BestEffort {
					return fmt.Errorf("%s: %w", name, err)
				}
				_, _ = fmt.Fprintf(r.out, "%s: failed (ignored): %v\n", name, err)
			}
		}
		r.done[name] = true
	}
	return nil
}
