package taskgraph

import (
	"context"
	"fmt"
	"sort"
)

// Task is a named unit of work with prerequisites and an optional
// completion check.
//
// A nil Check makes the task phony: its action runs every time the task is
// reached. A non-nil Check that reports true short-circuits the action while
// still counting the task as done for its dependents.
type Task struct {
	Name string
	Help string
	Deps []string

	// Check reports whether the task is already satisfied.
	Check func() (bool, error)

	// Action performs the task's work. A nil Action is valid for aggregate
	// tasks that exist only to group prerequisites.
	Action func(ctx context.Context) error

	// BestEffort swallows an Action failure instead of aborting the run.
	BestEffort bool
}

// Graph is an immutable, validated set of tasks.
type Graph struct {
	tasks  []Task
	byName map[string]int
}

// New builds and validates a Graph.
//
// Validation rejects empty or duplicate task names, prerequisites that
// reference unknown tasks, self-loops, and any dependency cycle.
func New(tasks []Task) (*Graph, error) {
	if len(tasks) == 0 {
		return nil, fmt.Errorf("taskgraph: no tasks")
	}

	byName := make(map[string]int, len(tasks))
	for i, t := range tasks {
		if t.Name == "" {
			return nil, fmt.Errorf("taskgraph: task name is required")
		}
		if _, exists := byName[t.Name]; exists {
			return nil, fmt.Errorf("taskgraph: duplicate task name %q", t.Name)
		}
		byName[t.Name] = i
	}

	for _, t := range tasks {
		for _, d := range t.Deps {
			if d == t.Name {
				return nil, fmt.Errorf("taskgraph: task %q depends on itself", t.Name)
			}
			if _, ok := byName[d]; !ok {
				return nil, fmt.Errorf("taskgraph: task %q depends on unknown task %q", t.Name, d)
			}
		}
	}

	g := &Graph{tasks: tasks, byName: byName}
	if err := g.checkAcyclic(); err != nil {
		return nil, err
	}
	return g, nil
}

// Task returns the task with the given name.
func (g *Graph) Task(name string) (Task, bool) {
	i, ok := g.byName[name]
	if !ok {
		return Task{}, false
	}
	return g.tasks[i], true
}

// Tasks returns all tasks in declaration order.
func (g *Graph) Tasks() []Task {
	out := make([]Task, len(g.tasks))
	copy(out, g.tasks)
	return out
}

// Order returns the execution order for the given targets: every transitive
// prerequisite exactly once, prerequisites before dependents. Within the
// same dependency rank, declaration order breaks ties, so the order is
// deterministic across runs.
func (g *Graph) Order(targets ...string) ([]string, error) {
	needed := make(map[int]bool)
	var mark func(idx int)
	mark = func(idx int) {
		if needed[idx] {
			return
		}
		needed[idx] = true
		for _, d := range g.tasks[idx].Deps {
			mark(g.byName[d])
		}
	}
	for _, name := range targets {
		idx, ok := g.byName[name]
		if !ok {
			return nil, fmt.Errorf("taskgraph: unknown task %q", name)
		}
		mark(idx)
	}

	// Kahn's algorithm over the needed subgraph, popping the lowest
	// declaration index first.
	indeg := make(map[int]int, len(needed))
	dependents := make(map[int][]int, len(needed))
	for idx := range needed {
		for _, d := range g.tasks[idx].Deps {
			di := g.byName[d]
			indeg[idx]++
			dependents[di] = append(dependents[di], idx)
		}
	}

	var ready []int
	for idx := range needed {
		if indeg[idx] == 0 {
			ready = append(ready, idx)
		}
	}
	sort.Ints(ready)

	order := make([]string, 0, len(needed))
	for len(ready) > 0 {
		idx := ready[0]
		ready = ready[1:]
		order = append(order, g.tasks[idx].Name)
		for _, dep := range dependents[idx] {
			indeg[dep]--
			if indeg[dep] == 0 {
				ready = append(ready, dep)
			}
		}
		sort.Ints(ready)
	}

	if len(order) != len(needed) {
		// checkAcyclic makes this unreachable; keep the guard anyway.
		return nil, fmt.Errorf("taskgraph: dependency cycle detected")
	}
	return order, nil
}

func (g *Graph) checkAcyclic() error {
	const (
		unvisited = 0
		inStack   = 1
		done      = 2
	)
	state := make([]int, len(g.tasks))

	var visit func(idx int, path []string) error
	visit = func(idx int, path []string) error {
		switch state[idx] {
		case done:
			return nil
		case inStack:
			return fmt.Errorf("taskgraph: dependency cycle through %q", g.tasks[idx].Name)
		}
		state[idx] = inStack
		path = append(path, g.tasks[idx].Name)
		for _, d := range g.tasks[idx].Deps {
			if err := visit(g.byName[d], path); err != nil {
				return err
			}
		}
		state[idx] = done
		return nil
	}

	for i := range g.tasks {
		if err := visit(i, nil); err != nil {
			return err
		}
	}
	return nil
}
