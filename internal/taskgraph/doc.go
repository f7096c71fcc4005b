// Package taskgraph implements a small declarative task runner: named tasks
// with prerequisites, executed in dependency order with per-task completion
// checks. It reproduces make's target semantics without shelling out to
// make: phony tasks always run, guarded tasks skip when already satisfied,
// and file tasks skip when the file exists.
package taskgraph
