package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Invoker executes one task and produces its outcome. Implementations must
// return exactly one outcome per call and must not panic on task-level
// failures; every error becomes a failure outcome. The production
// implementation lives in the ffmpeg package; tests substitute fakes.
type Invoker interface {
	Invoke(ctx context.Context, t Task) Outcome
}

// InvokerFunc adapts a function to the Invoker interface.
type InvokerFunc func(ctx context.Context, t Task) Outcome

// Invoke calls f.
func (f InvokerFunc) Invoke(ctx context.Context, t Task) Outcome { return f(ctx, t) }

// Pool executes tasks with bounded concurrency: at most Workers
// invocations are in flight at any instant, regardless of how many tasks
// are submitted. One task's failure (including timeout) never cancels or
// blocks any other task.
type Pool struct {
	workers int
}

// NewPool returns a pool with the given concurrency limit. A limit below
// one is treated as one.
func NewPool(workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{workers: workers}
}

// Workers returns the concurrency limit.
func (p *Pool) Workers() int { return p.workers }

// Run executes every task and returns one outcome per task, in completion
// order. It returns only after all submitted tasks have produced an
// outcome; no ordering is promised among outcomes except in the
// degenerate single-worker case, where dispatch is strictly sequential.
//
// Cancelling ctx stops dispatching: tasks not yet started yield canceled
// outcomes, while in-flight invocations are interrupted by the invoker
// and still produce their own outcome.
func (p *Pool) Run(ctx context.Context, tasks []Task, inv Invoker) []Outcome {
	results := make(chan Outcome, len(tasks))

	var g errgroup.Group
	g.SetLimit(p.workers)
	for _, t := range tasks {
		if ctx.Err() != nil {
			results <- Failure(t, KindCanceled, "batch interrupted", 0)
			continue
		}
		t := t
		g.Go(func() error {
			results <- inv.Invoke(ctx, t)
			return nil
		})
	}
	// Workers never return errors; failures travel as outcomes.
	_ = g.Wait()
	close(results)

	outcomes := make([]Outcome, 0, len(tasks))
	for o := range results {
		outcomes = append(outcomes, o)
	}
	return outcomes
}
