package renderengine

import (
	"context"
	"math/rand"
)

// RenderFunc computes the result of a single task. It may run on any worker
// goroutine, therefore it must be a pure function of the task, its closure
// captures and the supplied generator - no shared mutable state. The
// generator is owned exclusively by the calling worker; each worker seeds
// its own instance so that stochastic sampling never repeats across workers.
type RenderFunc[T, R any] func(ctx context.Context, task T, rnd *rand.Rand) (R, error)

// UpdateFunc consumes a single result. It is only ever invoked on the
// goroutine that called Run, never concurrently with itself.
type UpdateFunc[R any] func(ctx context.Context, result R) error

// Engine is the contract shared by all execution strategies. Run executes
// render for every task exactly once and delivers every produced result to
// update exactly once, returning only after all results were delivered or a
// failure aborted the run. Delivery order across tasks is unspecified
// unless the strategy documents otherwise.
type Engine[T, R any] interface {
	Run(ctx context.Context, tasks []T, render RenderFunc[T, R], update UpdateFunc[R]) error

	// WorkerCount returns the number of parallel execution units this
	// strategy will use.
	WorkerCount() int
}
