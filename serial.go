package renderengine

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/viant/renderengine/internal/seed"
	"github.com/viant/renderengine/progress"
	"github.com/viant/renderengine/tracing"
)

// Serial executes every task in submission order on the calling goroutine,
// handing each result to update as soon as it is computed. It involves no
// concurrency and is the reference semantics for all other strategies:
// every task rendered exactly once, every result updated exactly once.
type Serial[T, R any] struct {
	seed int64
}

// NewSerial creates a serial engine. Only the seed related options have any
// effect; worker and batching options are accepted for call-site symmetry
// with NewMulticore but validated all the same.
func NewSerial[T, R any](options ...Option) (*Serial[T, R], error) {
	config := DefaultConfig()
	for _, option := range options {
		if err := option(config); err != nil {
			return nil, err
		}
	}
	config.normalize()
	return &Serial[T, R]{seed: config.Seed}, nil
}

// Run renders tasks in order; a render or update error aborts the run and
// is returned.
func (e *Serial[T, R]) Run(ctx context.Context, tasks []T, render RenderFunc[T, R], update UpdateFunc[R]) (err error) {
	ctx, span := tracing.StartSpan(ctx, "serial.run", "INTERNAL")
	defer func() { tracing.EndSpan(span, err) }()
	span.WithAttributes(map[string]string{"run.tasks": strconv.Itoa(len(tasks))})

	progress.UpdateCtx(ctx, progress.Delta{Total: len(tasks), Pending: len(tasks)})

	rnd := rand.New(rand.NewSource(seed.Derive(e.seed, 0)))
	for i := range tasks {
		progress.UpdateCtx(ctx, progress.Delta{Pending: -1, Running: 1})
		result, rErr := render(ctx, tasks[i], rnd)
		if rErr != nil {
			progress.UpdateCtx(ctx, progress.Delta{Running: -1, Failed: 1})
			return fmt.Errorf("failed to render task %v: %w", i, rErr)
		}
		if uErr := update(ctx, result); uErr != nil {
			progress.UpdateCtx(ctx, progress.Delta{Running: -1, Failed: 1})
			return fmt.Errorf("failed to update result %v: %w", i, uErr)
		}
		progress.UpdateCtx(ctx, progress.Delta{Running: -1, Completed: 1})
	}
	return nil
}

// WorkerCount returns 1; the serial strategy owns no parallelism.
func (e *Serial[T, R]) WorkerCount() int {
	return 1
}

// ensure Serial implements the Engine contract
var _ Engine[int, int] = (*Serial[int, int])(nil)
