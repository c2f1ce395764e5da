// Package renderengine provides a pluggable task-execution abstraction for
// render-style workloads: an ordered collection of independent tasks is
// executed through a caller supplied render callback and every produced
// result is handed, one at a time, to a caller supplied update callback.
//
// Two interchangeable strategies implement the same Engine contract:
//
//   - Serial    – executes tasks in order on the calling goroutine; useful
//     for debugging and as the deterministic reference semantics
//   - Multicore – distributes tasks across a pool of workers, batching
//     consecutive tasks into jobs to amortise per-message overhead
//
// Callers can swap strategies without changing call sites:
//
//	engine, _ := renderengine.NewMulticore[Pixel, Sample](
//		renderengine.WithProcesses(8),
//		renderengine.WithTasksPerJob(16),
//	)
//	err := engine.Run(ctx, tasks,
//		func(ctx context.Context, p Pixel, rnd *rand.Rand) (Sample, error) {
//			return trace(p, rnd), nil
//		},
//		func(ctx context.Context, s Sample) error {
//			frame.Accumulate(s)
//			return nil
//		})
//
// The update callback always runs on the goroutine that called Run and is
// never invoked concurrently with itself; it is the only place where the
// caller's state may be safely mutated. Result delivery order is
// unspecified for the Multicore strategy - callers must not rely on it.
package renderengine
