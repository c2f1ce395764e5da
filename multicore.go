package renderengine

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"sync"

	"github.com/viant/renderengine/internal/idgen"
	"github.com/viant/renderengine/internal/seed"
	"github.com/viant/renderengine/progress"
	"github.com/viant/renderengine/service/batcher"
	"github.com/viant/renderengine/service/messaging"
	"github.com/viant/renderengine/service/messaging/memory"
	"github.com/viant/renderengine/tracing"
)

// jobMessage travels on the job queue. It is a tagged union: either a batch
// of tasks or a shutdown marker, so that the termination case is explicit
// rather than a nil placeholder.
type jobMessage[T any] struct {
	tasks    []T
	shutdown bool
}

// resultBatch carries all results of one job as a single message; a worker
// never delivers a job partially. A non-nil err marks the batch failed and
// aborts the run.
type resultBatch[R any] struct {
	results []R
	err     error
}

// Multicore distributes tasks across a pool of worker goroutines. One
// batching producer groups consecutive tasks into jobs of up to TasksPerJob
// tasks, workers pull jobs from the job queue, render every task in the job
// and publish the results as one batch, and the calling goroutine drains
// the result queue invoking update per result. Contexts share no mutable
// memory; all data crosses through the two queues.
//
// If the time to render an individual task is comparable to the queue
// transfer latency, raise TasksPerJob so that one transfer pays for several
// tasks.
//
// Result delivery order is unspecified: the producer drains the task list
// from its tail and jobs complete in whatever order workers are scheduled.
type Multicore[T, R any] struct {
	config *Config
}

// NewMulticore creates a multicore engine. Unset worker count resolves to
// the detected core count; invalid option values fail here, before any Run.
func NewMulticore[T, R any](options ...Option) (*Multicore[T, R], error) {
	config := DefaultConfig()
	for _, option := range options {
		if err := option(config); err != nil {
			return nil, err
		}
	}
	config.normalize()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Multicore[T, R]{config: config}, nil
}

// WorkerCount returns the resolved number of parallel workers.
func (e *Multicore[T, R]) WorkerCount() int {
	return e.config.Processes
}

// TasksPerJob returns the resolved job batch size.
func (e *Multicore[T, R]) TasksPerJob() int {
	return e.config.TasksPerJob
}

// SetProcesses mutates the worker count, failing immediately on an invalid
// value. Calling it while a run is in flight is undefined behaviour.
func (e *Multicore[T, R]) SetProcesses(count int) error {
	return e.config.SetProcesses(count)
}

// SetTasksPerJob mutates the job batch size, failing immediately on an
// invalid value. Calling it while a run is in flight is undefined
// behaviour.
func (e *Multicore[T, R]) SetTasksPerJob(count int) error {
	return e.config.SetTasksPerJob(count)
}

// Run executes tasks across the worker pool and blocks until every result
// was delivered to update or a failure aborted the run. An empty task list
// returns immediately without spawning anything. The first render or
// update error is returned after the shutdown handshake completed;
// in-flight results are discarded.
func (e *Multicore[T, R]) Run(ctx context.Context, tasks []T, render RenderFunc[T, R], update UpdateFunc[R]) (err error) {
	if len(tasks) == 0 {
		return nil
	}

	// run on a copy: mutating the engine configuration mid-run is disallowed
	config := *e.config

	ctx, span := tracing.StartSpan(ctx, "multicore.run", "INTERNAL")
	defer func() { tracing.EndSpan(span, err) }()
	span.WithAttributes(map[string]string{
		"run.id":          idgen.New(),
		"run.tasks":       strconv.Itoa(len(tasks)),
		"run.workers":     strconv.Itoa(config.Processes),
		"run.tasksPerJob": strconv.Itoa(config.TasksPerJob),
	})

	jobs := batcher.New(tasks, config.TasksPerJob)

	// size the queues so that neither the producer nor the workers can ever
	// block indefinitely on send: all jobs, all result batches and one
	// sentinel per worker fit into the buffers
	buffer := config.QueueBuffer
	if floor := jobs.JobCount() + config.Processes; buffer < floor {
		buffer = floor
	}
	jobQueue := memory.NewQueue[jobMessage[T]](memory.Config{QueueBuffer: buffer})
	resultQueue := memory.NewQueue[resultBatch[R]](memory.Config{QueueBuffer: buffer})

	progress.UpdateCtx(ctx, progress.Delta{Total: len(tasks), Pending: len(tasks)})

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		e.produce(ctx, jobs, jobQueue)
	}()

	for i := 0; i < config.Processes; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			e.work(ctx, worker, seed.Derive(config.Seed, worker), render, jobQueue, resultQueue)
		}(i)
	}

	// aggregate on the calling goroutine - update never runs concurrently
	// with itself
	err = e.aggregate(ctx, len(tasks), update, resultQueue)

	// shutdown handshake: one sentinel per worker, sent only after every
	// task was accounted for (or the run aborted)
	for i := 0; i < config.Processes; i++ {
		if pErr := jobQueue.Publish(ctx, &jobMessage[T]{shutdown: true}); pErr != nil {
			break
		}
	}
	wg.Wait()
	return err
}

// produce streams jobs into the job queue until the task cursor is
// exhausted. It publishes no sentinel - sentinel injection happens in Run
// once all results are accounted for.
func (e *Multicore[T, R]) produce(ctx context.Context, jobs *batcher.Batcher[T], queue messaging.Queue[jobMessage[T]]) {
	ctx, span := tracing.StartSpan(ctx, "multicore.batch", "PRODUCER")
	defer tracing.EndSpan(span, nil)
	span.WithAttributes(map[string]string{"run.jobs": strconv.Itoa(jobs.JobCount())})

	for {
		job, ok := jobs.Next()
		if !ok {
			return
		}
		if err := queue.Publish(ctx, &jobMessage[T]{tasks: job}); err != nil {
			// context cancelled; the aggregator reports the cause
			return
		}
	}
}

// work is the worker loop: pull a job, render every task preserving
// intra-job order, publish the whole batch as one message. The worker owns
// its generator; sharing one across workers would bias stochastic sampling
// identically in every context.
func (e *Multicore[T, R]) work(ctx context.Context, worker int, seedValue int64, render RenderFunc[T, R], jobQueue messaging.Queue[jobMessage[T]], resultQueue messaging.Queue[resultBatch[R]]) {
	ctx, span := tracing.StartSpan(ctx, "multicore.worker", "CONSUMER")
	defer tracing.EndSpan(span, nil)
	span.WithAttributes(map[string]string{"worker.id": strconv.Itoa(worker)})

	rnd := rand.New(rand.NewSource(seedValue))
	for {
		message, err := jobQueue.Consume(ctx)
		if err != nil {
			return
		}
		if message.shutdown {
			return
		}
		batch := resultBatch[R]{results: make([]R, 0, len(message.tasks))}
		for _, task := range message.tasks {
			result, rErr := render(ctx, task, rnd)
			if rErr != nil {
				batch.err = fmt.Errorf("failed to render task: %w", rErr)
				break
			}
			batch.results = append(batch.results, result)
		}
		if pErr := resultQueue.Publish(ctx, &batch); pErr != nil {
			return
		}
		if batch.err != nil {
			// fatal to the run; no retry
			return
		}
	}
}

// aggregate drains the result queue until every original task is accounted
// for, invoking update once per result. The first failed batch or update
// error aborts the countdown.
func (e *Multicore[T, R]) aggregate(ctx context.Context, total int, update UpdateFunc[R], queue messaging.Queue[resultBatch[R]]) error {
	remaining := total
	for remaining > 0 {
		batch, err := queue.Consume(ctx)
		if err != nil {
			return err
		}
		if batch.err != nil {
			progress.UpdateCtx(ctx, progress.Delta{Pending: -1, Failed: 1})
			return batch.err
		}
		for i := range batch.results {
			if uErr := update(ctx, batch.results[i]); uErr != nil {
				progress.UpdateCtx(ctx, progress.Delta{Pending: -1, Failed: 1})
				return fmt.Errorf("failed to update result: %w", uErr)
			}
			progress.UpdateCtx(ctx, progress.Delta{Pending: -1, Completed: 1})
			remaining--
		}
	}
	return nil
}

// ensure Multicore implements the Engine contract
var _ Engine[int, int] = (*Multicore[int, int])(nil)
