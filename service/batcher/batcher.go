package batcher

// Batcher slices an immutable task sequence into jobs of up to size tasks.
// Tasks are claimed from the end of the sequence (pop order), so job
// content runs in reverse submission order; every job except possibly the
// last contains exactly size tasks. A Batcher is consumed by a single
// goroutine.
type Batcher[T any] struct {
	tasks  []T
	size   int
	cursor int
}

// New creates a batcher over tasks with the supplied job size; a size
// below one is treated as one.
func New[T any](tasks []T, size int) *Batcher[T] {
	if size < 1 {
		size = 1
	}
	return &Batcher[T]{
		tasks:  tasks,
		size:   size,
		cursor: len(tasks),
	}
}

// Next claims the next job. The second return value is false once the
// sequence is exhausted.
func (b *Batcher[T]) Next() ([]T, bool) {
	if b.cursor == 0 {
		return nil, false
	}
	count := b.size
	if count > b.cursor {
		count = b.cursor
	}
	job := make([]T, 0, count)
	for i := 0; i < count; i++ {
		b.cursor--
		job = append(job, b.tasks[b.cursor])
	}
	return job, true
}

// Remaining returns the number of unclaimed tasks.
func (b *Batcher[T]) Remaining() int {
	return b.cursor
}

// JobCount returns the total number of jobs produced for the full
// sequence, ceil(len(tasks)/size).
func (b *Batcher[T]) JobCount() int {
	return (len(b.tasks) + b.size - 1) / b.size
}
