package memory

import (
	"context"

	"github.com/viant/renderengine/service/messaging"
)

// Config for the in-memory queue implementation.
type Config struct {
	// QueueBuffer is the channel capacity; a publisher blocks once the
	// buffer is full.
	QueueBuffer int
}

// DefaultConfig returns a standard configuration for the memory queue.
func DefaultConfig() Config {
	return Config{
		QueueBuffer: 100,
	}
}

// Queue implements an in-memory messaging.Queue backed by a buffered
// channel. Payloads cross goroutine boundaries by reference; once
// published a payload belongs to its consumer.
type Queue[T any] struct {
	messages chan *T
}

// NewQueue creates a new in-memory queue.
func NewQueue[T any](config Config) *Queue[T] {
	if config.QueueBuffer <= 0 {
		config.QueueBuffer = DefaultConfig().QueueBuffer
	}
	return &Queue[T]{
		messages: make(chan *T, config.QueueBuffer),
	}
}

// Publish adds a new message to the queue.
func (q *Queue[T]) Publish(ctx context.Context, t *T) error {
	select {
	case q.messages <- t:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Consume retrieves a single message from the queue.
func (q *Queue[T]) Consume(ctx context.Context) (*T, error) {
	select {
	case message := <-q.messages:
		return message, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Size returns the current number of buffered messages.
func (q *Queue[T]) Size() int {
	return len(q.messages)
}

// ensure Queue implements messaging.Queue interface
var _ messaging.Queue[any] = (*Queue[any])(nil)
