package messaging

import (
	"context"
)

// Queue represents an abstract blocking FIFO message channel for any
// payload type, safe for multiple producers and consumers. There is no
// acknowledgement or redelivery: engine failure semantics are fatal by
// design, so a consumed message is always final.
type Queue[T any] interface {
	// Publish appends a message to the queue, blocking while the queue is
	// at capacity or until the context is cancelled.
	Publish(ctx context.Context, t *T) error

	// Consume removes and returns the oldest message, blocking until one
	// is available or the context is cancelled.
	Consume(ctx context.Context) (*T, error)
}
