package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type testPayload struct {
	ID    int
	Value string
}

func TestQueue(t *testing.T) {
	queue := NewQueue[testPayload](DefaultConfig())
	ctx := context.Background()

	first := testPayload{ID: 1, Value: "first"}
	second := testPayload{ID: 2, Value: "second"}
	assert.Nil(t, queue.Publish(ctx, &first))
	assert.Nil(t, queue.Publish(ctx, &second))
	assert.Equal(t, 2, queue.Size())

	// FIFO order
	message, err := queue.Consume(ctx)
	assert.Nil(t, err)
	assert.Equal(t, 1, message.ID)
	message, err = queue.Consume(ctx)
	assert.Nil(t, err)
	assert.Equal(t, 2, message.ID)
	assert.Equal(t, 0, queue.Size())
}

func TestQueueBlockingConsume(t *testing.T) {
	queue := NewQueue[testPayload](DefaultConfig())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := queue.Consume(ctx)
	assert.NotNil(t, err)

	// the queue stays usable after a cancelled consume
	payload := testPayload{ID: 3}
	assert.Nil(t, queue.Publish(context.Background(), &payload))
	message, err := queue.Consume(context.Background())
	assert.Nil(t, err)
	assert.Equal(t, 3, message.ID)
}

func TestQueueBlockingPublish(t *testing.T) {
	queue := NewQueue[testPayload](Config{QueueBuffer: 1})
	ctx := context.Background()

	payload := testPayload{ID: 1}
	assert.Nil(t, queue.Publish(ctx, &payload))

	// buffer full; publish blocks until the context expires
	blockedCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	err := queue.Publish(blockedCtx, &payload)
	assert.NotNil(t, err)
}

func TestQueueConcurrency(t *testing.T) {
	queue := NewQueue[testPayload](Config{QueueBuffer: 16})
	ctx := context.Background()

	producers := 8
	messagesPerProducer := 50
	total := producers * messagesPerProducer

	var wg sync.WaitGroup
	for i := 0; i < producers; i++ {
		wg.Add(1)
		go func(producer int) {
			defer wg.Done()
			for j := 0; j < messagesPerProducer; j++ {
				payload := testPayload{ID: producer*messagesPerProducer + j}
				if err := queue.Publish(ctx, &payload); err != nil {
					t.Errorf("publish failed: %v", err)
					return
				}
			}
		}(i)
	}

	seen := map[int]bool{}
	var seenMu sync.Mutex
	var consumerWg sync.WaitGroup
	for i := 0; i < 4; i++ {
		consumerWg.Add(1)
		go func() {
			defer consumerWg.Done()
			for {
				consumeCtx, cancel := context.WithTimeout(ctx, time.Second)
				message, err := queue.Consume(consumeCtx)
				cancel()
				if err != nil {
					return
				}
				seenMu.Lock()
				done := false
				seen[message.ID] = true
				if len(seen) == total {
					done = true
				}
				seenMu.Unlock()
				if done {
					return
				}
			}
		}()
	}

	wg.Wait()
	consumerWg.Wait()
	assert.Equal(t, total, len(seen))
}
