package renderengine_test

import (
	"context"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/renderengine"
	"github.com/viant/renderengine/progress"
)

// square is a deterministic render callback shared by both strategies.
func square(ctx context.Context, task int, rnd *rand.Rand) (int, error) {
	return task * task, nil
}

func TestEngineContract(t *testing.T) {
	tasks := make([]int, 50)
	expected := make([]int, 50)
	for i := range tasks {
		tasks[i] = i + 1
		expected[i] = (i + 1) * (i + 1)
	}

	serial, err := renderengine.NewSerial[int, int]()
	assert.Nil(t, err)
	multicore, err := renderengine.NewMulticore[int, int](
		renderengine.WithProcesses(4),
		renderengine.WithTasksPerJob(3),
	)
	assert.Nil(t, err)

	engines := []renderengine.Engine[int, int]{serial, multicore}
	outputs := make([][]int, len(engines))
	for i, engine := range engines {
		var updated []int
		err = engine.Run(context.Background(), tasks, square,
			func(ctx context.Context, result int) error {
				updated = append(updated, result)
				return nil
			})
		assert.Nil(t, err)
		outputs[i] = updated
	}

	// serial output is the reference semantics: exact submission order
	assert.Equal(t, expected, outputs[0])

	// both strategies deliver the same multiset of results
	for _, output := range outputs[1:] {
		sorted := append([]int(nil), output...)
		sort.Ints(sorted)
		assert.Equal(t, expected, sorted)
	}
}

func TestEngineProgress(t *testing.T) {
	tasks := make([]int, 30)
	for i := range tasks {
		tasks[i] = i
	}

	engine, err := renderengine.NewMulticore[int, int](
		renderengine.WithProcesses(3),
		renderengine.WithTasksPerJob(4),
	)
	assert.Nil(t, err)

	ctx, tracker := progress.WithNewTracker(context.Background(), "test-run", nil)
	err = engine.Run(ctx, tasks, square,
		func(ctx context.Context, result int) error {
			return nil
		})
	assert.Nil(t, err)

	snapshot := tracker.Snapshot()
	assert.Equal(t, "test-run", snapshot.RunID)
	assert.Equal(t, len(tasks), snapshot.TotalTasks)
	assert.Equal(t, len(tasks), snapshot.CompletedTasks)
	assert.Equal(t, 0, snapshot.PendingTasks)
	assert.Equal(t, 0, snapshot.FailedTasks)
}
