package renderengine

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSerialRun(t *testing.T) {
	engine, err := NewSerial[int, int]()
	assert.Nil(t, err)
	assert.Equal(t, 1, engine.WorkerCount())

	tasks := []int{1, 2, 3, 4, 5}
	var updated []int
	err = engine.Run(context.Background(), tasks,
		func(ctx context.Context, task int, rnd *rand.Rand) (int, error) {
			return task, nil
		},
		func(ctx context.Context, result int) error {
			updated = append(updated, result)
			return nil
		})
	assert.Nil(t, err)
	// serial strategy preserves submission order exactly
	assert.Equal(t, []int{1, 2, 3, 4, 5}, updated)
}

func TestSerialEmpty(t *testing.T) {
	engine, err := NewSerial[int, int]()
	assert.Nil(t, err)

	updates := 0
	err = engine.Run(context.Background(), nil,
		func(ctx context.Context, task int, rnd *rand.Rand) (int, error) {
			return task, nil
		},
		func(ctx context.Context, result int) error {
			updates++
			return nil
		})
	assert.Nil(t, err)
	assert.Equal(t, 0, updates)
}

func TestSerialRenderError(t *testing.T) {
	engine, err := NewSerial[int, int]()
	assert.Nil(t, err)

	boom := errors.New("boom")
	var updated []int
	err = engine.Run(context.Background(), []int{1, 2, 3},
		func(ctx context.Context, task int, rnd *rand.Rand) (int, error) {
			if task == 2 {
				return 0, boom
			}
			return task, nil
		},
		func(ctx context.Context, result int) error {
			updated = append(updated, result)
			return nil
		})
	assert.True(t, errors.Is(err, boom))
	assert.Equal(t, []int{1}, updated)
}

func TestSerialUpdateError(t *testing.T) {
	engine, err := NewSerial[int, int]()
	assert.Nil(t, err)

	boom := errors.New("boom")
	renders := 0
	err = engine.Run(context.Background(), []int{1, 2, 3},
		func(ctx context.Context, task int, rnd *rand.Rand) (int, error) {
			renders++
			return task, nil
		},
		func(ctx context.Context, result int) error {
			return boom
		})
	assert.True(t, errors.Is(err, boom))
	assert.Equal(t, 1, renders)
}

func TestSerialInvalidOption(t *testing.T) {
	_, err := NewSerial[int, int](WithProcesses(-1))
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))
}
