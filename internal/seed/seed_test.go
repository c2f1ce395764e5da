package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/viant/renderengine/internal/clock"
)

func TestDerive(t *testing.T) {
	// deterministic for identical input
	assert.Equal(t, Derive(42, 3), Derive(42, 3))

	// distinct across workers for the same base seed
	seen := map[int64]bool{}
	for worker := 0; worker < 64; worker++ {
		seen[Derive(42, worker)] = true
	}
	assert.Equal(t, 64, len(seen))

	// distinct across base seeds for the same worker
	assert.NotEqual(t, Derive(1, 0), Derive(2, 0))
}

func TestBase(t *testing.T) {
	previous := clock.NowFunc
	clock.NowFunc = func() time.Time { return time.Unix(0, 1234) }
	defer func() { clock.NowFunc = previous }()
	assert.Equal(t, int64(1234), Base())
}
