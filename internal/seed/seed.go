// Package seed derives independent pseudo-random seeds for engine workers.
// Every worker builds its own generator from a run-level base seed and its
// worker index; without that, workers could inherit identical generator
// state and bias any stochastic computation identically across the pool.
package seed

import "github.com/viant/renderengine/internal/clock"

// BaseFunc supplies the run-level base seed when the configuration leaves
// it unset. Override in tests for determinism.
var BaseFunc = func() int64 { return clock.Now().UnixNano() }

// Base returns a run-level base seed.
func Base() int64 { return BaseFunc() }

// Derive mixes the base seed with a worker index into an independent seed
// using the splitmix64 finalizer, so that neighbouring indices yield
// uncorrelated values.
func Derive(base int64, worker int) int64 {
	z := uint64(base) + uint64(worker+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return int64(z ^ (z >> 31))
}
