// Package batcher groups consecutive tasks into fixed-size jobs so that a
// single queue transfer pays for several tasks. The batcher owns only an
// index cursor over an immutable task slice - the sequence itself is never
// mutated, which keeps concurrent access to the original tasks impossible
// by construction.
package batcher
