// Package progress provides a lightweight tracker that keeps aggregated
// task counters (total, pending, running, completed, failed) for a single
// engine run. The tracker travels in the execution context - every
// component that receives the context can atomically update the counters
// without a global registry. Engines work equally well with a tracker-less
// context.
package progress
