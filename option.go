package renderengine

import "fmt"

// Option customises an engine at construction time. Options are applied
// eagerly: an invalid value fails the constructor, not a later Run call.
type Option func(c *Config) error

// WithProcesses sets the number of parallel workers.
func WithProcesses(count int) Option {
	return func(c *Config) error {
		return c.SetProcesses(count)
	}
}

// WithTasksPerJob sets how many consecutive tasks are grouped into a single
// job.
func WithTasksPerJob(count int) Option {
	return func(c *Config) error {
		return c.SetTasksPerJob(count)
	}
}

// WithSeed sets the run-level base seed, making worker generator sequences
// reproducible across runs.
func WithSeed(value int64) Option {
	return func(c *Config) error {
		c.Seed = value
		return nil
	}
}

// WithQueueBuffer sets the queue capacity hint.
func WithQueueBuffer(size int) Option {
	return func(c *Config) error {
		if size < 0 {
			return fmt.Errorf("%w: queue buffer must not be negative", ErrInvalidConfiguration)
		}
		c.QueueBuffer = size
		return nil
	}
}

// WithConfig replaces the whole configuration; zero fields resolve to their
// defaults before validation.
func WithConfig(config *Config) Option {
	return func(c *Config) error {
		if config == nil {
			return nil
		}
		resolved := *config
		resolved.normalize()
		if err := resolved.Validate(); err != nil {
			return err
		}
		*c = resolved
		return nil
	}
}
