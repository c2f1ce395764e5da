package renderengine

import (
	"context"
	"fmt"
	"runtime"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"gopkg.in/yaml.v3"

	"github.com/viant/renderengine/internal/seed"
)

// Config is a serialisable representation of the engine configuration. It
// can be populated from JSON, YAML or built programmatically; zero values
// inherit their package defaults. Mutating a configuration while a run is
// in flight is undefined behaviour - engines copy the resolved values when
// Run starts.
type Config struct {
	// Processes is the number of parallel workers; 0 resolves to the
	// detected core count.
	Processes int `json:"processes" yaml:"processes"`

	// TasksPerJob is the number of consecutive tasks grouped into one job
	// to amortise per-message overhead; 0 resolves to 1.
	TasksPerJob int `json:"tasksPerJob" yaml:"tasksPerJob"`

	// Seed is the run-level base seed from which every worker derives its
	// own generator seed; 0 resolves to a clock-derived value, set it
	// explicitly for reproducible runs.
	Seed int64 `json:"seed" yaml:"seed"`

	// QueueBuffer is the capacity hint for the job and result queues. The
	// engine raises it so that producers never block indefinitely.
	QueueBuffer int `json:"queueBuffer" yaml:"queueBuffer"`
}

// DefaultConfig returns a Config populated with the package defaults: all
// detected cores, one task per job.
func DefaultConfig() *Config {
	return &Config{
		Processes:   runtime.NumCPU(),
		TasksPerJob: 1,
	}
}

// Validate returns an error describing the first invalid setting or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.Processes <= 0 {
		return fmt.Errorf("%w: processes must be > 0", ErrInvalidConfiguration)
	}
	if c.TasksPerJob <= 0 {
		return fmt.Errorf("%w: tasks_per_job must be > 0", ErrInvalidConfiguration)
	}
	return nil
}

// SetProcesses sets the worker count, failing immediately on a non-positive
// value. Unset (zero on a fresh literal) resolves to the core count.
func (c *Config) SetProcesses(count int) error {
	if count <= 0 {
		return fmt.Errorf("%w: processes must be > 0", ErrInvalidConfiguration)
	}
	c.Processes = count
	return nil
}

// SetTasksPerJob sets the job batch size, failing immediately on a
// non-positive value.
func (c *Config) SetTasksPerJob(count int) error {
	if count <= 0 {
		return fmt.Errorf("%w: tasks_per_job must be > 0", ErrInvalidConfiguration)
	}
	c.TasksPerJob = count
	return nil
}

// normalize resolves unset (zero) values to their defaults. Explicitly
// invalid values are never repaired here - they fail in the setters or in
// Validate.
func (c *Config) normalize() {
	if c.Processes == 0 {
		c.Processes = runtime.NumCPU()
	}
	if c.TasksPerJob == 0 {
		c.TasksPerJob = 1
	}
	if c.Seed == 0 {
		c.Seed = seed.Base()
	}
}

// LoadConfig reads a YAML engine configuration from the supplied URL. Any
// scheme supported by the virtual file system can be used (file, mem,
// embed, s3, gs, ...). Keys absent from the document keep their defaults.
func LoadConfig(ctx context.Context, URL string, opts ...storage.Option) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %v: %w", URL, err)
	}
	config := DefaultConfig()
	if err = yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to decode config %v: %w", URL, err)
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}
