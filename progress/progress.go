package progress

import (
	"context"
	"sync"
	"time"

	"github.com/viant/renderengine/internal/clock"
)

// Delta represents an incremental counter change emitted by the batcher,
// workers or aggregator. Fields are signed, so a value can either
// increment or decrement its counter.
type Delta struct {
	Total     int
	Pending   int
	Running   int
	Completed int
	Failed    int
}

// Snapshot is a read-only copy of the tracker state.
type Snapshot struct {
	RunID     string
	StartedAt time.Time

	TotalTasks     int
	PendingTasks   int
	RunningTasks   int
	CompletedTasks int
	FailedTasks    int
}

// Progress keeps aggregated task counters for one engine run. It is safe
// for concurrent use.
type Progress struct {
	mu       sync.Mutex
	state    Snapshot
	onChange func(Snapshot)
}

// Update applies the supplied delta. If an onChange callback is registered
// it is invoked with a copy of the updated state outside the critical
// section, so the callback can perform slow work (encoding, I/O) without
// blocking engine internals.
func (p *Progress) Update(d Delta) {
	if p == nil {
		return
	}
	p.mu.Lock()
	p.state.TotalTasks += d.Total
	p.state.PendingTasks += d.Pending
	p.state.RunningTasks += d.Running
	p.state.CompletedTasks += d.Completed
	p.state.FailedTasks += d.Failed
	snapshot := p.state
	callback := p.onChange
	p.mu.Unlock()

	if callback != nil {
		callback(snapshot)
	}
}

// Snapshot returns a copy of the tracker state for read-only inspection.
func (p *Progress) Snapshot() Snapshot {
	if p == nil {
		return Snapshot{}
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// OnChange registers a callback invoked after every Update. Passing nil
// disables the callback; only one callback can be active.
func (p *Progress) OnChange(callback func(Snapshot)) {
	if p == nil {
		return
	}
	p.mu.Lock()
	p.onChange = callback
	p.mu.Unlock()
}

type trackerKeyT struct{}

var trackerKey trackerKeyT

// WithNewTracker creates a new tracker, embeds it in a derived context and
// returns both. The optional onChange callback is invoked after every
// counter update.
func WithNewTracker(ctx context.Context, runID string, onChange func(Snapshot)) (context.Context, *Progress) {
	if ctx == nil {
		ctx = context.Background()
	}
	tracker := &Progress{
		state: Snapshot{
			RunID:     runID,
			StartedAt: clock.Now(),
		},
		onChange: onChange,
	}
	return context.WithValue(ctx, trackerKey, tracker), tracker
}

// FromContext extracts the tracker from ctx; the second return value is
// false when the context carries none.
func FromContext(ctx context.Context) (*Progress, bool) {
	if ctx == nil {
		return nil, false
	}
	tracker, ok := ctx.Value(trackerKey).(*Progress)
	return tracker, ok
}

// UpdateCtx looks up the tracker in ctx (if any) and applies the supplied
// delta.
func UpdateCtx(ctx context.Context, d Delta) {
	if tracker, ok := FromContext(ctx); ok {
		tracker.Update(d)
	}
}
