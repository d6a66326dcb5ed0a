package harvester

import (
	"sync"
	"time"

	"github.com/diwise/catalog-harvester/internal/pkg/domain"
	"github.com/google/uuid"
)

// Tracker is written to by a harvest as it progresses, and is asked at every
// checkpoint whether the harvest should stop.
type Tracker interface {
	Report(state domain.HarvestState, progress int, message string, counters domain.Counters)
	Finish(state domain.HarvestState, message string, counters domain.Counters)
	CancelRequested() bool
}

// Run holds the shared state of one harvest run. The worker reports progress
// through it, observers read snapshots of it and a cancel request is a flag
// set on it.
type Run struct {
	mu       sync.Mutex
	status   domain.Status
	done     chan struct{}
	doneOnce sync.Once
}

func NewRun() *Run {
	now := time.Now().UTC()

	return &Run{
		status: domain.Status{
			RunID:     uuid.NewString(),
			State:     domain.StateIdle,
			Active:    true,
			Message:   "Harvest scheduled",
			StartedAt: &now,
		},
		done: make(chan struct{}),
	}
}

func (r *Run) Report(state domain.HarvestState, progress int, message string, counters domain.Counters) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// only Finish may move a run into a terminal state
	if r.status.State.Terminal() || state.Terminal() {
		return
	}

	r.status.State = state
	r.status.Progress = clamp(progress)
	r.status.Message = message
	r.status.Counters = counters
}

// Finish moves the run into a terminal state. Only the first call has any effect.
func (r *Run) Finish(state domain.HarvestState, message string, counters domain.Counters) {
	r.doneOnce.Do(func() {
		r.mu.Lock()
		defer r.mu.Unlock()

		now := time.Now().UTC()

		r.status.State = state
		r.status.Active = false
		r.status.Message = message
		r.status.Counters = counters
		r.status.FinishedAt = &now

		if state == domain.StateCompleted {
			r.status.Progress = 100
		}

		close(r.done)
	})
}

// RequestCancel asks the worker to stop at its next checkpoint. It returns
// false if the run is no longer active.
func (r *Run) RequestCancel() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.status.State.Terminal() {
		return false
	}

	r.status.CancelRequested = true
	return true
}

func (r *Run) CancelRequested() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.status.CancelRequested
}

func (r *Run) Active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return !r.status.State.Terminal()
}

func (r *Run) Status() domain.Status {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.status
}

// Done is closed when the run has finished.
func (r *Run) Done() <-chan struct{} {
	return r.done
}

func clamp(progress int) int {
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}
