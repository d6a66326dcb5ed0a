package jobs

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/diwise/catalog-harvester/internal/pkg/application/harvester"
	"github.com/diwise/catalog-harvester/internal/pkg/domain"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/rs/zerolog"
)

var ErrRunActive = errors.New("a harvest is already running")

// Harvester is the work a Runner runs in the background.
type Harvester interface {
	Harvest(ctx context.Context, tracker harvester.Tracker) (domain.HarvestState, domain.Counters, error)
}

//Runner allows at most one harvest at a time and keeps track of the latest one
//
//go:generate moq -rm -out runner_mock.go . Runner
type Runner interface {
	Start(ctx context.Context) (domain.Status, error)
	Status() domain.Status
	Cancel() bool
	Wait()

	Schedule(interval time.Duration)
	Shutdown()
}

func NewRunner(ctx context.Context, h Harvester) Runner {
	return &runner{
		ctx:       ctx,
		harvester: h,
		log:       logging.GetFromContext(ctx),
	}
}

type runner struct {
	ctx       context.Context
	harvester Harvester
	log       zerolog.Logger

	mu      sync.Mutex
	current *harvester.Run
	workers sync.WaitGroup

	stop      chan struct{}
	stopOnce  sync.Once
	scheduled sync.WaitGroup
}

// Start launches a new harvest in the background and returns its initial
// status without waiting for it. The harvest is not bound to ctx, it lives
// until it finishes or is cancelled.
func (r *runner) Start(ctx context.Context) (domain.Status, error) {
	log := logging.GetFromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current != nil && r.current.Active() {
		return r.current.Status(), ErrRunActive
	}

	run := harvester.NewRun()
	r.current = run

	r.workers.Add(1)
	go r.work(run)

	status := run.Status()
	log.Info().Str("runId", status.RunID).Msg("harvest started")

	return status, nil
}

func (r *runner) work(run *harvester.Run) {
	defer r.workers.Done()

	log := r.log.With().Str("runId", run.Status().RunID).Logger()
	ctx := logging.NewContextWithLogger(r.ctx, log)

	defer func() {
		if p := recover(); p != nil {
			log.Error().Msgf("harvest worker panicked: %v", p)
		}

		// the harvester always finishes its run, this only guards against a worker that did not
		status := run.Status()
		if !status.State.Terminal() {
			run.Finish(domain.StateFailed, "Harvest failed: the worker stopped unexpectedly", status.Counters)
			status = run.Status()
		}

		recordRun(status)
		log.Info().Msgf("harvest ended in state %s: %s", status.State, status.Message)
	}()

	_, _, err := r.harvester.Harvest(ctx, run)
	if err != nil {
		log.Error().Err(err).Msg("harvest did not complete")
	}
}

// Status returns the status of the current, or the latest, run. Before the
// first run it returns an idle status.
func (r *runner) Status() domain.Status {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil {
		return domain.Status{
			State:   domain.StateIdle,
			Message: "No harvest has been run",
		}
	}

	return r.current.Status()
}

// Cancel asks the active run to stop after the dataset it is working on.
func (r *runner) Cancel() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil {
		return false
	}

	return r.current.RequestCancel()
}

func (r *runner) Wait() {
	r.workers.Wait()
}

// Schedule starts a new harvest every interval until Shutdown is called. A
// tick that finds a run in progress is skipped.
func (r *runner) Schedule(interval time.Duration) {
	if interval <= 0 {
		return
	}

	r.mu.Lock()
	if r.stop != nil {
		r.mu.Unlock()
		r.log.Warn().Msg("harvest schedule is already running")
		return
	}
	r.stop = make(chan struct{})
	stop := r.stop
	r.mu.Unlock()

	r.log.Info().Msgf("scheduling a harvest every %s", interval)

	r.scheduled.Add(1)
	go func() {
		defer r.scheduled.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if _, err := r.Start(r.ctx); err != nil {
					r.log.Info().Msg("skipping scheduled harvest, the previous one is still running")
				}
			case <-stop:
				r.log.Info().Msg("harvest schedule stopped")
				return
			case <-r.ctx.Done():
				return
			}
		}
	}()
}

// Shutdown stops the schedule and asks any active run to stop.
func (r *runner) Shutdown() {
	r.log.Info().Msg("shutting down harvest runner")

	r.stopOnce.Do(func() {
		r.mu.Lock()
		stop := r.stop
		r.mu.Unlock()

		if stop != nil {
			close(stop)
		}
	})

	r.scheduled.Wait()
	r.Cancel()
}
