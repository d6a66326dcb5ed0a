package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/diwise/catalog-harvester/internal/pkg/application/harvester"
	"github.com/diwise/catalog-harvester/internal/pkg/domain"
	"github.com/matryer/is"
)

func TestStatusBeforeFirstRunIsIdle(t *testing.T) {
	is := is.New(t)
	r := NewRunner(context.Background(), &fakeHarvester{})

	status := r.Status()
	is.Equal(status.State, domain.StateIdle)
	is.True(!status.Active)
	is.True(!r.Cancel())
}

func TestOnlyOneRunAtATime(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	h := &fakeHarvester{release: make(chan struct{})}
	r := NewRunner(ctx, h)

	first, err := r.Start(ctx)
	is.NoErr(err)
	is.True(first.Active)

	active, err := r.Start(ctx)
	is.True(errors.Is(err, ErrRunActive))
	is.Equal(active.RunID, first.RunID)

	close(h.release)
	r.Wait()

	status := r.Status()
	is.Equal(status.RunID, first.RunID)
	is.Equal(status.State, domain.StateCompleted)
	is.Equal(status.Progress, 100)
	is.Equal(status.Datasets, 2)

	second, err := r.Start(ctx)
	is.NoErr(err)
	is.True(second.RunID != first.RunID)
	r.Wait()

	is.Equal(h.calls.Load(), int32(2))
}

func TestCancelStopsTheActiveRun(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	h := &fakeHarvester{release: make(chan struct{})}
	r := NewRunner(ctx, h)

	_, err := r.Start(ctx)
	is.NoErr(err)

	is.True(r.Cancel())
	is.True(r.Status().CancelRequested)

	close(h.release)
	r.Wait()

	status := r.Status()
	is.Equal(status.State, domain.StateCancelled)
	is.True(!status.Active)
	is.True(!r.Cancel()) // nothing left to cancel
}

func TestWorkerThatDoesNotFinishFailsTheRun(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	r := NewRunner(ctx, &fakeHarvester{abandon: true})

	_, err := r.Start(ctx)
	is.NoErr(err)
	r.Wait()

	status := r.Status()
	is.Equal(status.State, domain.StateFailed)
	is.True(!status.Active)
}

func TestPanickingWorkerFailsTheRun(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	r := NewRunner(ctx, &fakeHarvester{panics: true})

	_, err := r.Start(ctx)
	is.NoErr(err)
	r.Wait()

	is.Equal(r.Status().State, domain.StateFailed)

	_, err = r.Start(ctx)
	is.NoErr(err) // a failed run does not block the next one
	r.Wait()
}

func TestScheduleStartsRunsUntilShutdown(t *testing.T) {
	is := is.New(t)

	h := &fakeHarvester{}
	r := NewRunner(context.Background(), h)

	r.Schedule(10 * time.Millisecond)

	deadline := time.Now().Add(5 * time.Second)
	for h.calls.Load() < 2 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}

	r.Shutdown()
	r.Wait()

	is.True(h.calls.Load() >= 2)
	is.True(!r.Status().Active)
}

func TestScheduleIsDisabledByZeroInterval(t *testing.T) {
	is := is.New(t)

	h := &fakeHarvester{}
	r := NewRunner(context.Background(), h)

	r.Schedule(0)
	time.Sleep(20 * time.Millisecond)

	is.Equal(h.calls.Load(), int32(0))
}

type fakeHarvester struct {
	release chan struct{}
	abandon bool
	panics  bool
	calls   atomic.Int32
}

func (f *fakeHarvester) Harvest(ctx context.Context, tracker harvester.Tracker) (domain.HarvestState, domain.Counters, error) {
	f.calls.Add(1)

	if f.panics {
		panic("boom")
	}

	if f.abandon {
		return domain.StateFailed, domain.Counters{}, errors.New("gave up without finishing")
	}

	if f.release != nil {
		<-f.release
	}

	counters := domain.Counters{Organizations: 1, Datasets: 2, Resources: 3}

	if tracker.CancelRequested() {
		tracker.Finish(domain.StateCancelled, "cancelled", counters)
		return domain.StateCancelled, counters, nil
	}

	tracker.Finish(domain.StateCompleted, "completed", counters)
	return domain.StateCompleted, counters, nil
}
