//go:build unit

package jobs_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"parkpass/internal/domain/invoice"
	"parkpass/internal/jobs"
	"parkpass/internal/pkg/clock"
	"parkpass/internal/usecase/commands"
	commandsmock "parkpass/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type recordedRun struct {
	job string
	err error
}

type fakeRecorder struct {
	mu   sync.Mutex
	runs []recordedRun
}

func (r *fakeRecorder) JobRun(job string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs = append(r.runs, recordedRun{job: job, err: err})
}

type countingSweeper struct{ n int }

func (s *countingSweeper) Sweep() int {
	s.n++
	return 1
}

var now = time.Date(2026, 5, 31, 23, 30, 0, 0, time.UTC)

func TestWorker_RunOnce(t *testing.T) {
	t.Run("runs every job for the current period", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		lots := commandsmock.NewMockLotCommands(ctrl)
		billing := commandsmock.NewMockBillingCommands(ctrl)
		rec := &fakeRecorder{}
		sweeper := &countingSweeper{}

		lots.EXPECT().ReconcileAvailability(gomock.Any()).Return(2, nil).Times(1)
		billing.EXPECT().ReconcileMonth(gomock.Any(), invoice.Period{Year: 2026, Month: time.May}).
			Return(&commands.ReconcileReport{Scanned: 3}, nil).Times(1)

		w := jobs.NewWorker(lots, billing, clock.NewMockClock(now), rec, jobs.Config{Location: time.UTC}, sweeper)
		w.RunOnce(context.Background())

		assert.Equal(t, 1, sweeper.n)
		assert.Equal(t, []recordedRun{
			{job: jobs.JobReconcileAvailability},
			{job: jobs.JobReconcileInvoices},
			{job: jobs.JobSweep},
		}, rec.runs)
	})

	t.Run("billing period follows the configured zone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		lots := commandsmock.NewMockLotCommands(ctrl)
		billing := commandsmock.NewMockBillingCommands(ctrl)
		tokyo := time.FixedZone("JST", 9*60*60)

		lots.EXPECT().ReconcileAvailability(gomock.Any()).Return(0, nil)
		billing.EXPECT().ReconcileMonth(gomock.Any(), invoice.Period{Year: 2026, Month: time.June}).
			Return(&commands.ReconcileReport{}, nil)

		jobs.NewWorker(lots, billing, clock.NewMockClock(now), nil, jobs.Config{Location: tokyo}).RunOnce(context.Background())
	})

	t.Run("a failing job does not stop the others", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		lots := commandsmock.NewMockLotCommands(ctrl)
		billing := commandsmock.NewMockBillingCommands(ctrl)
		rec := &fakeRecorder{}
		boom := errors.New("store down")

		lots.EXPECT().ReconcileAvailability(gomock.Any()).Return(0, boom)
		billing.EXPECT().ReconcileMonth(gomock.Any(), gomock.Any()).Return(&commands.ReconcileReport{}, nil)

		jobs.NewWorker(lots, billing, clock.NewMockClock(now), rec, jobs.Config{}).RunOnce(context.Background())

		if assert.Len(t, rec.runs, 3) {
			assert.ErrorIs(t, rec.runs[0].err, boom)
			assert.NoError(t, rec.runs[1].err)
		}
	})
}

func TestWorker_RunForever_StopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	lots := commandsmock.NewMockLotCommands(ctrl)
	billing := commandsmock.NewMockBillingCommands(ctrl)

	lots.EXPECT().ReconcileAvailability(gomock.Any()).Return(0, nil).MinTimes(1)
	billing.EXPECT().ReconcileMonth(gomock.Any(), gomock.Any()).Return(&commands.ReconcileReport{}, nil).MinTimes(1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	w := jobs.NewWorker(lots, billing, clock.NewMockClock(now), nil, jobs.Config{Interval: time.Hour})
	go func() {
		w.RunForever(ctx)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after cancel")
	}
}
