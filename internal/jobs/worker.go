// Package jobs runs the periodic maintenance passes: lot availability drift repair,
// invoice reconciliation for the current month, and expiry sweeps of in-process caches.
package jobs

import (
	"context"
	"log/slog"
	"time"

	"parkpass/internal/domain/invoice"
	"parkpass/internal/pkg/clock"
	"parkpass/internal/usecase/commands"
)

const (
	JobReconcileAvailability = "reconcile_availability"
	JobReconcileInvoices     = "reconcile_invoices"
	JobSweep                 = "sweep"
)

// Sweeper drops expired entries and reports how many it removed.
type Sweeper interface {
	Sweep() int
}

type Recorder interface {
	JobRun(job string, err error)
}

type Config struct {
	Interval   time.Duration
	JobTimeout time.Duration
	Location   *time.Location
}

func (c Config) withDefaults() Config {
	if c.Interval <= 0 {
		c.Interval = 10 * time.Minute
	}
	if c.JobTimeout <= 0 {
		c.JobTimeout = time.Minute
	}
	if c.Location == nil {
		c.Location = time.UTC
	}
	return c
}

type Worker struct {
	lots     commands.LotCommands
	billing  commands.BillingCommands
	sweepers []Sweeper
	clock    clock.Clock
	recorder Recorder
	cfg      Config
}

func NewWorker(
	lots commands.LotCommands,
	billing commands.BillingCommands,
	clk clock.Clock,
	recorder Recorder,
	cfg Config,
	sweepers ...Sweeper,
) *Worker {
	return &Worker{
		lots:     lots,
		billing:  billing,
		sweepers: sweepers,
		clock:    clk,
		recorder: recorder,
		cfg:      cfg.withDefaults(),
	}
}

func (w *Worker) RunForever(ctx context.Context) {
	ticker := time.NewTicker(w.cfg.Interval)
	defer ticker.Stop()

	for {
		w.RunOnce(ctx)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// RunOnce runs every job once. A failing job is logged and does not stop the others.
func (w *Worker) RunOnce(ctx context.Context) {
	w.run(ctx, JobReconcileAvailability, func(ctx context.Context) error {
		changed, err := w.lots.ReconcileAvailability(ctx)
		if err == nil && changed > 0 {
			slog.Warn("lot availability drift repaired", "lots", changed)
		}
		return err
	})

	w.run(ctx, JobReconcileInvoices, func(ctx context.Context) error {
		period := invoice.PeriodOf(w.clock.Now(), w.cfg.Location)
		report, err := w.billing.ReconcileMonth(ctx, period)
		if err != nil {
			return err
		}
		if report.Folded > 0 || report.Failed > 0 || report.Drifting > 0 {
			slog.Warn("invoice reconciliation found gaps",
				"period", period.String(),
				"folded", report.Folded,
				"failed", report.Failed,
				"drifting", report.Drifting)
		}
		return nil
	})

	w.run(ctx, JobSweep, func(context.Context) error {
		removed := 0
		for _, s := range w.sweepers {
			removed += s.Sweep()
		}
		if removed > 0 {
			slog.Debug("expired cache entries swept", "removed", removed)
		}
		return nil
	})
}

func (w *Worker) run(parent context.Context, job string, fn func(ctx context.Context) error) {
	ctx, cancel := context.WithTimeout(parent, w.cfg.JobTimeout)
	defer cancel()

	err := fn(ctx)
	if w.recorder != nil {
		w.recorder.JobRun(job, err)
	}
	if err != nil {
		slog.Error("background job failed", "job", job, "error", err.Error())
	}
}
