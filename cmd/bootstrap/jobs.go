package bootstrap

import (
	"context"
	"log/slog"

	"parkpass/internal/jobs"
	"parkpass/internal/pkg/clock"
	"parkpass/internal/pkg/config"
	"parkpass/internal/usecase/commands"

	"go.uber.org/fx"
)

var JobsModule = fx.Module("jobs",
	fx.Provide(NewWorker),
	fx.Invoke(startWorker),
)

type workerParams struct {
	fx.In

	Config   config.Config
	Lots     commands.LotCommands
	Billing  commands.BillingCommands
	Clock    clock.Clock
	Recorder jobs.Recorder
	Sweepers []jobs.Sweeper `group:"sweepers"`
}

func NewWorker(p workerParams) *jobs.Worker {
	return jobs.NewWorker(p.Lots, p.Billing, p.Clock, p.Recorder, jobs.Config{
		Interval:   p.Config.Jobs.ReconcileInterval,
		JobTimeout: p.Config.Jobs.JobTimeout,
		Location:   p.Config.Billing.Location(),
	}, p.Sweepers...)
}

func startWorker(lc fx.Lifecycle, cfg config.Config, w *jobs.Worker) {
	if !cfg.Jobs.Enabled {
		slog.Info("background jobs disabled")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			slog.Info("starting background jobs", "interval", cfg.Jobs.ReconcileInterval.String())
			go func() {
				defer close(done)
				w.RunForever(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}
