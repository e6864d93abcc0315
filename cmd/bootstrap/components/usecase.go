package components

import (
	"time"

	"parkpass/internal/domain/accesstoken"
	"parkpass/internal/domain/lot"
	"parkpass/internal/pkg/clock"
	"parkpass/internal/pkg/config"
	"parkpass/internal/usecase"
	"parkpass/internal/usecase/commands"
	"parkpass/internal/usecase/queries"
	"parkpass/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) *time.Location {
		return cfg.Billing.Location()
	},
	func(cfg config.Config) *accesstoken.Codec {
		return accesstoken.NewCodec(cfg.Token.IssuerTag, cfg.Token.Window)
	},
	func(cfg config.Config) shared.RetryPolicy {
		p := shared.DefaultRetryPolicy()
		if cfg.Store.MaxRetries > 0 {
			p.MaxRetries = cfg.Store.MaxRetries
		}
		return p
	},
	func(cfg config.Config, clk clock.Clock, metrics shared.Metrics) (*commands.CapacityLedger, error) {
		policy, err := lot.NewCapacityPolicy(cfg.Billing.CapacityPolicy)
		if err != nil {
			return nil, err
		}
		return commands.NewCapacityLedger(policy, commands.DefaultCASAttempts, clk, metrics), nil
	},
	func(cfg config.Config, loc *time.Location, retry shared.RetryPolicy) commands.BillingConfig {
		return commands.BillingConfig{Location: loc, DueDay: cfg.Billing.DueDay, Retry: retry}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewTokenUseCase,
		commands.NewScanUseCase,
		commands.NewSessionUseCase,
		commands.NewLotUseCase,
		commands.NewBillingUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewInvoiceQueries,
		queries.NewLotQueries,
		queries.NewReportQueries,
		queries.NewSessionQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
