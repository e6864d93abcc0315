package bootstrap

import (
	"context"
	"fmt"

	"parkpass/internal/infra/db"
	"parkpass/internal/infra/memstore"
	sqlc "parkpass/internal/infra/sqlc/generated"
	"parkpass/internal/infra/uow"
	"parkpass/internal/pkg/config"
	"parkpass/internal/usecase/shared"

	"go.uber.org/fx"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewUnitOfWork,
	),
)

func NewUnitOfWork(lc fx.Lifecycle, cfg config.Config, metrics shared.Metrics) (shared.UnitOfWork, error) {
	switch cfg.Store.Driver {
	case StoreDriverMemory:
		return memstore.NewUoW(memstore.New(cfg.Store.OpTimeout)), nil
	case StoreDriverPostgres:
		pool, cleanup, err := db.Connect(cfg.DB)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				if cleanup != nil {
					cleanup()
				}
				return nil
			},
		})
		opts := uow.Options{OpTimeout: cfg.Store.OpTimeout, MaxRetries: cfg.Store.MaxRetries}
		return uow.NewPostgresUoW(pool, sqlc.New(), opts, metrics), nil
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.Store.Driver)
	}
}
