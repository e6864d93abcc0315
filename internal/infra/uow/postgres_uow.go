package uow

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"parkpass/internal/infra"
	"parkpass/internal/infra/repository"
	sqlc "parkpass/internal/infra/sqlc/generated"
	"parkpass/internal/pkg/errs"
	"parkpass/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin  = errs.New("failed to begin transaction")
	errTransactionCommit = errs.New("failed to commit transaction")
)

const DefaultOpTimeout = 3 * time.Second

type Options struct {
	OpTimeout  time.Duration
	MaxRetries int
}

type PostgresUoW struct {
	pool    *pgxpool.Pool
	q       *sqlc.Queries
	opts    Options
	metrics shared.Metrics
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, opts Options, metrics shared.Metrics) shared.UnitOfWork {
	if opts.OpTimeout <= 0 {
		opts.OpTimeout = DefaultOpTimeout
	}
	if metrics == nil {
		metrics = shared.NoopMetrics{}
	}
	return &PostgresUoW{
		pool:    pool,
		q:       q,
		opts:    opts,
		metrics: metrics,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes.
// Lot and invoice rows are guarded by their version columns.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	start := time.Now()
	err := shared.Retry(ctx, shared.RetryPolicy{
		MaxRetries: u.opts.MaxRetries,
		Base:       100 * time.Millisecond,
		Retryable:  isSerializationFailure,
	}, "postgres_tx", func(ctx context.Context) error {
		return u.runInTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
	})
	u.metrics.StoreOp("tx", time.Since(start), err)
	return err
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	start := time.Now()
	err := u.runReadOnlyTx(ctx, fn)
	u.metrics.StoreOp("read_tx", time.Since(start), err)
	return err
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	ctx, cancel := context.WithTimeout(ctx, u.opts.OpTimeout)
	defer cancel()

	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return infra.WrapPgErr("begin transaction", errs.Mark(err, errTransactionBegin))
	}

	err = fn(ctx, newPgTx(u.q, pgxTx))
	if err == nil {
		if err = pgxTx.Commit(ctx); err == nil {
			return nil
		}
		err = infra.WrapPgErr("commit transaction", errs.Mark(err, errTransactionCommit))
	}

	if rollbackErr := pgxTx.Rollback(context.WithoutCancel(ctx)); rollbackErr != nil {
		if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("rollback failed", "error", rollbackErr.Error())
		}
	}
	return err
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	ctx, cancel := context.WithTimeout(ctx, u.opts.OpTimeout)
	defer cancel()

	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly, IsoLevel: pgx.RepeatableRead})
	if err != nil {
		return infra.WrapPgErr("begin read-only transaction", errs.Mark(err, errTransactionBegin))
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(context.WithoutCancel(ctx)); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, newPgTx(u.q, pgxTx)); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func isSerializationFailure(err error) bool {
	return infra.IsKind(err, infra.KindSerialization)
}

type pgTx struct {
	dbtx sqlc.DBTX
	q    *sqlc.Queries

	// Lazy-initialized repositories
	lotRepo     *repository.LotRepository
	sessionRepo *repository.SessionRepository
	invoiceRepo *repository.InvoiceRepository
	tierRepo    *repository.TierRepository
	driverRepo  *repository.DriverRepository
}

func newPgTx(q *sqlc.Queries, dbtx sqlc.DBTX) *pgTx {
	return &pgTx{dbtx: dbtx, q: q}
}

func (t *pgTx) Lots() shared.LotRepository {
	if t.lotRepo == nil {
		t.lotRepo = repository.NewLotRepository(t.q, t.dbtx)
	}
	return t.lotRepo
}

func (t *pgTx) Sessions() shared.SessionRepository {
	if t.sessionRepo == nil {
		t.sessionRepo = repository.NewSessionRepository(t.q, t.dbtx)
	}
	return t.sessionRepo
}

func (t *pgTx) Invoices() shared.InvoiceRepository {
	if t.invoiceRepo == nil {
		t.invoiceRepo = repository.NewInvoiceRepository(t.q, t.dbtx)
	}
	return t.invoiceRepo
}

func (t *pgTx) Tiers() shared.TierRepository {
	if t.tierRepo == nil {
		t.tierRepo = repository.NewTierRepository(t.q, t.dbtx)
	}
	return t.tierRepo
}

func (t *pgTx) Drivers() shared.DriverRepository {
	if t.driverRepo == nil {
		t.driverRepo = repository.NewDriverRepository(t.q, t.dbtx)
	}
	return t.driverRepo
}
