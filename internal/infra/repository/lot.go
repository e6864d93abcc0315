package repository

import (
	"context"

	"parkpass/internal/domain/lot"
	"parkpass/internal/infra"
	"parkpass/internal/infra/repository/converter"
	sqlc "parkpass/internal/infra/sqlc/generated"
	"parkpass/internal/usecase/shared"

	"github.com/google/uuid"
)

type LotQueries interface {
	GetLotByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ParkingLots, error)
	ListLots(ctx context.Context, db sqlc.DBTX) ([]sqlc.ParkingLots, error)
	CreateLot(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateLotParams) error
	UpdateLotIfVersion(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateLotIfVersionParams) (int64, error)
}

type LotRepository struct {
	queries LotQueries
	db      sqlc.DBTX
}

func NewLotRepository(queries LotQueries, db sqlc.DBTX) *LotRepository {
	return &LotRepository{
		queries: queries,
		db:      db,
	}
}

var _ shared.LotRepository = (*LotRepository)(nil)

func (r *LotRepository) FindByID(ctx context.Context, id uuid.UUID) (*lot.Lot, error) {
	row, err := r.queries.GetLotByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapPgErr("failed to find lot", err)
	}
	return converter.LotFromRow(row), nil
}

func (r *LotRepository) List(ctx context.Context) ([]*lot.Lot, error) {
	rows, err := r.queries.ListLots(ctx, r.db)
	if err != nil {
		return nil, infra.WrapPgErr("failed to list lots", err)
	}
	lots := make([]*lot.Lot, 0, len(rows))
	for _, row := range rows {
		lots = append(lots, converter.LotFromRow(row))
	}
	return lots, nil
}

func (r *LotRepository) Create(ctx context.Context, l *lot.Lot) error {
	if err := r.queries.CreateLot(ctx, r.db, converter.LotToCreateParams(l)); err != nil {
		return infra.WrapPgErr("failed to create lot", err)
	}
	return nil
}

// CompareAndSwap is optimistic: the UPDATE only matches the version that was read.
func (r *LotRepository) CompareAndSwap(ctx context.Context, id uuid.UUID, mutate shared.LotMutator) (*lot.Lot, error) {
	cur, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return r.swap(ctx, cur, cur.Version(), mutate)
}

func (r *LotRepository) SwapIfVersion(ctx context.Context, id uuid.UUID, expected int64, mutate shared.LotMutator) (*lot.Lot, error) {
	cur, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cur.Version() != expected {
		return nil, infra.WrapRepoErr(infra.KindConflict, "lot version changed", nil)
	}
	return r.swap(ctx, cur, expected, mutate)
}

func (r *LotRepository) swap(ctx context.Context, cur *lot.Lot, expected int64, mutate shared.LotMutator) (*lot.Lot, error) {
	if err := mutate(cur); err != nil {
		return nil, err
	}

	affected, err := r.queries.UpdateLotIfVersion(ctx, r.db, converter.LotToSwapParams(cur, expected))
	if err != nil {
		return nil, infra.WrapPgErr("failed to update lot", err)
	}
	if affected == 0 {
		return nil, infra.WrapRepoErr(infra.KindConflict, "lot version changed", nil)
	}

	cur.BumpVersion()
	return cur, nil
}
