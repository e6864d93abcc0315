package repository

import (
	"context"

	"parkpass/internal/domain/driver"
	"parkpass/internal/domain/pricing"
	"parkpass/internal/infra"
	"parkpass/internal/infra/repository/converter"
	sqlc "parkpass/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type ReferenceQueries interface {
	GetPricingTier(ctx context.Context, db sqlc.DBTX, membershipType string) (sqlc.PricingTiers, error)
	GetDriverByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Drivers, error)
}

type TierRepository struct {
	queries ReferenceQueries
	db      sqlc.DBTX
}

func NewTierRepository(queries ReferenceQueries, db sqlc.DBTX) *TierRepository {
	return &TierRepository{queries: queries, db: db}
}

func (r *TierRepository) FindByMembership(ctx context.Context, membership pricing.MembershipType) (pricing.Tier, error) {
	row, err := r.queries.GetPricingTier(ctx, r.db, string(membership))
	if err != nil {
		return pricing.Tier{}, infra.WrapPgErr("failed to find pricing tier", err)
	}
	return converter.TierFromRow(row), nil
}

type DriverRepository struct {
	queries ReferenceQueries
	db      sqlc.DBTX
}

func NewDriverRepository(queries ReferenceQueries, db sqlc.DBTX) *DriverRepository {
	return &DriverRepository{queries: queries, db: db}
}

func (r *DriverRepository) FindByID(ctx context.Context, id uuid.UUID) (*driver.Driver, error) {
	row, err := r.queries.GetDriverByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapPgErr("failed to find driver", err)
	}
	return converter.DriverFromRow(row), nil
}
