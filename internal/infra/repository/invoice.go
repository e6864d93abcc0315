package repository

import (
	"context"

	"parkpass/internal/domain/invoice"
	"parkpass/internal/infra"
	"parkpass/internal/infra/repository/converter"
	sqlc "parkpass/internal/infra/sqlc/generated"
	"parkpass/internal/usecase/shared"

	"github.com/google/uuid"
)

type InvoiceQueries interface {
	GetInvoice(ctx context.Context, db sqlc.DBTX, arg sqlc.GetInvoiceParams) (sqlc.Invoices, error)
	ListInvoicesByPeriod(ctx context.Context, db sqlc.DBTX, arg sqlc.ListInvoicesByPeriodParams) ([]sqlc.Invoices, error)
	InsertInvoice(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertInvoiceParams) (int64, error)
	UpdateInvoiceIfVersion(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateInvoiceIfVersionParams) (int64, error)
}

type InvoiceRepository struct {
	queries InvoiceQueries
	db      sqlc.DBTX
}

func NewInvoiceRepository(queries InvoiceQueries, db sqlc.DBTX) *InvoiceRepository {
	return &InvoiceRepository{
		queries: queries,
		db:      db,
	}
}

var _ shared.InvoiceRepository = (*InvoiceRepository)(nil)

func (r *InvoiceRepository) Find(ctx context.Context, driverID uuid.UUID, period invoice.Period) (*invoice.Invoice, error) {
	row, err := r.queries.GetInvoice(ctx, r.db, sqlc.GetInvoiceParams{
		DriverID:    driverID,
		PeriodYear:  int32(period.Year),  // #nosec G115 -- validated period
		PeriodMonth: int32(period.Month), // #nosec G115
	})
	if err != nil {
		return nil, infra.WrapPgErr("failed to find invoice", err)
	}
	inv, err := converter.InvoiceFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to decode invoice", err)
	}
	return inv, nil
}

func (r *InvoiceRepository) Upsert(ctx context.Context, inv *invoice.Invoice) error {
	if inv.Version() == 0 {
		return r.insert(ctx, inv)
	}

	params, err := converter.InvoiceToUpdateParams(inv)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to encode invoice", err)
	}
	affected, err := r.queries.UpdateInvoiceIfVersion(ctx, r.db, params)
	if err != nil {
		return infra.WrapPgErr("failed to update invoice", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr(infra.KindConflict, "invoice version changed", nil)
	}
	inv.BumpVersion()
	return nil
}

// insert loses to a concurrent first fold of the same month; the caller retries and updates.
func (r *InvoiceRepository) insert(ctx context.Context, inv *invoice.Invoice) error {
	params, err := converter.InvoiceToInsertParams(inv)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to encode invoice", err)
	}
	affected, err := r.queries.InsertInvoice(ctx, r.db, params)
	if err != nil {
		return infra.WrapPgErr("failed to insert invoice", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr(infra.KindConflict, "invoice already exists", nil)
	}
	inv.BumpVersion()
	return nil
}

func (r *InvoiceRepository) ListByPeriod(ctx context.Context, period invoice.Period) ([]*invoice.Invoice, error) {
	rows, err := r.queries.ListInvoicesByPeriod(ctx, r.db, sqlc.ListInvoicesByPeriodParams{
		PeriodYear:  int32(period.Year),  // #nosec G115
		PeriodMonth: int32(period.Month), // #nosec G115
	})
	if err != nil {
		return nil, infra.WrapPgErr("failed to list invoices", err)
	}
	out := make([]*invoice.Invoice, 0, len(rows))
	for _, row := range rows {
		inv, err := converter.InvoiceFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to decode invoice", err)
		}
		out = append(out, inv)
	}
	return out, nil
}
