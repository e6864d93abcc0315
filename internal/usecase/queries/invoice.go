package queries

import (
	"context"

	"parkpass/internal/domain/invoice"
	"parkpass/internal/infra"
	"parkpass/internal/pkg/errs"
	"parkpass/internal/usecase/shared"

	"github.com/google/uuid"
)

type InvoiceQueries interface {
	GetForDriver(ctx context.Context, driverID uuid.UUID, period invoice.Period) (*invoice.Invoice, error)
}

type invoiceQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewInvoiceQueries(uow shared.UnitOfWork) InvoiceQueries {
	return &invoiceQueriesImpl{uow: uow}
}

func (q *invoiceQueriesImpl) GetForDriver(ctx context.Context, driverID uuid.UUID, period invoice.Period) (*invoice.Invoice, error) {
	var inv *invoice.Invoice
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		inv, err = tx.Invoices().Find(ctx, driverID, period)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrInvoiceNotFound)
		}
		return nil, err
	}
	return inv, nil
}
