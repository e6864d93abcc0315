package queries

import (
	"context"
	"time"

	"parkpass/internal/domain/auth"
	"parkpass/internal/domain/report"
	"parkpass/internal/domain/session"
	"parkpass/internal/infra"
	"parkpass/internal/pkg/clock"
	"parkpass/internal/pkg/errs"
	"parkpass/internal/usecase/shared"

	"github.com/google/uuid"
)

const MaxDashboardRange = 92 * 24 * time.Hour

var ErrInvalidRange = errs.New("invalid report range")

type ReportQueries interface {
	LotDashboard(ctx context.Context, actor auth.Actor, lotID uuid.UUID, from, to time.Time) (*report.Dashboard, error)
}

type reportQueriesImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	loc   *time.Location
}

func NewReportQueries(uow shared.UnitOfWork, clk clock.Clock, loc *time.Location) ReportQueries {
	if loc == nil {
		loc = time.UTC
	}
	return &reportQueriesImpl{uow: uow, clock: clk, loc: loc}
}

func (q *reportQueriesImpl) LotDashboard(ctx context.Context, actor auth.Actor, lotID uuid.UUID, from, to time.Time) (*report.Dashboard, error) {
	now := q.clock.Now()
	if to.IsZero() {
		to = now
	}
	if from.IsZero() {
		from = to.AddDate(0, 0, -30)
	}
	if !from.Before(to) || to.Sub(from) > MaxDashboardRange {
		return nil, ErrInvalidRange
	}

	var sessions []*session.Session
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, err := tx.Lots().FindByID(ctx, lotID)
		if err != nil {
			return err
		}
		if err := authorizeLot(actor, l); err != nil {
			return err
		}
		sessions, err = tx.Sessions().ListByLot(ctx, lotID, from, to)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrLotNotFound)
		}
		return nil, err
	}

	dashboard := report.Build(sessions, now, q.loc)
	return &dashboard, nil
}
