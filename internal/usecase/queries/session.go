package queries

import (
	"context"
	"time"

	"parkpass/internal/domain/auth"
	"parkpass/internal/domain/session"
	"parkpass/internal/infra"
	"parkpass/internal/pkg/clock"
	"parkpass/internal/pkg/errs"
	"parkpass/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrLotRequired = errs.New("lot id is required")

type SessionListParams struct {
	// LotID is required for operators and ignored for drivers, who only see their own sessions.
	LotID  uuid.UUID
	Status session.StatusFilter
	Range  session.DateRange
}

type SessionQueries interface {
	GetByID(ctx context.Context, actor auth.Actor, id uuid.UUID) (*session.Session, error)
	List(ctx context.Context, actor auth.Actor, params SessionListParams) ([]*session.Session, error)
}

type sessionQueriesImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	loc   *time.Location
}

func NewSessionQueries(uow shared.UnitOfWork, clk clock.Clock, loc *time.Location) SessionQueries {
	if loc == nil {
		loc = time.UTC
	}
	return &sessionQueriesImpl{uow: uow, clock: clk, loc: loc}
}

func (q *sessionQueriesImpl) GetByID(ctx context.Context, actor auth.Actor, id uuid.UUID) (*session.Session, error) {
	var s *session.Session
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		s, err = tx.Sessions().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if actor.IsAdmin() || s.DriverID() == actor.ID {
			return nil
		}
		l, err := tx.Lots().FindByID(ctx, s.LotID())
		if err != nil {
			return err
		}
		return authorizeLot(actor, l)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrSessionNotFound)
		}
		return nil, err
	}
	return s, nil
}

func (q *sessionQueriesImpl) List(ctx context.Context, actor auth.Actor, params SessionListParams) ([]*session.Session, error) {
	if params.Status == "" {
		params.Status = session.FilterAll
	}
	if params.Range == "" {
		params.Range = session.RangeAll
	}

	now := q.clock.Now()
	from := params.Range.Since(now, q.loc)
	// Sessions can be opened by other requests while this one runs.
	to := now.Add(time.Hour)

	var rows []*session.Session
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		if actor.Role == auth.RoleDriver {
			rows, err = tx.Sessions().ListByDriver(ctx, actor.ID, from, to)
			return err
		}

		if params.LotID == uuid.Nil {
			return ErrLotRequired
		}
		l, err := tx.Lots().FindByID(ctx, params.LotID)
		if err != nil {
			return err
		}
		if err := authorizeLot(actor, l); err != nil {
			return err
		}
		rows, err = tx.Sessions().ListByLot(ctx, params.LotID, from, to)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrLotNotFound)
		}
		return nil, err
	}

	filter := session.Filter{Status: params.Status, Range: params.Range}
	return filter.Apply(rows, now, q.loc), nil
}
