package queries

import (
	"context"

	"parkpass/internal/domain/auth"
	"parkpass/internal/domain/lot"
	"parkpass/internal/infra"
	"parkpass/internal/pkg/errs"
	"parkpass/internal/usecase/shared"

	"github.com/google/uuid"
)

type LotQueries interface {
	GetByID(ctx context.Context, actor auth.Actor, id uuid.UUID) (*lot.Lot, error)
	// Availability serves from the cache when it can.
	Availability(ctx context.Context, id uuid.UUID) (int, error)
}

type lotQueriesImpl struct {
	uow   shared.UnitOfWork
	cache shared.AvailabilityCache
}

func NewLotQueries(uow shared.UnitOfWork, cache shared.AvailabilityCache) LotQueries {
	if cache == nil {
		cache = shared.NoopAvailabilityCache{}
	}
	return &lotQueriesImpl{uow: uow, cache: cache}
}

func (q *lotQueriesImpl) GetByID(ctx context.Context, actor auth.Actor, id uuid.UUID) (*lot.Lot, error) {
	l, err := loadLot(ctx, q.uow, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeLot(actor, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (q *lotQueriesImpl) Availability(ctx context.Context, id uuid.UUID) (int, error) {
	if n, ok := q.cache.Get(ctx, id); ok {
		return n, nil
	}
	l, err := loadLot(ctx, q.uow, id)
	if err != nil {
		return 0, err
	}
	q.cache.Set(ctx, id, l.AvailableSpaces())
	return l.AvailableSpaces(), nil
}

func loadLot(ctx context.Context, uow shared.UnitOfWork, id uuid.UUID) (*lot.Lot, error) {
	var l *lot.Lot
	err := uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		l, err = tx.Lots().FindByID(ctx, id)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrLotNotFound)
		}
		return nil, err
	}
	return l, nil
}

// Operators see only the lots they own; admins see all.
func authorizeLot(actor auth.Actor, l *lot.Lot) error {
	if actor.IsAdmin() || l.IsOwnedBy(actor.ID) {
		return nil
	}
	return errs.ErrNotLotOwner
}
