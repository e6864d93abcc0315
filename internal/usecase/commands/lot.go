package commands

import (
	"context"
	"errors"
	"log/slog"

	"parkpass/internal/domain/auth"
	"parkpass/internal/domain/lot"
	"parkpass/internal/infra"
	"parkpass/internal/pkg/clock"
	"parkpass/internal/pkg/errs"
	"parkpass/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateLotInput struct {
	Name        string
	Location    string
	TotalSpaces int
	HourlyRate  decimal.Decimal
	DailyCap    decimal.Decimal
}

type LotCommands interface {
	CreateLot(ctx context.Context, actor auth.Actor, in CreateLotInput) (*lot.Lot, error)
	ChangeStatus(ctx context.Context, actor auth.Actor, lotID uuid.UUID, status lot.Status) (*lot.Lot, error)
	// ReconcileAvailability resets every lot to total spaces minus active sessions.
	ReconcileAvailability(ctx context.Context) (int, error)
}

type lotUseCaseImpl struct {
	uow   shared.UnitOfWork
	cache shared.AvailabilityCache
	retry shared.RetryPolicy
	clock clock.Clock
}

func NewLotUseCase(uow shared.UnitOfWork, cache shared.AvailabilityCache, retry shared.RetryPolicy, clk clock.Clock) LotCommands {
	if cache == nil {
		cache = shared.NoopAvailabilityCache{}
	}
	return &lotUseCaseImpl{uow: uow, cache: cache, retry: retry, clock: clk}
}

func (uc *lotUseCaseImpl) CreateLot(ctx context.Context, actor auth.Actor, in CreateLotInput) (*lot.Lot, error) {
	l, err := lot.NewLot(actor.ID, in.Name, in.Location, in.TotalSpaces, in.HourlyRate, in.DailyCap, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Lots().Create(ctx, l)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("lot created", "lot_id", l.ID(), "owner_id", l.OwnerID(), "total_spaces", l.TotalSpaces())
	return l, nil
}

func (uc *lotUseCaseImpl) ChangeStatus(ctx context.Context, actor auth.Actor, lotID uuid.UUID, status lot.Status) (*lot.Lot, error) {
	var updated *lot.Lot
	err := shared.Retry(ctx, uc.retry, "change_lot_status", func(ctx context.Context) error {
		return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			l, err := tx.Lots().CompareAndSwap(ctx, lotID, func(l *lot.Lot) error {
				if !actor.IsAdmin() && !l.IsOwnedBy(actor.ID) {
					return errs.ErrNotLotOwner
				}
				return l.ChangeStatus(status, uc.clock.Now())
			})
			if err != nil {
				return err
			}
			updated = l
			return nil
		})
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.Mark(err, errs.ErrLotNotFound)
		case errors.Is(err, lot.ErrInvalidStatus):
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		return nil, err
	}
	return updated, nil
}

func (uc *lotUseCaseImpl) ReconcileAvailability(ctx context.Context) (int, error) {
	var lots []*lot.Lot
	err := uc.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		lots, err = tx.Lots().List(ctx)
		return err
	})
	if err != nil {
		return 0, err
	}

	corrected := 0
	for _, candidate := range lots {
		changed := false
		err := shared.Retry(ctx, uc.retry, "reconcile_availability", func(ctx context.Context) error {
			return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
				// The version is read before counting; an entry committed in between
				// moves it and the swap is retried with a fresh count.
				seen, err := tx.Lots().FindByID(ctx, candidate.ID())
				if err != nil {
					return err
				}
				active, err := tx.Sessions().CountActiveByLot(ctx, candidate.ID())
				if err != nil {
					return err
				}
				l, err := tx.Lots().SwapIfVersion(ctx, candidate.ID(), seen.Version(), func(l *lot.Lot) error {
					changed = l.Reconcile(active, uc.clock.Now())
					return nil
				})
				if err != nil {
					return err
				}
				if changed {
					slog.Warn("lot availability corrected",
						"lot_id", l.ID(),
						"active_sessions", active,
						"available", l.AvailableSpaces())
				}
				return nil
			})
		})
		if err != nil {
			slog.Error("availability reconcile failed", "lot_id", candidate.ID(), "error", err.Error())
			continue
		}
		uc.cache.Invalidate(ctx, candidate.ID())
		if changed {
			corrected++
		}
	}
	return corrected, nil
}
