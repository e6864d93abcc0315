package commands

import (
	"context"
	"errors"
	"log/slog"

	"parkpass/internal/domain/lot"
	"parkpass/internal/domain/session"
	"parkpass/internal/infra"
	"parkpass/internal/pkg/clock"
	"parkpass/internal/pkg/errs"
	"parkpass/internal/usecase/shared"

	"github.com/google/uuid"
)

type OpenSessionInput struct {
	DriverID      uuid.UUID
	VehicleNumber string
	LotID         uuid.UUID
	GateLocation  string
}

type CloseSessionResult struct {
	Session *session.Session
	Lot     *lot.Lot
	// BillingErr is set when the session closed but its charge was deferred to reconciliation.
	BillingErr error
}

type SessionCommands interface {
	OpenSession(ctx context.Context, in OpenSessionInput) (*session.Session, error)
	CloseSession(ctx context.Context, sessionID uuid.UUID) (*CloseSessionResult, error)
	CloseActiveSession(ctx context.Context, driverID, lotID uuid.UUID) (*CloseSessionResult, error)
}

type sessionUseCaseImpl struct {
	uow     shared.UnitOfWork
	ledger  *CapacityLedger
	billing BillingCommands
	cache   shared.AvailabilityCache
	retry   shared.RetryPolicy
	clock   clock.Clock
}

func NewSessionUseCase(
	uow shared.UnitOfWork,
	ledger *CapacityLedger,
	billing BillingCommands,
	cache shared.AvailabilityCache,
	retry shared.RetryPolicy,
	clk clock.Clock,
) SessionCommands {
	if cache == nil {
		cache = shared.NoopAvailabilityCache{}
	}
	return &sessionUseCaseImpl{
		uow:     uow,
		ledger:  ledger,
		billing: billing,
		cache:   cache,
		retry:   retry,
		clock:   clk,
	}
}

// OpenSession reserves a space and creates the session in one transaction, so a failed
// create rolls the reservation back with it.
func (uc *sessionUseCaseImpl) OpenSession(ctx context.Context, in OpenSessionInput) (*session.Session, error) {
	var (
		opened  *session.Session
		updated *lot.Lot
	)

	err := shared.Retry(ctx, uc.retry, "open_session", func(ctx context.Context) error {
		return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			active, err := tx.Sessions().FindActiveByDriver(ctx, in.DriverID)
			if err != nil && !infra.IsKind(err, infra.KindNotFound) {
				return err
			}
			if active != nil {
				return errs.Wrapf(errs.ErrDuplicateActiveSession, "active session %s", active.ID())
			}

			driverName := ""
			if d, derr := tx.Drivers().FindByID(ctx, in.DriverID); derr == nil {
				driverName = d.Name()
			} else if !infra.IsKind(derr, infra.KindNotFound) {
				return derr
			}

			l, err := uc.ledger.Adjust(ctx, tx, in.LotID, lot.DeltaEntry)
			if err != nil {
				return err
			}

			s, err := session.Open(in.DriverID, driverName, in.VehicleNumber, in.LotID, in.GateLocation, uc.clock.Now())
			if err != nil {
				return errs.Mark(err, errs.ErrDomainValidation)
			}

			if err := tx.Sessions().Create(ctx, s); err != nil {
				slog.Warn("session create failed after capacity reservation; reservation rolled back",
					"lot_id", in.LotID,
					"driver_id", in.DriverID,
					"error", err.Error())
				if infra.IsKind(err, infra.KindDuplicateKey) {
					return errs.Mark(err, errs.ErrDuplicateActiveSession)
				}
				return err
			}

			opened, updated = s, l
			return nil
		})
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) && !errs.Is(err, errs.ErrDuplicateActiveSession) {
			return nil, errs.Mark(err, errs.ErrDuplicateActiveSession)
		}
		return nil, err
	}

	uc.cache.Set(ctx, updated.ID(), updated.AvailableSpaces())
	slog.Info("session opened",
		"session_id", opened.ID(),
		"lot_id", opened.LotID(),
		"available", updated.AvailableSpaces())
	return opened, nil
}

func (uc *sessionUseCaseImpl) CloseSession(ctx context.Context, sessionID uuid.UUID) (*CloseSessionResult, error) {
	return uc.close(ctx, func(ctx context.Context, tx shared.Tx) (*session.Session, error) {
		s, err := tx.Sessions().FindByID(ctx, sessionID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.Mark(err, errs.ErrSessionNotFound)
			}
			return nil, err
		}
		return s, nil
	})
}

// CloseActiveSession closes the driver's active session at lotID, as an exit scan does.
func (uc *sessionUseCaseImpl) CloseActiveSession(ctx context.Context, driverID, lotID uuid.UUID) (*CloseSessionResult, error) {
	return uc.close(ctx, func(ctx context.Context, tx shared.Tx) (*session.Session, error) {
		s, err := tx.Sessions().FindActiveByDriver(ctx, driverID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.Wrap(errs.ErrSessionNotFound, "no active session for driver")
			}
			return nil, err
		}
		if s.LotID() != lotID {
			return nil, errs.Wrapf(errs.ErrSessionNotFound, "active session is at lot %s", s.LotID())
		}
		return s, nil
	})
}

func (uc *sessionUseCaseImpl) close(
	ctx context.Context,
	load func(ctx context.Context, tx shared.Tx) (*session.Session, error),
) (*CloseSessionResult, error) {
	result := &CloseSessionResult{}

	err := shared.Retry(ctx, uc.retry, "close_session", func(ctx context.Context) error {
		return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			s, err := load(ctx, tx)
			if err != nil {
				return err
			}

			if err := s.Complete(uc.clock.Now()); err != nil {
				if errors.Is(err, session.ErrAlreadyCompleted) {
					return errs.Mark(err, errs.ErrAlreadyCompleted)
				}
				return errs.Mark(err, errs.ErrDomainValidation)
			}
			if err := tx.Sessions().Update(ctx, s); err != nil {
				return err
			}

			l, err := uc.ledger.Adjust(ctx, tx, s.LotID(), lot.DeltaExit)
			if err != nil {
				return err
			}

			result.Session, result.Lot = s, l
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	uc.cache.Set(ctx, result.Lot.ID(), result.Lot.AvailableSpaces())

	if _, err := uc.billing.FoldSession(ctx, result.Session.ID()); err != nil {
		slog.Error("billing deferred for closed session",
			"session_id", result.Session.ID(),
			"driver_id", result.Session.DriverID(),
			"error", err.Error())
		result.BillingErr = errs.Mark(err, errs.ErrBillingDeferred)
	}

	slog.Info("session closed",
		"session_id", result.Session.ID(),
		"lot_id", result.Session.LotID(),
		"duration", result.Session.Duration().String())
	return result, nil
}
