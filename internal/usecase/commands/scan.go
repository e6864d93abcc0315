package commands

import (
	"context"
	"log/slog"

	"parkpass/internal/domain/accesstoken"
	"parkpass/internal/domain/auth"
	"parkpass/internal/domain/lot"
	"parkpass/internal/domain/session"
	"parkpass/internal/infra"
	"parkpass/internal/pkg/clock"
	"parkpass/internal/pkg/errs"
	"parkpass/internal/usecase/shared"

	"github.com/google/uuid"
)

type Direction string

const (
	DirectionEntry Direction = "entry"
	DirectionExit  Direction = "exit"
)

func (d Direction) IsValid() bool {
	return d == DirectionEntry || d == DirectionExit
}

type ScanInput struct {
	RawToken  string
	LotID     uuid.UUID
	Gate      string
	Direction Direction
}

type ScanResult struct {
	Direction Direction
	Session   *session.Session
	// Set on exits whose charge was deferred to reconciliation.
	BillingErr error
}

type ScanCommands interface {
	Scan(ctx context.Context, actor auth.Actor, in ScanInput) (*ScanResult, error)
}

type scanUseCaseImpl struct {
	codec    *accesstoken.Codec
	guard    shared.ReplayGuard
	uow      shared.UnitOfWork
	sessions SessionCommands
	clock    clock.Clock
	metrics  shared.Metrics
}

func NewScanUseCase(
	codec *accesstoken.Codec,
	guard shared.ReplayGuard,
	uow shared.UnitOfWork,
	sessions SessionCommands,
	clk clock.Clock,
	metrics shared.Metrics,
) ScanCommands {
	if metrics == nil {
		metrics = shared.NoopMetrics{}
	}
	return &scanUseCaseImpl{
		codec:    codec,
		guard:    guard,
		uow:      uow,
		sessions: sessions,
		clock:    clk,
		metrics:  metrics,
	}
}

// Scan validates the token before touching any state. Checks run in order:
// token integrity and freshness, gate ownership, single use.
func (uc *scanUseCaseImpl) Scan(ctx context.Context, actor auth.Actor, in ScanInput) (*ScanResult, error) {
	if !in.Direction.IsValid() {
		return nil, errs.Wrapf(errs.ErrDomainValidation, "unknown scan direction %q", in.Direction)
	}

	token, err := uc.codec.Validate(in.RawToken, uc.clock.Now())
	if err != nil {
		kind, _ := accesstoken.KindOf(err)
		uc.metrics.ScanProcessed(string(in.Direction), "rejected_"+string(kind))
		slog.Info("scan rejected", "lot_id", in.LotID, "kind", string(kind))
		return nil, errs.Mark(err, errs.ErrTokenRejected)
	}

	driverID, err := uuid.Parse(token.SubjectID())
	if err != nil {
		uc.metrics.ScanProcessed(string(in.Direction), "rejected_subject")
		return nil, errs.Mark(accesstoken.ErrMalformedToken, errs.ErrTokenRejected)
	}

	if err := uc.checkGate(ctx, actor, in.LotID); err != nil {
		uc.metrics.ScanProcessed(string(in.Direction), "forbidden")
		return nil, err
	}

	fresh, err := uc.guard.Claim(ctx, token.IntegrityDigest(), uc.codec.Window())
	if err != nil {
		return nil, err
	}
	if !fresh {
		uc.metrics.ScanProcessed(string(in.Direction), "replayed")
		return nil, errs.ErrTokenReplayed
	}

	result := &ScanResult{Direction: in.Direction}
	switch in.Direction {
	case DirectionEntry:
		s, err := uc.sessions.OpenSession(ctx, OpenSessionInput{
			DriverID:      driverID,
			VehicleNumber: token.VehiclePlate(),
			LotID:         in.LotID,
			GateLocation:  in.Gate,
		})
		if err != nil {
			return nil, uc.unclaim(ctx, token.IntegrityDigest(), in, err)
		}
		result.Session = s
	case DirectionExit:
		closed, err := uc.sessions.CloseActiveSession(ctx, driverID, in.LotID)
		if err != nil {
			return nil, uc.unclaim(ctx, token.IntegrityDigest(), in, err)
		}
		result.Session = closed.Session
		result.BillingErr = closed.BillingErr
	}

	uc.metrics.ScanProcessed(string(in.Direction), "accepted")
	return result, nil
}

// unclaim gives the code back after a scan that changed nothing, so a retry
// sees the real outcome instead of a replay.
func (uc *scanUseCaseImpl) unclaim(ctx context.Context, digest string, in ScanInput, cause error) error {
	uc.metrics.ScanProcessed(string(in.Direction), "failed")
	if err := uc.guard.Release(context.WithoutCancel(ctx), digest); err != nil {
		slog.Warn("replay claim not released",
			"lot_id", in.LotID,
			"direction", string(in.Direction),
			"error", err.Error())
	}
	return cause
}

func (uc *scanUseCaseImpl) checkGate(ctx context.Context, actor auth.Actor, lotID uuid.UUID) error {
	var l *lot.Lot
	err := uc.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		l, err = tx.Lots().FindByID(ctx, lotID)
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrLotNotFound)
		}
		return err
	}
	if !actor.IsAdmin() && !l.IsOwnedBy(actor.ID) {
		return errs.ErrNotLotOwner
	}
	if !actor.MayOperate(lotID) {
		return errs.Wrapf(errs.ErrNotLotOwner, "gate device is not scoped to lot %s", lotID)
	}
	return nil
}
