package commands

import (
	"context"
	"errors"
	"log/slog"

	"parkpass/internal/domain/lot"
	"parkpass/internal/infra"
	"parkpass/internal/pkg/clock"
	"parkpass/internal/pkg/errs"
	"parkpass/internal/usecase/shared"

	"github.com/google/uuid"
)

const DefaultCASAttempts = 5

// CapacityLedger is the only writer of a lot's available spaces.
type CapacityLedger struct {
	policy      lot.CapacityPolicy
	casAttempts int
	clock       clock.Clock
	metrics     shared.Metrics
}

func NewCapacityLedger(policy lot.CapacityPolicy, casAttempts int, clk clock.Clock, metrics shared.Metrics) *CapacityLedger {
	if casAttempts <= 0 {
		casAttempts = DefaultCASAttempts
	}
	if metrics == nil {
		metrics = shared.NoopMetrics{}
	}
	return &CapacityLedger{
		policy:      policy,
		casAttempts: casAttempts,
		clock:       clk,
		metrics:     metrics,
	}
}

func (c *CapacityLedger) Policy() lot.CapacityPolicy {
	return c.policy
}

// Adjust applies delta (lot.DeltaEntry or lot.DeltaExit) through a version-checked swap.
// Lost races are retried inside the same transaction.
func (c *CapacityLedger) Adjust(ctx context.Context, tx shared.Tx, lotID uuid.UUID, delta int) (*lot.Lot, error) {
	var lastErr error
	for attempt := 0; attempt < c.casAttempts; attempt++ {
		updated, err := tx.Lots().CompareAndSwap(ctx, lotID, func(l *lot.Lot) error {
			return l.AdjustAvailability(delta, c.policy, c.clock.Now())
		})
		if err == nil {
			c.metrics.CapacityAdjusted("ok")
			return updated, nil
		}

		if !errs.Is(err, errs.ErrConcurrentUpdate) {
			mapped := mapLedgerError(err)
			c.metrics.CapacityAdjusted(ledgerOutcome(mapped))
			return nil, mapped
		}

		lastErr = err
		c.metrics.CASRetried()
		slog.Debug("capacity swap lost a race, retrying",
			"lot_id", lotID,
			"attempt", attempt+1)

		if ctx.Err() != nil {
			return nil, errs.Mark(ctx.Err(), errs.ErrStoreTimeout)
		}
	}

	c.metrics.CapacityAdjusted("conflict")
	slog.Warn("capacity swap retries exhausted", "lot_id", lotID, "attempts", c.casAttempts)
	return nil, errs.Mark(lastErr, errs.ErrConcurrentUpdate)
}

func mapLedgerError(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrLotNotFound)
	case errors.Is(err, lot.ErrCapacityExceeded):
		return errs.Mark(err, errs.ErrCapacityExceeded)
	case errors.Is(err, lot.ErrLotInactive):
		return errs.Mark(err, errs.ErrLotInactive)
	case errors.Is(err, lot.ErrInvalidDelta):
		return errs.Mark(err, errs.ErrDomainValidation)
	default:
		return err
	}
}

func ledgerOutcome(err error) string {
	switch {
	case errs.Is(err, errs.ErrCapacityExceeded):
		return "full"
	case errs.Is(err, errs.ErrLotInactive):
		return "inactive"
	case errs.Is(err, errs.ErrLotNotFound):
		return "not_found"
	default:
		return "error"
	}
}
