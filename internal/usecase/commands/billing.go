package commands

import (
	"context"
	"log/slog"
	"time"

	"parkpass/internal/domain/invoice"
	"parkpass/internal/domain/pricing"
	"parkpass/internal/domain/session"
	"parkpass/internal/infra"
	"parkpass/internal/pkg/clock"
	"parkpass/internal/pkg/errs"
	"parkpass/internal/usecase/shared"

	"github.com/google/uuid"
)

type BillingConfig struct {
	Location *time.Location
	DueDay   int
	Retry    shared.RetryPolicy
}

type ReconcileReport struct {
	Period   invoice.Period `json:"period"`
	Scanned  int            `json:"scanned"`
	Folded   int            `json:"folded"`
	Failed   int            `json:"failed"`
	Drifting int            `json:"drifting"`
}

type BillingCommands interface {
	// FoldSession adds a completed session to its driver's invoice for the month of entry.
	FoldSession(ctx context.Context, sessionID uuid.UUID) (*invoice.Invoice, error)
	ReconcileMonth(ctx context.Context, period invoice.Period) (*ReconcileReport, error)
}

type billingUseCaseImpl struct {
	uow     shared.UnitOfWork
	cfg     BillingConfig
	clock   clock.Clock
	metrics shared.Metrics
}

func NewBillingUseCase(uow shared.UnitOfWork, cfg BillingConfig, clk clock.Clock, metrics shared.Metrics) BillingCommands {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.DueDay == 0 {
		cfg.DueDay = invoice.DefaultDueDay
	}
	if metrics == nil {
		metrics = shared.NoopMetrics{}
	}
	return &billingUseCaseImpl{uow: uow, cfg: cfg, clock: clk, metrics: metrics}
}

func (uc *billingUseCaseImpl) FoldSession(ctx context.Context, sessionID uuid.UUID) (*invoice.Invoice, error) {
	var folded *invoice.Invoice

	err := shared.Retry(ctx, uc.cfg.Retry, "fold_session", func(ctx context.Context) error {
		return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			s, err := tx.Sessions().FindByID(ctx, sessionID)
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return errs.Mark(err, errs.ErrSessionNotFound)
				}
				return err
			}

			inv, err := uc.foldInTx(ctx, tx, s)
			if err != nil {
				return err
			}
			folded = inv
			return nil
		})
	})
	if err != nil {
		if errs.Is(err, errs.ErrConcurrentUpdate) {
			uc.metrics.InvoiceFolded("conflict")
			return nil, errs.Mark(err, errs.ErrInvoiceFoldConflict)
		}
		uc.metrics.InvoiceFolded("error")
		return nil, err
	}

	uc.metrics.InvoiceFolded("ok")
	return folded, nil
}

func (uc *billingUseCaseImpl) foldInTx(ctx context.Context, tx shared.Tx, s *session.Session) (*invoice.Invoice, error) {
	if !s.IsCompleted() {
		return nil, errs.Wrap(errs.ErrDomainValidation, "session is still active")
	}

	period := invoice.PeriodOf(s.EntryTime(), uc.cfg.Location)
	inv, err := tx.Invoices().Find(ctx, s.DriverID(), period)
	switch {
	case err == nil:
	case infra.IsKind(err, infra.KindNotFound):
		// The month's tier is resolved once, when its invoice opens.
		tier, err := uc.resolveTier(ctx, tx, s)
		if err != nil {
			return nil, err
		}
		inv, err = invoice.New(s.DriverID(), period, tier, uc.cfg.DueDay, uc.cfg.Location, uc.clock.Now())
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
	default:
		return nil, err
	}

	changed, err := inv.Fold(s, inv.Tier(), uc.cfg.Location, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if !changed {
		return inv, nil
	}

	if err := tx.Invoices().Upsert(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// resolveTier prefers the driver's membership tier and falls back to the lot's own pricing.
func (uc *billingUseCaseImpl) resolveTier(ctx context.Context, tx shared.Tx, s *session.Session) (pricing.Tier, error) {
	d, err := tx.Drivers().FindByID(ctx, s.DriverID())
	switch {
	case err == nil && d.HasMembership():
		tier, terr := tx.Tiers().FindByMembership(ctx, d.MembershipType())
		if terr == nil {
			return tier, nil
		}
		if !infra.IsKind(terr, infra.KindNotFound) {
			return pricing.Tier{}, terr
		}
		slog.Warn("membership tier not configured, using lot pricing",
			"driver_id", s.DriverID(),
			"membership", d.MembershipType())
	case err != nil && !infra.IsKind(err, infra.KindNotFound):
		return pricing.Tier{}, err
	}

	l, err := tx.Lots().FindByID(ctx, s.LotID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return pricing.Tier{}, errs.Mark(err, errs.ErrTierNotFound)
		}
		return pricing.Tier{}, err
	}
	return pricing.LotTier(l.HourlyRate(), l.DailyCap()), nil
}

// ReconcileMonth folds completed sessions missing from their invoices and reports
// invoices whose amount due drifts from a from-scratch recompute.
func (uc *billingUseCaseImpl) ReconcileMonth(ctx context.Context, period invoice.Period) (*ReconcileReport, error) {
	report := &ReconcileReport{Period: period}

	var (
		sessions []*session.Session
		invoices []*invoice.Invoice
	)
	err := uc.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		sessions, err = tx.Sessions().ListCompleted(ctx, period.Start(uc.cfg.Location), period.End(uc.cfg.Location))
		if err != nil {
			return err
		}
		invoices, err = tx.Invoices().ListByPeriod(ctx, period)
		return err
	})
	if err != nil {
		return nil, err
	}

	byDriver := make(map[uuid.UUID]*invoice.Invoice, len(invoices))
	for _, inv := range invoices {
		byDriver[inv.DriverID()] = inv
	}

	sessionsByDriver := make(map[uuid.UUID][]*session.Session)
	for _, s := range sessions {
		report.Scanned++
		sessionsByDriver[s.DriverID()] = append(sessionsByDriver[s.DriverID()], s)

		if inv, ok := byDriver[s.DriverID()]; ok && inv.Contains(s.ID()) {
			continue
		}
		inv, err := uc.FoldSession(ctx, s.ID())
		if err != nil {
			report.Failed++
			slog.Error("reconcile fold failed", "session_id", s.ID(), "error", err.Error())
			continue
		}
		byDriver[s.DriverID()] = inv
		report.Folded++
	}

	for driverID, inv := range byDriver {
		bill := pricing.MonthlyBill(sessionsByDriver[driverID], inv.Tier(), uc.cfg.Location)
		if !bill.AmountDue.Equal(inv.AmountDue()) {
			report.Drifting++
			slog.Warn("invoice amount drifts from monthly recompute",
				"invoice_id", inv.ID(),
				"driver_id", driverID,
				"period", period.String(),
				"amount_due", inv.AmountDue().StringFixed(2),
				"recomputed", bill.AmountDue.StringFixed(2))
		}
	}

	slog.Info("billing reconcile finished",
		"period", period.String(),
		"scanned", report.Scanned,
		"folded", report.Folded,
		"failed", report.Failed,
		"drifting", report.Drifting)
	return report, nil
}
