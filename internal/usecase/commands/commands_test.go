//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"parkpass/internal/domain/accesstoken"
	"parkpass/internal/domain/auth"
	"parkpass/internal/domain/driver"
	"parkpass/internal/domain/invoice"
	"parkpass/internal/domain/lot"
	"parkpass/internal/domain/pricing"
	"parkpass/internal/infra/memstore"
	"parkpass/internal/infra/replay"
	"parkpass/internal/pkg/clock"
	"parkpass/internal/pkg/errs"
	"parkpass/internal/usecase/commands"
	"parkpass/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

var start = time.Date(2026, 4, 10, 9, 0, 0, 0, time.UTC)

type CommandsTestSuite struct {
	suite.Suite
	ctx      context.Context
	store    *memstore.Store
	clock    *clock.MockClock
	codec    *accesstoken.Codec
	ledger   *commands.CapacityLedger
	billing  commands.BillingCommands
	sessions commands.SessionCommands
	lots     commands.LotCommands
	scans    commands.ScanCommands
	tokens   commands.TokenCommands
	operator auth.Actor
}

func (s *CommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memstore.New(time.Second)
	s.clock = clock.NewMockClock(start)
	s.codec = accesstoken.NewCodec("PARKPASS", 2*time.Minute)
	s.operator = auth.Actor{ID: uuid.New(), Role: auth.RoleOperator}
	s.build(lot.PolicyReject)
}

func (s *CommandsTestSuite) build(policy lot.CapacityPolicy) {
	uow := memstore.NewUoW(s.store)
	retry := shared.RetryPolicy{MaxRetries: 5, Base: time.Millisecond}
	s.ledger = commands.NewCapacityLedger(policy, 0, s.clock, shared.NoopMetrics{})
	s.billing = commands.NewBillingUseCase(uow, commands.BillingConfig{Location: time.UTC, DueDay: 5, Retry: retry}, s.clock, nil)
	s.sessions = commands.NewSessionUseCase(uow, s.ledger, s.billing, nil, retry, s.clock)
	s.lots = commands.NewLotUseCase(uow, nil, retry, s.clock)
	s.tokens = commands.NewTokenUseCase(s.codec, s.clock)
	s.scans = commands.NewScanUseCase(s.codec, replay.NewMemoryGuard(s.clock), uow, s.sessions, s.clock, nil)
}

func TestCommandsSuite(t *testing.T) {
	suite.Run(t, new(CommandsTestSuite))
}

func (s *CommandsTestSuite) createLot(total int, rate int64) *lot.Lot {
	l, err := s.lots.CreateLot(s.ctx, s.operator, commands.CreateLotInput{
		Name:        "Riverside",
		Location:    "1 River Rd",
		TotalSpaces: total,
		HourlyRate:  decimal.NewFromInt(rate),
		DailyCap:    decimal.Zero,
	})
	s.Require().NoError(err)
	return l
}

func (s *CommandsTestSuite) available(lotID uuid.UUID) int {
	var n int
	err := s.store.WithinReadOnly(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		l, err := tx.Lots().FindByID(ctx, lotID)
		if err != nil {
			return err
		}
		n = l.AvailableSpaces()
		return nil
	})
	s.Require().NoError(err)
	return n
}

func (s *CommandsTestSuite) scan(driverID uuid.UUID, lotID uuid.UUID, dir commands.Direction) (*commands.ScanResult, error) {
	minted, err := s.tokens.Mint(s.ctx, driverID, "51F-123.45")
	s.Require().NoError(err)
	return s.scans.Scan(s.ctx, s.operator, commands.ScanInput{
		RawToken:  minted.Token,
		LotID:     lotID,
		Gate:      "North",
		Direction: dir,
	})
}

func (s *CommandsTestSuite) TestEntryExitScenario() {
	l := s.createLot(10, 5)
	driverID := uuid.New()

	entered, err := s.scan(driverID, l.ID(), commands.DirectionEntry)
	s.Require().NoError(err)
	s.True(entered.Session.IsActive())
	s.Equal(9, s.available(l.ID()))

	s.clock.Advance(40 * time.Minute)
	exited, err := s.scan(driverID, l.ID(), commands.DirectionExit)
	s.Require().NoError(err)
	s.NoError(exited.BillingErr)
	s.True(exited.Session.IsCompleted())
	s.Equal(10, s.available(l.ID()))

	var inv *invoice.Invoice
	err = s.store.WithinReadOnly(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		inv, err = tx.Invoices().Find(ctx, driverID, invoice.Period{Year: 2026, Month: time.April})
		return err
	})
	s.Require().NoError(err)
	s.Equal("3.75", inv.TotalAmount().StringFixed(2))
	s.Equal("3.75", inv.AmountDue().StringFixed(2))
	s.Equal(1, inv.TotalSessions())
	s.Equal(time.Date(2026, 5, 5, 0, 0, 0, 0, time.UTC), inv.DueDate())
}

func (s *CommandsTestSuite) TestOpenSession_DuplicateActive() {
	l := s.createLot(5, 5)
	driverID := uuid.New()

	_, err := s.sessions.OpenSession(s.ctx, commands.OpenSessionInput{DriverID: driverID, VehicleNumber: "A1", LotID: l.ID()})
	s.Require().NoError(err)

	_, err = s.sessions.OpenSession(s.ctx, commands.OpenSessionInput{DriverID: driverID, VehicleNumber: "A1", LotID: l.ID()})
	s.True(errs.Is(err, errs.ErrDuplicateActiveSession), "got %v", err)
	s.Equal(4, s.available(l.ID()))
}

func (s *CommandsTestSuite) TestOpenSession_FullLotRejected() {
	l := s.createLot(1, 5)

	_, err := s.sessions.OpenSession(s.ctx, commands.OpenSessionInput{DriverID: uuid.New(), VehicleNumber: "A1", LotID: l.ID()})
	s.Require().NoError(err)

	_, err = s.sessions.OpenSession(s.ctx, commands.OpenSessionInput{DriverID: uuid.New(), VehicleNumber: "B2", LotID: l.ID()})
	s.True(errs.Is(err, errs.ErrCapacityExceeded), "got %v", err)
	s.Equal(0, s.available(l.ID()))
}

func (s *CommandsTestSuite) TestOpenSession_FullLotClamped() {
	s.build(lot.PolicyClamp)
	l := s.createLot(1, 5)

	for range 2 {
		_, err := s.sessions.OpenSession(s.ctx, commands.OpenSessionInput{DriverID: uuid.New(), VehicleNumber: "A1", LotID: l.ID()})
		s.Require().NoError(err)
	}
	s.Equal(0, s.available(l.ID()))
}

func (s *CommandsTestSuite) TestOpenSession_Errors() {
	_, err := s.sessions.OpenSession(s.ctx, commands.OpenSessionInput{DriverID: uuid.New(), VehicleNumber: "A1", LotID: uuid.New()})
	s.True(errs.Is(err, errs.ErrLotNotFound), "got %v", err)

	l := s.createLot(3, 5)
	_, err = s.lots.ChangeStatus(s.ctx, s.operator, l.ID(), lot.StatusInactive)
	s.Require().NoError(err)

	_, err = s.sessions.OpenSession(s.ctx, commands.OpenSessionInput{DriverID: uuid.New(), VehicleNumber: "A1", LotID: l.ID()})
	s.True(errs.Is(err, errs.ErrLotInactive), "got %v", err)
	s.Equal(3, s.available(l.ID()))
}

func (s *CommandsTestSuite) TestCloseSession_Twice() {
	l := s.createLot(2, 4)
	opened, err := s.sessions.OpenSession(s.ctx, commands.OpenSessionInput{DriverID: uuid.New(), VehicleNumber: "A1", LotID: l.ID()})
	s.Require().NoError(err)

	s.clock.Advance(61 * time.Minute)
	closed, err := s.sessions.CloseSession(s.ctx, opened.ID())
	s.Require().NoError(err)
	s.NotNil(closed.Session.ExitTime())

	_, err = s.sessions.CloseSession(s.ctx, opened.ID())
	s.True(errs.Is(err, errs.ErrAlreadyCompleted), "got %v", err)
	s.Equal(2, s.available(l.ID()))

	_, err = s.sessions.CloseSession(s.ctx, uuid.New())
	s.True(errs.Is(err, errs.ErrSessionNotFound), "got %v", err)
}

func (s *CommandsTestSuite) TestConcurrentEntriesKeepCapacityInvariant() {
	l := s.createLot(5, 5)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.sessions.OpenSession(s.ctx, commands.OpenSessionInput{DriverID: uuid.New(), VehicleNumber: "X", LotID: l.ID()})
			if err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	s.LessOrEqual(accepted, 5)
	s.Equal(5-accepted, s.available(l.ID()))
	s.GreaterOrEqual(s.available(l.ID()), 0)
}

func (s *CommandsTestSuite) TestScan_Rejections() {
	l := s.createLot(5, 5)
	driverID := uuid.New()

	s.Run("expired token", func() {
		minted, err := s.tokens.Mint(s.ctx, driverID, "ABC")
		s.Require().NoError(err)
		s.clock.Advance(121 * time.Second)
		_, err = s.scans.Scan(s.ctx, s.operator, commands.ScanInput{RawToken: minted.Token, LotID: l.ID(), Direction: commands.DirectionEntry})
		s.True(errs.Is(err, errs.ErrTokenRejected))
		s.ErrorIs(err, accesstoken.ErrExpired)
	})

	s.Run("replayed token", func() {
		minted, err := s.tokens.Mint(s.ctx, driverID, "ABC")
		s.Require().NoError(err)
		in := commands.ScanInput{RawToken: minted.Token, LotID: l.ID(), Direction: commands.DirectionEntry}
		_, err = s.scans.Scan(s.ctx, s.operator, in)
		s.Require().NoError(err)
		_, err = s.scans.Scan(s.ctx, s.operator, in)
		s.True(errs.Is(err, errs.ErrTokenReplayed))
	})

	s.Run("gate owned by another operator", func() {
		minted, err := s.tokens.Mint(s.ctx, uuid.New(), "ABC")
		s.Require().NoError(err)
		other := auth.Actor{ID: uuid.New(), Role: auth.RoleOperator}
		_, err = s.scans.Scan(s.ctx, other, commands.ScanInput{RawToken: minted.Token, LotID: l.ID(), Direction: commands.DirectionEntry})
		s.True(errs.Is(err, errs.ErrNotLotOwner))
	})

	s.Run("gate device scoped to another lot", func() {
		minted, err := s.tokens.Mint(s.ctx, uuid.New(), "ABC")
		s.Require().NoError(err)
		device := auth.Actor{ID: s.operator.ID, Role: auth.RoleOperator, Lots: []uuid.UUID{uuid.New()}}
		_, err = s.scans.Scan(s.ctx, device, commands.ScanInput{RawToken: minted.Token, LotID: l.ID(), Direction: commands.DirectionEntry})
		s.True(errs.Is(err, errs.ErrNotLotOwner))

		device.Lots = append(device.Lots, l.ID())
		_, err = s.scans.Scan(s.ctx, device, commands.ScanInput{RawToken: minted.Token, LotID: l.ID(), Direction: commands.DirectionEntry})
		s.NoError(err)
	})

	s.Run("exit without an active session", func() {
		_, err := s.scan(uuid.New(), l.ID(), commands.DirectionExit)
		s.True(errs.Is(err, errs.ErrSessionNotFound))
	})
}

func (s *CommandsTestSuite) TestFoldSession_Idempotent() {
	l := s.createLot(5, 4)
	driverID := uuid.New()
	opened, err := s.sessions.OpenSession(s.ctx, commands.OpenSessionInput{DriverID: driverID, VehicleNumber: "A1", LotID: l.ID()})
	s.Require().NoError(err)
	s.clock.Advance(61 * time.Minute)
	_, err = s.sessions.CloseSession(s.ctx, opened.ID())
	s.Require().NoError(err)

	again, err := s.billing.FoldSession(s.ctx, opened.ID())
	s.Require().NoError(err)
	s.Equal(1, again.TotalSessions())
	s.Equal("5.00", again.TotalAmount().StringFixed(2))
}

func (s *CommandsTestSuite) TestFoldSession_UsesMembershipTier() {
	threshold := decimal.NewFromInt(100)
	tier, err := pricing.NewTier(pricing.MembershipPremium, decimal.NewFromInt(2), decimal.NewFromInt(10), &threshold)
	s.Require().NoError(err)
	s.store.PutTier(tier)
	driverID := uuid.New()
	s.store.PutDriver(driver.Reconstruct(driverID, "Mai", pricing.MembershipPremium))

	l := s.createLot(5, 9)
	opened, err := s.sessions.OpenSession(s.ctx, commands.OpenSessionInput{DriverID: driverID, VehicleNumber: "A1", LotID: l.ID()})
	s.Require().NoError(err)
	s.Equal("Mai", opened.DriverName())

	s.clock.Advance(8 * time.Hour)
	closed, err := s.sessions.CloseSession(s.ctx, opened.ID())
	s.Require().NoError(err)
	s.NoError(closed.BillingErr)

	inv, err := s.billing.FoldSession(s.ctx, opened.ID())
	s.Require().NoError(err)
	s.Equal("16.00", inv.TotalAmount().StringFixed(2))
	s.Equal("10.00", inv.AmountDue().StringFixed(2))
	s.Equal(pricing.MembershipPremium, inv.Tier().MembershipType())
}

func (s *CommandsTestSuite) TestReconcileMonth_FoldsMissingSessions() {
	l := s.createLot(5, 5)
	driverID := uuid.New()
	opened, err := s.sessions.OpenSession(s.ctx, commands.OpenSessionInput{DriverID: driverID, VehicleNumber: "A1", LotID: l.ID()})
	s.Require().NoError(err)

	// Close without billing, as if the fold had failed after the close committed.
	s.clock.Advance(30 * time.Minute)
	err = s.store.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		sess, err := tx.Sessions().FindByID(ctx, opened.ID())
		if err != nil {
			return err
		}
		if err := sess.Complete(s.clock.Now()); err != nil {
			return err
		}
		return tx.Sessions().Update(ctx, sess)
	})
	s.Require().NoError(err)

	report, err := s.billing.ReconcileMonth(s.ctx, invoice.Period{Year: 2026, Month: time.April})
	s.Require().NoError(err)
	s.Equal(1, report.Scanned)
	s.Equal(1, report.Folded)
	s.Equal(0, report.Drifting)

	report, err = s.billing.ReconcileMonth(s.ctx, invoice.Period{Year: 2026, Month: time.April})
	s.Require().NoError(err)
	s.Equal(0, report.Folded)
}

func (s *CommandsTestSuite) TestReconcileAvailability() {
	l := s.createLot(4, 5)
	_, err := s.sessions.OpenSession(s.ctx, commands.OpenSessionInput{DriverID: uuid.New(), VehicleNumber: "A1", LotID: l.ID()})
	s.Require().NoError(err)

	// Drift the counter behind the ledger's back.
	err = s.store.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Lots().CompareAndSwap(ctx, l.ID(), func(l *lot.Lot) error {
			l.Reconcile(4, s.clock.Now())
			return nil
		})
		return err
	})
	s.Require().NoError(err)
	s.Equal(0, s.available(l.ID()))

	n, err := s.lots.ReconcileAvailability(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, n)
	s.Equal(3, s.available(l.ID()))
}

func (s *CommandsTestSuite) TestChangeStatus_NotOwner() {
	l := s.createLot(4, 5)
	_, err := s.lots.ChangeStatus(s.ctx, auth.Actor{ID: uuid.New(), Role: auth.RoleOperator}, l.ID(), lot.StatusInactive)
	s.True(errs.Is(err, errs.ErrNotLotOwner))

	_, err = s.lots.ChangeStatus(s.ctx, auth.Actor{ID: uuid.New(), Role: auth.RoleAdmin}, l.ID(), lot.StatusInactive)
	s.NoError(err)
}

func (s *CommandsTestSuite) TestMint_Validation() {
	_, err := s.tokens.Mint(s.ctx, uuid.New(), "  ")
	s.True(errs.Is(err, errs.ErrDomainValidation))

	minted, err := s.tokens.Mint(s.ctx, uuid.New(), "ABC")
	s.Require().NoError(err)
	s.Equal(start.Add(2*time.Minute), minted.ExpiresAt)
}

func (s *CommandsTestSuite) TestScan_FailedEntryLeavesCodeUsable() {
	l := s.createLot(1, 5)
	occupant := uuid.New()
	_, err := s.scan(occupant, l.ID(), commands.DirectionEntry)
	s.Require().NoError(err)

	minted, err := s.tokens.Mint(s.ctx, uuid.New(), "30A-999.01")
	s.Require().NoError(err)
	in := commands.ScanInput{RawToken: minted.Token, LotID: l.ID(), Gate: "North", Direction: commands.DirectionEntry}

	_, err = s.scans.Scan(s.ctx, s.operator, in)
	s.True(errs.Is(err, errs.ErrCapacityExceeded), "got %v", err)

	s.clock.Advance(time.Minute)
	_, err = s.scan(occupant, l.ID(), commands.DirectionExit)
	s.Require().NoError(err)

	entered, err := s.scans.Scan(s.ctx, s.operator, in)
	s.Require().NoError(err)
	s.True(entered.Session.IsActive())

	_, err = s.scans.Scan(s.ctx, s.operator, in)
	s.True(errs.Is(err, errs.ErrTokenReplayed), "got %v", err)
}

func (s *CommandsTestSuite) TestReconcileAvailability_EntryDuringCount() {
	l := s.createLot(2, 5)

	uow := &interleavingUoW{UnitOfWork: memstore.NewUoW(s.store)}
	uow.afterCount = func() {
		_, err := s.sessions.OpenSession(s.ctx, commands.OpenSessionInput{DriverID: uuid.New(), VehicleNumber: "A1", LotID: l.ID()})
		s.Require().NoError(err)
	}
	lots := commands.NewLotUseCase(uow, nil, shared.RetryPolicy{MaxRetries: 3, Base: time.Millisecond}, s.clock)

	_, err := lots.ReconcileAvailability(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, s.available(l.ID()))
}

// interleavingUoW runs afterCount once, right after the first active-session count.
type interleavingUoW struct {
	shared.UnitOfWork
	afterCount func()
}

func (u *interleavingUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.UnitOfWork.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return fn(ctx, interleavingTx{Tx: tx, uow: u})
	})
}

type interleavingTx struct {
	shared.Tx
	uow *interleavingUoW
}

func (t interleavingTx) Sessions() shared.SessionRepository {
	return interleavingSessions{SessionRepository: t.Tx.Sessions(), uow: t.uow}
}

type interleavingSessions struct {
	shared.SessionRepository
	uow *interleavingUoW
}

func (r interleavingSessions) CountActiveByLot(ctx context.Context, lotID uuid.UUID) (int, error) {
	n, err := r.SessionRepository.CountActiveByLot(ctx, lotID)
	if hook := r.uow.afterCount; hook != nil {
		r.uow.afterCount = nil
		hook()
	}
	return n, err
}

func (s *CommandsTestSuite) TestMint_SameMillisecondSameCode() {
	driverID := uuid.New()
	first, err := s.tokens.Mint(s.ctx, driverID, "51F-123.45")
	s.Require().NoError(err)
	second, err := s.tokens.Mint(s.ctx, driverID, "51F-123.45")
	s.Require().NoError(err)
	s.Equal(first.Token, second.Token)

	s.clock.Advance(time.Millisecond)
	third, err := s.tokens.Mint(s.ctx, driverID, "51F-123.45")
	s.Require().NoError(err)
	s.NotEqual(first.Token, third.Token)
}

func (s *CommandsTestSuite) TestReconcileMonth_TwoLotsNoDrift() {
	cheap := s.createLot(5, 5)
	dear := s.createLot(5, 10)
	driverID := uuid.New()

	for _, l := range []*lot.Lot{cheap, dear} {
		opened, err := s.sessions.OpenSession(s.ctx, commands.OpenSessionInput{DriverID: driverID, VehicleNumber: "A1", LotID: l.ID()})
		s.Require().NoError(err)
		s.clock.Advance(time.Hour)
		closed, err := s.sessions.CloseSession(s.ctx, opened.ID())
		s.Require().NoError(err)
		s.Require().NoError(closed.BillingErr)
	}

	report, err := s.billing.ReconcileMonth(s.ctx, invoice.Period{Year: 2026, Month: time.April})
	s.Require().NoError(err)
	s.Equal(2, report.Scanned)
	s.Equal(0, report.Folded)
	s.Equal(0, report.Drifting)

	var inv *invoice.Invoice
	err = s.store.WithinReadOnly(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		inv, err = tx.Invoices().Find(ctx, driverID, invoice.Period{Year: 2026, Month: time.April})
		return err
	})
	s.Require().NoError(err)
	s.Equal(2, inv.TotalSessions())
	s.Equal("10.00", inv.AmountDue().StringFixed(2))
	s.True(inv.Tier().HourlyRate().Equal(decimal.NewFromInt(5)))
}
