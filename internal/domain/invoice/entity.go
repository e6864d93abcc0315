package invoice

import (
	"errors"
	"maps"
	"slices"
	"time"

	"parkpass/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyDriver        = errors.New("driver id cannot be empty")
	ErrSessionNotComplete = errors.New("only completed sessions can be billed")
	ErrDriverMismatch     = errors.New("session belongs to another driver")
	ErrPeriodMismatch     = errors.New("session entry falls outside the invoice period")
	ErrAlreadyPaid        = errors.New("invoice is already paid")
	ErrTierMismatch       = errors.New("session priced at a tier other than the invoice's")
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

// BilledSession is what Fold reads from a completed session.
type BilledSession interface {
	ID() uuid.UUID
	DriverID() uuid.UUID
	EntryTime() time.Time
	ExitTime() *time.Time
	IsCompleted() bool
}

type Invoice struct {
	id            uuid.UUID
	driverID      uuid.UUID
	period        Period
	totalSessions int
	totalHours    decimal.Decimal
	totalAmount   decimal.Decimal
	amountDue     decimal.Decimal
	dailyTotals   map[string]decimal.Decimal
	sessionIDs    map[uuid.UUID]struct{}
	tier          pricing.Tier
	status        Status
	dueDate       time.Time
	version       int64
	createdAt     time.Time
	updatedAt     time.Time
}

// New creates the pending invoice for a driver's month. Invoices are created lazily on the first fold.
func New(driverID uuid.UUID, period Period, tier pricing.Tier, dueDay int, loc *time.Location, now time.Time) (*Invoice, error) {
	if driverID == uuid.Nil {
		return nil, ErrEmptyDriver
	}
	if _, err := NewPeriod(period.Year, int(period.Month)); err != nil {
		return nil, err
	}
	return &Invoice{
		id:          uuid.New(),
		driverID:    driverID,
		period:      period,
		totalHours:  decimal.Zero,
		totalAmount: decimal.Zero,
		amountDue:   decimal.Zero,
		dailyTotals: make(map[string]decimal.Decimal),
		sessionIDs:  make(map[uuid.UUID]struct{}),
		tier:        tier,
		status:      StatusPending,
		dueDate:     period.DueDate(dueDay, loc),
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func Reconstruct(
	id, driverID uuid.UUID,
	period Period,
	totalSessions int,
	totalHours, totalAmount, amountDue decimal.Decimal,
	dailyTotals map[string]decimal.Decimal,
	sessionIDs []uuid.UUID,
	tier pricing.Tier,
	status Status,
	dueDate time.Time,
	version int64,
	createdAt, updatedAt time.Time,
) *Invoice {
	ids := make(map[uuid.UUID]struct{}, len(sessionIDs))
	for _, sid := range sessionIDs {
		ids[sid] = struct{}{}
	}
	if dailyTotals == nil {
		dailyTotals = make(map[string]decimal.Decimal)
	}
	return &Invoice{
		id:            id,
		driverID:      driverID,
		period:        period,
		totalSessions: totalSessions,
		totalHours:    totalHours,
		totalAmount:   totalAmount,
		amountDue:     amountDue,
		dailyTotals:   dailyTotals,
		sessionIDs:    ids,
		tier:          tier,
		status:        status,
		dueDate:       dueDate,
		version:       version,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Fold adds a completed session once. Folding a session already on the invoice is a no-op
// and reports false. The tier is fixed when the invoice is created, so every session of the
// month is charged and capped the same way a from-scratch MonthlyBill would.
func (i *Invoice) Fold(s BilledSession, tier pricing.Tier, loc *time.Location, now time.Time) (bool, error) {
	if !s.IsCompleted() || s.ExitTime() == nil {
		return false, ErrSessionNotComplete
	}
	if s.DriverID() != i.driverID {
		return false, ErrDriverMismatch
	}
	if !i.period.Contains(s.EntryTime(), loc) {
		return false, ErrPeriodMismatch
	}
	if i.Contains(s.ID()) {
		return false, nil
	}
	if i.status == StatusPaid {
		return false, ErrAlreadyPaid
	}
	if !tier.Equal(i.tier) {
		return false, ErrTierMismatch
	}

	cost := pricing.SessionCost(s.EntryTime(), s.ExitTime(), tier)
	hours := pricing.BillableHours(s.EntryTime(), s.ExitTime())
	day := pricing.DayKey(s.EntryTime(), loc)

	i.sessionIDs[s.ID()] = struct{}{}
	i.totalSessions++
	i.totalHours = i.totalHours.Add(hours)
	i.totalAmount = i.totalAmount.Add(cost)
	i.dailyTotals[day] = i.dailyTotals[day].Add(cost)
	i.amountDue = pricing.CappedTotal(i.dailyTotals, i.tier)
	i.updatedAt = now
	return true, nil
}

func (i *Invoice) MarkPaid(now time.Time) error {
	if i.status == StatusPaid {
		return ErrAlreadyPaid
	}
	i.status = StatusPaid
	i.updatedAt = now
	return nil
}

func (i *Invoice) Contains(sessionID uuid.UUID) bool {
	_, ok := i.sessionIDs[sessionID]
	return ok
}

func (i *Invoice) IsOverdue(now time.Time) bool {
	return i.status == StatusPending && now.After(i.dueDate)
}

func (i *Invoice) BumpVersion() {
	i.version++
}

func (i *Invoice) ID() uuid.UUID                { return i.id }
func (i *Invoice) DriverID() uuid.UUID          { return i.driverID }
func (i *Invoice) Period() Period               { return i.period }
func (i *Invoice) TotalSessions() int           { return i.totalSessions }
func (i *Invoice) TotalHours() decimal.Decimal  { return i.totalHours }
func (i *Invoice) TotalAmount() decimal.Decimal { return i.totalAmount }
func (i *Invoice) AmountDue() decimal.Decimal   { return i.amountDue }
func (i *Invoice) Tier() pricing.Tier           { return i.tier }
func (i *Invoice) Status() Status               { return i.status }
func (i *Invoice) DueDate() time.Time           { return i.dueDate }
func (i *Invoice) Version() int64               { return i.version }
func (i *Invoice) CreatedAt() time.Time         { return i.createdAt }
func (i *Invoice) UpdatedAt() time.Time         { return i.updatedAt }

func (i *Invoice) DailyTotals() map[string]decimal.Decimal {
	return maps.Clone(i.dailyTotals)
}

// SessionIDs are returned sorted for stable persistence.
func (i *Invoice) SessionIDs() []uuid.UUID {
	ids := slices.Collect(maps.Keys(i.sessionIDs))
	slices.SortFunc(ids, func(a, b uuid.UUID) int {
		return slices.Compare(a[:], b[:])
	})
	return ids
}

func (i *Invoice) Clone() *Invoice {
	c := *i
	c.dailyTotals = maps.Clone(i.dailyTotals)
	c.sessionIDs = maps.Clone(i.sessionIDs)
	return &c
}
