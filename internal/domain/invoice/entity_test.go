//go:build unit

package invoice_test

import (
	"testing"
	"time"

	"parkpass/internal/domain/invoice"
	"parkpass/internal/domain/pricing"
	"parkpass/internal/domain/session"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	now    = time.Date(2026, 4, 10, 18, 0, 0, 0, time.UTC)
	period = invoice.Period{Year: 2026, Month: time.April}
)

func completed(t *testing.T, driverID uuid.UUID, entry time.Time, d time.Duration) *session.Session {
	t.Helper()
	s, err := session.Open(driverID, "D1", "ABC-123", uuid.New(), "Gate A", entry)
	require.NoError(t, err)
	require.NoError(t, s.Complete(entry.Add(d)))
	return s
}

func newInvoice(t *testing.T, driverID uuid.UUID) *invoice.Invoice {
	t.Helper()
	inv, err := invoice.New(driverID, period, pricing.LotTier(decimal.NewFromInt(5), decimal.Zero), 5, time.UTC, now)
	require.NoError(t, err)
	return inv
}

func TestInvoice_Fold(t *testing.T) {
	driverID := uuid.New()
	tier := pricing.LotTier(decimal.NewFromInt(5), decimal.Zero)

	t.Run("40 minutes at $5", func(t *testing.T) {
		inv := newInvoice(t, driverID)
		s := completed(t, driverID, time.Date(2026, 4, 10, 9, 0, 0, 0, time.UTC), 40*time.Minute)

		changed, err := inv.Fold(s, tier, time.UTC, now)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, 1, inv.TotalSessions())
		assert.Equal(t, "3.75", inv.TotalAmount().StringFixed(2))
		assert.Equal(t, "3.75", inv.AmountDue().StringFixed(2))
		assert.Equal(t, "0.75", inv.TotalHours().String())
		assert.Equal(t, []uuid.UUID{s.ID()}, inv.SessionIDs())
	})

	t.Run("folding twice is idempotent", func(t *testing.T) {
		inv := newInvoice(t, driverID)
		s := completed(t, driverID, time.Date(2026, 4, 10, 9, 0, 0, 0, time.UTC), 61*time.Minute)

		_, err := inv.Fold(s, tier, time.UTC, now)
		require.NoError(t, err)
		amount, sessions := inv.TotalAmount(), inv.TotalSessions()

		changed, err := inv.Fold(s, tier, time.UTC, now)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.True(t, amount.Equal(inv.TotalAmount()))
		assert.Equal(t, sessions, inv.TotalSessions())
	})

	t.Run("rejects foreign, active and out of period sessions", func(t *testing.T) {
		inv := newInvoice(t, driverID)

		_, err := inv.Fold(completed(t, uuid.New(), now.Add(-time.Hour), time.Minute), tier, time.UTC, now)
		assert.ErrorIs(t, err, invoice.ErrDriverMismatch)

		_, err = inv.Fold(completed(t, driverID, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), time.Minute), tier, time.UTC, now)
		assert.ErrorIs(t, err, invoice.ErrPeriodMismatch)

		active, err := session.Open(driverID, "", "ABC", uuid.New(), "", now)
		require.NoError(t, err)
		_, err = inv.Fold(active, tier, time.UTC, now)
		assert.ErrorIs(t, err, invoice.ErrSessionNotComplete)
	})

	t.Run("sessions are charged at the invoice's tier only", func(t *testing.T) {
		inv := newInvoice(t, driverID)
		_, err := inv.Fold(completed(t, driverID, now.Add(-3*time.Hour), time.Hour), pricing.LotTier(decimal.NewFromInt(10), decimal.Zero), time.UTC, now)
		assert.ErrorIs(t, err, invoice.ErrTierMismatch)
		assert.Equal(t, 0, inv.TotalSessions())
	})

	t.Run("paid invoices accept no new sessions", func(t *testing.T) {
		inv := newInvoice(t, driverID)
		require.NoError(t, inv.MarkPaid(now))
		_, err := inv.Fold(completed(t, driverID, now.Add(-2*time.Hour), time.Hour), tier, time.UTC, now)
		assert.ErrorIs(t, err, invoice.ErrAlreadyPaid)
	})
}

func TestInvoice_AmountDueMatchesMonthlyBill(t *testing.T) {
	driverID := uuid.New()
	threshold := decimal.NewFromInt(40)
	tier, err := pricing.NewTier(pricing.MembershipPremium, decimal.NewFromInt(4), decimal.NewFromInt(15), &threshold)
	require.NoError(t, err)

	var sessions []*session.Session
	for day := 1; day <= 6; day++ {
		entry := time.Date(2026, 4, day, 8, 0, 0, 0, time.UTC)
		sessions = append(sessions,
			completed(t, driverID, entry, time.Duration(day)*time.Hour),
			completed(t, driverID, entry.Add(10*time.Hour), 20*time.Minute),
		)
	}

	inv, err := invoice.New(driverID, period, tier, 5, time.UTC, now)
	require.NoError(t, err)
	for _, s := range sessions {
		_, err := inv.Fold(s, tier, time.UTC, now)
		require.NoError(t, err)
	}

	bill := pricing.MonthlyBill(sessions, tier, time.UTC)
	assert.True(t, bill.AmountDue.Equal(inv.AmountDue()), "fold %s batch %s", inv.AmountDue(), bill.AmountDue)
	assert.True(t, bill.Uncapped.Equal(inv.TotalAmount()))
	assert.Equal(t, "40.00", inv.AmountDue().StringFixed(2))
	assert.True(t, inv.AmountDue().LessThan(inv.TotalAmount()))
}

func TestPeriod(t *testing.T) {
	t.Run("due date is the 5th of next month", func(t *testing.T) {
		due := invoice.Period{Year: 2026, Month: time.December}.DueDate(5, time.UTC)
		assert.Equal(t, time.Date(2027, time.January, 5, 0, 0, 0, 0, time.UTC), due)
	})

	t.Run("invalid month", func(t *testing.T) {
		_, err := invoice.NewPeriod(2026, 13)
		assert.ErrorIs(t, err, invoice.ErrInvalidPeriod)
	})

	t.Run("period of a local timestamp", func(t *testing.T) {
		loc := time.FixedZone("UTC+7", 7*60*60)
		p := invoice.PeriodOf(time.Date(2026, 4, 30, 20, 0, 0, 0, time.UTC), loc)
		assert.Equal(t, invoice.Period{Year: 2026, Month: time.May}, p)
		assert.Equal(t, "2026-05", p.String())
	})
}
