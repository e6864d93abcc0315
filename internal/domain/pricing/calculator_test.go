//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"parkpass/internal/domain/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var entry = time.Date(2026, 4, 10, 9, 0, 0, 0, time.UTC)

type stay struct {
	in  time.Time
	out *time.Time
}

func (s stay) EntryTime() time.Time { return s.in }
func (s stay) ExitTime() *time.Time { return s.out }

func exitAfter(in time.Time, d time.Duration) *time.Time {
	t := in.Add(d)
	return &t
}

func tier(t *testing.T, rate, dailyCap int64, threshold *int64) pricing.Tier {
	t.Helper()
	var th *decimal.Decimal
	if threshold != nil {
		v := decimal.NewFromInt(*threshold)
		th = &v
	}
	tr, err := pricing.NewTier(pricing.MembershipStandard, decimal.NewFromInt(rate), decimal.NewFromInt(dailyCap), th)
	require.NoError(t, err)
	return tr
}

func TestBillableHours(t *testing.T) {
	cases := []struct {
		name string
		exit *time.Time
		want string
	}{
		{name: "no exit", exit: nil, want: "0"},
		{name: "zero minutes", exit: exitAfter(entry, 0), want: "0"},
		{name: "negative duration", exit: exitAfter(entry, -5*time.Minute), want: "0"},
		{name: "one minute", exit: exitAfter(entry, time.Minute), want: "0.25"},
		{name: "15 minutes", exit: exitAfter(entry, 15*time.Minute), want: "0.25"},
		{name: "16 minutes", exit: exitAfter(entry, 16*time.Minute), want: "0.5"},
		{name: "40 minutes", exit: exitAfter(entry, 40*time.Minute), want: "0.75"},
		{name: "61 minutes", exit: exitAfter(entry, 61*time.Minute), want: "1.25"},
		{name: "partial minute rounds up", exit: exitAfter(entry, 60*time.Minute+10*time.Second), want: "1.25"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := pricing.BillableHours(entry, tc.exit)
			assert.True(t, got.Equal(decimal.RequireFromString(tc.want)), "got %s", got)
		})
	}
}

func TestSessionCost(t *testing.T) {
	t.Run("61 minutes at $4 is $5.00", func(t *testing.T) {
		got := pricing.SessionCost(entry, exitAfter(entry, 61*time.Minute), tier(t, 4, 0, nil))
		assert.Equal(t, "5.00", got.StringFixed(2))
	})

	t.Run("15 minutes is a quarter of the rate", func(t *testing.T) {
		got := pricing.SessionCost(entry, exitAfter(entry, 15*time.Minute), tier(t, 6, 0, nil))
		assert.Equal(t, "1.50", got.StringFixed(2))
	})

	t.Run("40 minutes at $5 is $3.75", func(t *testing.T) {
		got := pricing.SessionCost(entry, exitAfter(entry, 40*time.Minute), tier(t, 5, 0, nil))
		assert.Equal(t, "3.75", got.StringFixed(2))
	})

	t.Run("zero minutes is free", func(t *testing.T) {
		got := pricing.SessionCost(entry, exitAfter(entry, 0), tier(t, 5, 0, nil))
		assert.True(t, got.IsZero())
	})

	t.Run("no cap at the session level", func(t *testing.T) {
		got := pricing.SessionCost(entry, exitAfter(entry, 10*time.Hour), tier(t, 5, 20, nil))
		assert.Equal(t, "50.00", got.StringFixed(2))
	})
}

func TestMonthlyBill(t *testing.T) {
	day2 := entry.AddDate(0, 0, 1)

	sessions := []stay{
		{in: entry, out: exitAfter(entry, 3*time.Hour)},                    // 15
		{in: entry.Add(5 * time.Hour), out: exitAfter(entry, 7*time.Hour)}, // 10
		{in: day2, out: exitAfter(day2, time.Hour)},                        // 5
		{in: day2.Add(2 * time.Hour), out: nil},
	}

	t.Run("daily cap applies per day", func(t *testing.T) {
		bill := pricing.MonthlyBill(sessions, tier(t, 5, 20, nil), time.UTC)
		assert.Equal(t, 3, bill.Sessions)
		assert.Equal(t, "30.00", bill.Uncapped.StringFixed(2))
		assert.Equal(t, "25.00", bill.AmountDue.StringFixed(2))
		assert.Equal(t, "25.00", bill.DailyTotals["2026-04-10"].StringFixed(2))
		assert.Equal(t, "6", bill.Hours.String())
	})

	t.Run("monthly threshold clamps after daily caps", func(t *testing.T) {
		threshold := int64(22)
		bill := pricing.MonthlyBill(sessions, tier(t, 5, 20, &threshold), time.UTC)
		assert.Equal(t, "22.00", bill.AmountDue.StringFixed(2))
	})

	t.Run("no caps", func(t *testing.T) {
		bill := pricing.MonthlyBill(sessions, tier(t, 5, 0, nil), time.UTC)
		assert.Equal(t, "30.00", bill.AmountDue.StringFixed(2))
	})

	t.Run("days follow the given location", func(t *testing.T) {
		loc := time.FixedZone("UTC+10", 10*60*60)
		late := time.Date(2026, 4, 10, 20, 0, 0, 0, time.UTC)
		bill := pricing.MonthlyBill([]stay{{in: late, out: exitAfter(late, time.Hour)}}, tier(t, 5, 0, nil), loc)
		_, ok := bill.DailyTotals["2026-04-11"]
		assert.True(t, ok)
	})
}

func TestNewTier(t *testing.T) {
	_, err := pricing.NewTier("", decimal.NewFromInt(1), decimal.Zero, nil)
	assert.ErrorIs(t, err, pricing.ErrEmptyMembership)

	_, err = pricing.NewTier(pricing.MembershipVIP, decimal.NewFromInt(-1), decimal.Zero, nil)
	assert.ErrorIs(t, err, pricing.ErrNegativeRate)

	lt := pricing.LotTier(decimal.NewFromInt(3), decimal.NewFromInt(12))
	assert.Equal(t, pricing.MembershipLot, lt.MembershipType())
	_, ok := lt.MonthlyUnlimitedThreshold()
	assert.False(t, ok)
}

func TestTier_Equal(t *testing.T) {
	forty := int64(40)
	fifty := int64(50)

	assert.True(t, tier(t, 4, 15, &forty).Equal(tier(t, 4, 15, &forty)))
	assert.True(t, pricing.LotTier(decimal.RequireFromString("5.00"), decimal.Zero).Equal(pricing.LotTier(decimal.NewFromInt(5), decimal.Zero)))

	assert.False(t, tier(t, 4, 15, &forty).Equal(tier(t, 4, 15, &fifty)))
	assert.False(t, tier(t, 4, 15, &forty).Equal(tier(t, 4, 15, nil)))
	assert.False(t, tier(t, 4, 15, nil).Equal(tier(t, 5, 15, nil)))
	assert.False(t, pricing.LotTier(decimal.NewFromInt(4), decimal.NewFromInt(15)).Equal(tier(t, 4, 15, nil)))
}
