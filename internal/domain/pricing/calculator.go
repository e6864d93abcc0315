package pricing

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

const (
	BillingIncrementMinutes = 15
	DayKeyLayout            = "2006-01-02"
)

var minutesPerHour = decimal.NewFromInt(60)

// Billable is the slice of a session the calculator needs.
type Billable interface {
	EntryTime() time.Time
	ExitTime() *time.Time
}

// BillableHours rounds the duration up to the next 15-minute increment.
// Missing exit or non-positive duration yields zero.
func BillableHours(entry time.Time, exit *time.Time) decimal.Decimal {
	if exit == nil {
		return decimal.Zero
	}
	d := exit.Sub(entry)
	if d <= 0 {
		return decimal.Zero
	}
	minutes := int64(math.Ceil(d.Minutes()))
	rounded := ((minutes + BillingIncrementMinutes - 1) / BillingIncrementMinutes) * BillingIncrementMinutes
	return decimal.NewFromInt(rounded).Div(minutesPerHour)
}

// SessionCost applies no cap; caps belong to the daily and monthly aggregation.
func SessionCost(entry time.Time, exit *time.Time, tier Tier) decimal.Decimal {
	hours := BillableHours(entry, exit)
	if hours.IsZero() {
		return decimal.Zero
	}
	return hours.Mul(tier.HourlyRate()).Round(2)
}

func DayKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(DayKeyLayout)
}

// CappedTotal applies the daily cap to each subtotal and then the monthly threshold to the sum.
func CappedTotal(daily map[string]decimal.Decimal, tier Tier) decimal.Decimal {
	keys := make([]string, 0, len(daily))
	for k := range daily {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	total := decimal.Zero
	for _, k := range keys {
		total = total.Add(tier.CapDay(daily[k]))
	}
	return tier.CapMonth(total).Round(2)
}

type Bill struct {
	DailyTotals map[string]decimal.Decimal
	Uncapped    decimal.Decimal
	AmountDue   decimal.Decimal
	Hours       decimal.Decimal
	Sessions    int
}

// MonthlyBill recomputes a month from scratch. Sessions without an exit are skipped.
func MonthlyBill[S Billable](sessions []S, tier Tier, loc *time.Location) Bill {
	bill := Bill{
		DailyTotals: make(map[string]decimal.Decimal),
		Uncapped:    decimal.Zero,
		Hours:       decimal.Zero,
	}
	for _, s := range sessions {
		if s.ExitTime() == nil {
			continue
		}
		cost := SessionCost(s.EntryTime(), s.ExitTime(), tier)
		day := DayKey(s.EntryTime(), loc)
		bill.DailyTotals[day] = bill.DailyTotals[day].Add(cost)
		bill.Uncapped = bill.Uncapped.Add(cost)
		bill.Hours = bill.Hours.Add(BillableHours(s.EntryTime(), s.ExitTime()))
		bill.Sessions++
	}
	bill.AmountDue = CappedTotal(bill.DailyTotals, tier)
	return bill
}
