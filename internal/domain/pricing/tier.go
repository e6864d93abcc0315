package pricing

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyMembership   = errors.New("membership type cannot be empty")
	ErrNegativeRate      = errors.New("hourly rate cannot be negative")
	ErrNegativeCap       = errors.New("daily cap cannot be negative")
	ErrNegativeThreshold = errors.New("monthly threshold cannot be negative")
)

type MembershipType string

const (
	MembershipStandard MembershipType = "standard"
	MembershipPremium  MembershipType = "premium"
	MembershipVIP      MembershipType = "vip"
	// Derived from the lot when a driver has no membership tier configured.
	MembershipLot MembershipType = "lot"
)

// Tier is read-only reference data. A zero DailyCap means no daily cap.
type Tier struct {
	membershipType            MembershipType
	hourlyRate                decimal.Decimal
	dailyCap                  decimal.Decimal
	monthlyUnlimitedThreshold *decimal.Decimal
}

func NewTier(
	membershipType MembershipType,
	hourlyRate, dailyCap decimal.Decimal,
	monthlyUnlimitedThreshold *decimal.Decimal,
) (Tier, error) {
	if strings.TrimSpace(string(membershipType)) == "" {
		return Tier{}, ErrEmptyMembership
	}
	if hourlyRate.IsNegative() {
		return Tier{}, ErrNegativeRate
	}
	if dailyCap.IsNegative() {
		return Tier{}, ErrNegativeCap
	}
	if monthlyUnlimitedThreshold != nil && monthlyUnlimitedThreshold.IsNegative() {
		return Tier{}, ErrNegativeThreshold
	}
	var threshold *decimal.Decimal
	if monthlyUnlimitedThreshold != nil {
		v := *monthlyUnlimitedThreshold
		threshold = &v
	}
	return Tier{
		membershipType:            membershipType,
		hourlyRate:                hourlyRate,
		dailyCap:                  dailyCap,
		monthlyUnlimitedThreshold: threshold,
	}, nil
}

// ReconstructTier skips validation for rows already persisted.
func ReconstructTier(
	membershipType MembershipType,
	hourlyRate, dailyCap decimal.Decimal,
	monthlyUnlimitedThreshold *decimal.Decimal,
) Tier {
	return Tier{
		membershipType:            membershipType,
		hourlyRate:                hourlyRate,
		dailyCap:                  dailyCap,
		monthlyUnlimitedThreshold: monthlyUnlimitedThreshold,
	}
}

// LotTier prices a session with the lot's own rate and cap.
func LotTier(hourlyRate, dailyCap decimal.Decimal) Tier {
	return Tier{
		membershipType: MembershipLot,
		hourlyRate:     hourlyRate,
		dailyCap:       dailyCap,
	}
}

func (t Tier) MembershipType() MembershipType { return t.membershipType }
func (t Tier) HourlyRate() decimal.Decimal    { return t.hourlyRate }
func (t Tier) DailyCap() decimal.Decimal      { return t.dailyCap }

func (t Tier) MonthlyUnlimitedThreshold() (decimal.Decimal, bool) {
	if t.monthlyUnlimitedThreshold == nil {
		return decimal.Zero, false
	}
	return *t.monthlyUnlimitedThreshold, true
}

// Equal compares every pricing term, not just the membership label.
func (t Tier) Equal(o Tier) bool {
	if t.membershipType != o.membershipType || !t.hourlyRate.Equal(o.hourlyRate) || !t.dailyCap.Equal(o.dailyCap) {
		return false
	}
	a, aok := t.MonthlyUnlimitedThreshold()
	b, bok := o.MonthlyUnlimitedThreshold()
	return aok == bok && a.Equal(b)
}

func (t Tier) HasDailyCap() bool {
	return t.dailyCap.IsPositive()
}

// CapDay clamps one day's subtotal to the daily cap.
func (t Tier) CapDay(amount decimal.Decimal) decimal.Decimal {
	if t.HasDailyCap() && amount.GreaterThan(t.dailyCap) {
		return t.dailyCap
	}
	return amount
}

// CapMonth clamps a month's subtotal to the unlimited threshold.
func (t Tier) CapMonth(amount decimal.Decimal) decimal.Decimal {
	if threshold, ok := t.MonthlyUnlimitedThreshold(); ok && amount.GreaterThan(threshold) {
		return threshold
	}
	return amount
}
