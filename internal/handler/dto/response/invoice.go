package response

import (
	"maps"
	"slices"

	"parkpass/internal/domain/invoice"
	"parkpass/internal/pkg/ptr"

	"github.com/shopspring/decimal"
)

type DailyTotalResponse struct {
	Day    string          `json:"day"`
	Amount decimal.Decimal `json:"amount"`
}

type TierResponse struct {
	MembershipType   string           `json:"membershipType"`
	HourlyRate       decimal.Decimal  `json:"hourlyRate"`
	DailyCap         decimal.Decimal  `json:"dailyCap"`
	MonthlyThreshold *decimal.Decimal `json:"monthlyThreshold,omitempty"`
}

type InvoiceResponse struct {
	ID            string               `json:"id"`
	DriverID      string               `json:"driverId"`
	Year          int                  `json:"year"`
	Month         int                  `json:"month"`
	TotalSessions int                  `json:"totalSessions"`
	TotalHours    decimal.Decimal      `json:"totalHours"`
	TotalAmount   decimal.Decimal      `json:"totalAmount"`
	AmountDue     decimal.Decimal      `json:"amountDue"`
	DailyTotals   []DailyTotalResponse `json:"dailyTotals"`
	Tier          TierResponse         `json:"tier"`
	Status        string               `json:"status"`
	DueDate       string               `json:"dueDate"`
	UpdatedAt     int64                `json:"updatedAt"`
}

func FromInvoice(inv *invoice.Invoice) *InvoiceResponse {
	totals := inv.DailyTotals()
	days := slices.Sorted(maps.Keys(totals))
	daily := make([]DailyTotalResponse, 0, len(days))
	for _, d := range days {
		daily = append(daily, DailyTotalResponse{Day: d, Amount: totals[d]})
	}

	tier := inv.Tier()
	tierRes := TierResponse{
		MembershipType: string(tier.MembershipType()),
		HourlyRate:     tier.HourlyRate(),
		DailyCap:       tier.DailyCap(),
	}
	if threshold, ok := tier.MonthlyUnlimitedThreshold(); ok {
		tierRes.MonthlyThreshold = ptr.To(threshold)
	}

	return &InvoiceResponse{
		ID:            inv.ID().String(),
		DriverID:      inv.DriverID().String(),
		Year:          inv.Period().Year,
		Month:         int(inv.Period().Month),
		TotalSessions: inv.TotalSessions(),
		TotalHours:    inv.TotalHours(),
		TotalAmount:   inv.TotalAmount(),
		AmountDue:     inv.AmountDue(),
		DailyTotals:   daily,
		Tier:          tierRes,
		Status:        string(inv.Status()),
		DueDate:       inv.DueDate().Format("2006-01-02"),
		UpdatedAt:     inv.UpdatedAt().Unix(),
	}
}
