package converter

import (
	"encoding/json"
	"fmt"
	"time"

	"parkpass/internal/domain/invoice"
	"parkpass/internal/domain/pricing"
	sqlc "parkpass/internal/infra/sqlc/generated"
	"parkpass/internal/pkg/pgconv"

	"github.com/shopspring/decimal"
)

func InvoiceFromRow(row sqlc.Invoices) (*invoice.Invoice, error) {
	daily := make(map[string]decimal.Decimal)
	if len(row.DailyTotals) > 0 {
		if err := json.Unmarshal(row.DailyTotals, &daily); err != nil {
			return nil, fmt.Errorf("decode daily totals: %w", err)
		}
	}

	tier := pricing.ReconstructTier(
		pricing.MembershipType(row.TierMembershipType),
		row.TierHourlyRate,
		row.TierDailyCap,
		pgconv.DecimalPtrFromNull(row.TierMonthlyThreshold),
	)

	return invoice.Reconstruct(
		row.ID,
		row.DriverID,
		invoice.Period{Year: int(row.PeriodYear), Month: time.Month(row.PeriodMonth)},
		int(row.TotalSessions),
		row.TotalHours,
		row.TotalAmount,
		row.AmountDue,
		daily,
		row.SessionIds,
		tier,
		invoice.Status(row.Status),
		pgconv.TimeFromPgtype(row.DueDate),
		row.Version,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func InvoiceToInsertParams(inv *invoice.Invoice) (sqlc.InsertInvoiceParams, error) {
	daily, err := json.Marshal(inv.DailyTotals())
	if err != nil {
		return sqlc.InsertInvoiceParams{}, fmt.Errorf("encode daily totals: %w", err)
	}
	tier := inv.Tier()
	return sqlc.InsertInvoiceParams{
		ID:                   inv.ID(),
		DriverID:             inv.DriverID(),
		PeriodYear:           int32(inv.Period().Year),  // #nosec G115 -- validated period
		PeriodMonth:          int32(inv.Period().Month), // #nosec G115
		TotalSessions:        int32(inv.TotalSessions()),
		TotalHours:           inv.TotalHours(),
		TotalAmount:          inv.TotalAmount(),
		AmountDue:            inv.AmountDue(),
		DailyTotals:          daily,
		SessionIds:           inv.SessionIDs(),
		TierMembershipType:   string(tier.MembershipType()),
		TierHourlyRate:       tier.HourlyRate(),
		TierDailyCap:         tier.DailyCap(),
		TierMonthlyThreshold: pgconv.DecimalPtrToNull(tierThreshold(tier)),
		Status:               string(inv.Status()),
		DueDate:              pgconv.TimeToPgtype(inv.DueDate()),
		CreatedAt:            pgconv.TimeToPgtype(inv.CreatedAt()),
		UpdatedAt:            pgconv.TimeToPgtype(inv.UpdatedAt()),
	}, nil
}

func InvoiceToUpdateParams(inv *invoice.Invoice) (sqlc.UpdateInvoiceIfVersionParams, error) {
	daily, err := json.Marshal(inv.DailyTotals())
	if err != nil {
		return sqlc.UpdateInvoiceIfVersionParams{}, fmt.Errorf("encode daily totals: %w", err)
	}
	tier := inv.Tier()
	return sqlc.UpdateInvoiceIfVersionParams{
		ID:                   inv.ID(),
		Version:              inv.Version(),
		TotalSessions:        int32(inv.TotalSessions()),
		TotalHours:           inv.TotalHours(),
		TotalAmount:          inv.TotalAmount(),
		AmountDue:            inv.AmountDue(),
		DailyTotals:          daily,
		SessionIds:           inv.SessionIDs(),
		TierMembershipType:   string(tier.MembershipType()),
		TierHourlyRate:       tier.HourlyRate(),
		TierDailyCap:         tier.DailyCap(),
		TierMonthlyThreshold: pgconv.DecimalPtrToNull(tierThreshold(tier)),
		Status:               string(inv.Status()),
		UpdatedAt:            pgconv.TimeToPgtype(inv.UpdatedAt()),
	}, nil
}

func tierThreshold(tier pricing.Tier) *decimal.Decimal {
	if v, ok := tier.MonthlyUnlimitedThreshold(); ok {
		return &v
	}
	return nil
}
