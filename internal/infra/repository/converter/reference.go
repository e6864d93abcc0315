package converter

import (
	"parkpass/internal/domain/driver"
	"parkpass/internal/domain/pricing"
	sqlc "parkpass/internal/infra/sqlc/generated"
	"parkpass/internal/pkg/pgconv"
)

func TierFromRow(row sqlc.PricingTiers) pricing.Tier {
	return pricing.ReconstructTier(
		pricing.MembershipType(row.MembershipType),
		row.HourlyRate,
		row.DailyCap,
		pgconv.DecimalPtrFromNull(row.MonthlyUnlimitedThreshold),
	)
}

func DriverFromRow(row sqlc.Drivers) *driver.Driver {
	return driver.Reconstruct(row.ID, row.Name, pricing.MembershipType(pgconv.StringFromPgtype(row.MembershipType)))
}
