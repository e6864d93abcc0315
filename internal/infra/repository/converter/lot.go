package converter

import (
	"parkpass/internal/domain/lot"
	sqlc "parkpass/internal/infra/sqlc/generated"
	"parkpass/internal/pkg/pgconv"
)

func LotFromRow(row sqlc.ParkingLots) *lot.Lot {
	return lot.ReconstructLot(
		row.ID,
		row.OwnerID,
		row.Name,
		row.Location,
		int(row.TotalSpaces),
		int(row.AvailableSpaces),
		row.HourlyRate,
		row.DailyCap,
		lot.Status(row.Status),
		row.Version,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func LotToCreateParams(l *lot.Lot) sqlc.CreateLotParams {
	return sqlc.CreateLotParams{
		ID:              l.ID(),
		OwnerID:         l.OwnerID(),
		Name:            l.Name(),
		Location:        l.Location(),
		TotalSpaces:     int32(l.TotalSpaces()),     // #nosec G115 -- bounded by the domain
		AvailableSpaces: int32(l.AvailableSpaces()), // #nosec G115
		HourlyRate:      l.HourlyRate(),
		DailyCap:        l.DailyCap(),
		Status:          l.Status().String(),
		Version:         l.Version(),
		CreatedAt:       pgconv.TimeToPgtype(l.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(l.UpdatedAt()),
	}
}

// LotToSwapParams writes l guarded by the version it was read at.
func LotToSwapParams(l *lot.Lot, expected int64) sqlc.UpdateLotIfVersionParams {
	return sqlc.UpdateLotIfVersionParams{
		ID:              l.ID(),
		Version:         expected,
		AvailableSpaces: int32(l.AvailableSpaces()), // #nosec G115
		Status:          l.Status().String(),
		UpdatedAt:       pgconv.TimeToPgtype(l.UpdatedAt()),
	}
}
