package converter

import (
	"parkpass/internal/domain/session"
	sqlc "parkpass/internal/infra/sqlc/generated"
	"parkpass/internal/pkg/pgconv"
)

func SessionFromRow(row sqlc.ParkingSessions) *session.Session {
	return session.Reconstruct(
		row.ID,
		row.DriverID,
		row.DriverName,
		row.VehicleNumber,
		row.LotID,
		row.GateLocation,
		pgconv.TimeFromPgtype(row.EntryTime),
		pgconv.TimePtrFromPgtype(row.ExitTime),
		session.Status(row.Status),
		row.Notes,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func SessionsFromRows(rows []sqlc.ParkingSessions) []*session.Session {
	out := make([]*session.Session, 0, len(rows))
	for _, row := range rows {
		out = append(out, SessionFromRow(row))
	}
	return out
}

func SessionToCreateParams(s *session.Session) sqlc.CreateSessionParams {
	return sqlc.CreateSessionParams{
		ID:            s.ID(),
		DriverID:      s.DriverID(),
		DriverName:    s.DriverName(),
		VehicleNumber: s.VehicleNumber(),
		LotID:         s.LotID(),
		GateLocation:  s.GateLocation(),
		EntryTime:     pgconv.TimeToPgtype(s.EntryTime()),
		ExitTime:      pgconv.TimePtrToPgtype(s.ExitTime()),
		Status:        s.Status().String(),
		Notes:         s.Notes(),
		CreatedAt:     pgconv.TimeToPgtype(s.CreatedAt()),
		UpdatedAt:     pgconv.TimeToPgtype(s.UpdatedAt()),
	}
}

func SessionToCompleteParams(s *session.Session) sqlc.CompleteSessionParams {
	return sqlc.CompleteSessionParams{
		ID:        s.ID(),
		ExitTime:  pgconv.TimePtrToPgtype(s.ExitTime()),
		Status:    s.Status().String(),
		Notes:     s.Notes(),
		UpdatedAt: pgconv.TimeToPgtype(s.UpdatedAt()),
	}
}
