package repository

import (
	"context"
	"time"

	"parkpass/internal/domain/session"
	"parkpass/internal/infra"
	"parkpass/internal/infra/repository/converter"
	sqlc "parkpass/internal/infra/sqlc/generated"
	"parkpass/internal/pkg/pgconv"
	"parkpass/internal/usecase/shared"

	"github.com/google/uuid"
)

type SessionQueries interface {
	GetSessionByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ParkingSessions, error)
	GetActiveSessionByDriver(ctx context.Context, db sqlc.DBTX, driverID uuid.UUID) (sqlc.ParkingSessions, error)
	CreateSession(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSessionParams) error
	CompleteSession(ctx context.Context, db sqlc.DBTX, arg sqlc.CompleteSessionParams) (int64, error)
	ListSessionsByLot(ctx context.Context, db sqlc.DBTX, arg sqlc.ListSessionsByLotParams) ([]sqlc.ParkingSessions, error)
	ListSessionsByDriver(ctx context.Context, db sqlc.DBTX, arg sqlc.ListSessionsByDriverParams) ([]sqlc.ParkingSessions, error)
	ListCompletedSessions(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCompletedSessionsParams) ([]sqlc.ParkingSessions, error)
	CountActiveSessionsByLot(ctx context.Context, db sqlc.DBTX, lotID uuid.UUID) (int64, error)
}

type SessionRepository struct {
	queries SessionQueries
	db      sqlc.DBTX
}

func NewSessionRepository(queries SessionQueries, db sqlc.DBTX) *SessionRepository {
	return &SessionRepository{
		queries: queries,
		db:      db,
	}
}

var _ shared.SessionRepository = (*SessionRepository)(nil)

func (r *SessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*session.Session, error) {
	row, err := r.queries.GetSessionByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapPgErr("failed to find session", err)
	}
	return converter.SessionFromRow(row), nil
}

func (r *SessionRepository) FindActiveByDriver(ctx context.Context, driverID uuid.UUID) (*session.Session, error) {
	row, err := r.queries.GetActiveSessionByDriver(ctx, r.db, driverID)
	if err != nil {
		return nil, infra.WrapPgErr("failed to find active session", err)
	}
	return converter.SessionFromRow(row), nil
}

// Create relies on the partial unique index for one active session per driver.
func (r *SessionRepository) Create(ctx context.Context, s *session.Session) error {
	if err := r.queries.CreateSession(ctx, r.db, converter.SessionToCreateParams(s)); err != nil {
		return infra.WrapPgErr("failed to create session", err)
	}
	return nil
}

func (r *SessionRepository) Update(ctx context.Context, s *session.Session) error {
	affected, err := r.queries.CompleteSession(ctx, r.db, converter.SessionToCompleteParams(s))
	if err != nil {
		return infra.WrapPgErr("failed to update session", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr(infra.KindConflict, "session is no longer active", nil)
	}
	return nil
}

func (r *SessionRepository) ListByLot(ctx context.Context, lotID uuid.UUID, from, to time.Time) ([]*session.Session, error) {
	rows, err := r.queries.ListSessionsByLot(ctx, r.db, sqlc.ListSessionsByLotParams{
		LotID:       lotID,
		EntryTime:   pgconv.TimeToPgtype(from),
		EntryTime_2: pgconv.TimeToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapPgErr("failed to list sessions by lot", err)
	}
	return converter.SessionsFromRows(rows), nil
}

func (r *SessionRepository) ListByDriver(ctx context.Context, driverID uuid.UUID, from, to time.Time) ([]*session.Session, error) {
	rows, err := r.queries.ListSessionsByDriver(ctx, r.db, sqlc.ListSessionsByDriverParams{
		DriverID:    driverID,
		EntryTime:   pgconv.TimeToPgtype(from),
		EntryTime_2: pgconv.TimeToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapPgErr("failed to list sessions by driver", err)
	}
	return converter.SessionsFromRows(rows), nil
}

func (r *SessionRepository) ListCompleted(ctx context.Context, from, to time.Time) ([]*session.Session, error) {
	rows, err := r.queries.ListCompletedSessions(ctx, r.db, sqlc.ListCompletedSessionsParams{
		EntryTime:   pgconv.TimeToPgtype(from),
		EntryTime_2: pgconv.TimeToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapPgErr("failed to list completed sessions", err)
	}
	return converter.SessionsFromRows(rows), nil
}

func (r *SessionRepository) CountActiveByLot(ctx context.Context, lotID uuid.UUID) (int, error) {
	n, err := r.queries.CountActiveSessionsByLot(ctx, r.db, lotID)
	if err != nil {
		return 0, infra.WrapPgErr("failed to count active sessions", err)
	}
	return int(n), nil
}
