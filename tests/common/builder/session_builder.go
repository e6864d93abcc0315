//go:build unit || e2e

package builder

import (
	"time"

	"parkpass/internal/domain/session"
	reqdto "parkpass/internal/handler/dto/request"

	"github.com/google/uuid"
)

type SessionBuilder struct {
	ID            uuid.UUID
	DriverID      uuid.UUID
	DriverName    string
	VehicleNumber string
	LotID         uuid.UUID
	Gate          string
	EntryTime     time.Time
	ExitTime      *time.Time
}

func NewSessionBuilder() *SessionBuilder {
	return &SessionBuilder{
		ID:            uuid.New(),
		DriverID:      uuid.New(),
		DriverName:    "Lan Nguyen",
		VehicleNumber: "51F-123.45",
		LotID:         uuid.New(),
		Gate:          "north",
		EntryTime:     time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC),
	}
}

func (b *SessionBuilder) With(mutate func(*SessionBuilder)) *SessionBuilder {
	mutate(b)
	return b
}

// Completed sets an exit time d after entry.
func (b *SessionBuilder) Completed(d time.Duration) *SessionBuilder {
	exit := b.EntryTime.Add(d)
	b.ExitTime = &exit
	return b
}

func (b *SessionBuilder) BuildDomain() *session.Session {
	status := session.StatusActive
	updated := b.EntryTime
	if b.ExitTime != nil {
		status = session.StatusCompleted
		updated = *b.ExitTime
	}
	return session.Reconstruct(
		b.ID, b.DriverID,
		b.DriverName, b.VehicleNumber,
		b.LotID, b.Gate,
		b.EntryTime, b.ExitTime,
		status, "",
		b.EntryTime, updated,
	)
}

func (b *SessionBuilder) BuildScanRequestDTO(token, direction string) reqdto.ScanRequest {
	return reqdto.ScanRequest{
		Token:     token,
		LotID:     b.LotID,
		Gate:      b.Gate,
		Direction: direction,
	}
}
