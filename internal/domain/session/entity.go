package session

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyDriver       = errors.New("driver id cannot be empty")
	ErrEmptyVehicle      = errors.New("vehicle number cannot be empty")
	ErrEmptyLot          = errors.New("lot id cannot be empty")
	ErrAlreadyCompleted  = errors.New("session is already completed")
	ErrExitBeforeEntry   = errors.New("exit time precedes entry time")
	ErrVehicleTooLong    = errors.New("vehicle number is too long (max 32 characters)")
	ErrNotesTooLong      = errors.New("notes are too long (max 500 characters)")
	ErrInvalidTransition = errors.New("invalid session state transition")
)

const (
	MaxVehicleLength = 32
	MaxNotesLength   = 500
)

type Session struct {
	id            uuid.UUID
	driverID      uuid.UUID
	driverName    string
	vehicleNumber string
	lotID         uuid.UUID
	gateLocation  string
	entryTime     time.Time
	exitTime      *time.Time
	status        Status
	notes         string
	createdAt     time.Time
	updatedAt     time.Time
}

// Open starts a new session in the active state.
func Open(
	driverID uuid.UUID,
	driverName, vehicleNumber string,
	lotID uuid.UUID,
	gateLocation string,
	entryTime time.Time,
) (*Session, error) {
	vehicleNumber = strings.TrimSpace(vehicleNumber)
	switch {
	case driverID == uuid.Nil:
		return nil, ErrEmptyDriver
	case vehicleNumber == "":
		return nil, ErrEmptyVehicle
	case len(vehicleNumber) > MaxVehicleLength:
		return nil, ErrVehicleTooLong
	case lotID == uuid.Nil:
		return nil, ErrEmptyLot
	}

	return &Session{
		id:            uuid.New(),
		driverID:      driverID,
		driverName:    strings.TrimSpace(driverName),
		vehicleNumber: vehicleNumber,
		lotID:         lotID,
		gateLocation:  strings.TrimSpace(gateLocation),
		entryTime:     entryTime,
		status:        StatusActive,
		createdAt:     entryTime,
		updatedAt:     entryTime,
	}, nil
}

func Reconstruct(
	id, driverID uuid.UUID,
	driverName, vehicleNumber string,
	lotID uuid.UUID,
	gateLocation string,
	entryTime time.Time,
	exitTime *time.Time,
	status Status,
	notes string,
	createdAt, updatedAt time.Time,
) *Session {
	return &Session{
		id:            id,
		driverID:      driverID,
		driverName:    driverName,
		vehicleNumber: vehicleNumber,
		lotID:         lotID,
		gateLocation:  gateLocation,
		entryTime:     entryTime,
		exitTime:      exitTime,
		status:        status,
		notes:         notes,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Complete moves the session to its terminal state. A completed session never reopens.
func (s *Session) Complete(exitTime time.Time) error {
	if s.status == StatusCompleted {
		return ErrAlreadyCompleted
	}
	if s.status != StatusActive {
		return ErrInvalidTransition
	}
	if exitTime.Before(s.entryTime) {
		return ErrExitBeforeEntry
	}
	t := exitTime
	s.exitTime = &t
	s.status = StatusCompleted
	s.updatedAt = exitTime
	return nil
}

func (s *Session) AddNote(note string, now time.Time) error {
	note = strings.TrimSpace(note)
	if note == "" {
		return nil
	}
	next := note
	if s.notes != "" {
		next = s.notes + "\n" + note
	}
	if len(next) > MaxNotesLength {
		return ErrNotesTooLong
	}
	s.notes = next
	s.updatedAt = now
	return nil
}

func (s *Session) IsActive() bool {
	return s.status == StatusActive
}

func (s *Session) IsCompleted() bool {
	return s.status == StatusCompleted
}

// Duration is zero for sessions without an exit.
func (s *Session) Duration() time.Duration {
	if s.exitTime == nil {
		return 0
	}
	return s.exitTime.Sub(s.entryTime)
}

func (s *Session) ID() uuid.UUID         { return s.id }
func (s *Session) DriverID() uuid.UUID   { return s.driverID }
func (s *Session) DriverName() string    { return s.driverName }
func (s *Session) VehicleNumber() string { return s.vehicleNumber }
func (s *Session) LotID() uuid.UUID      { return s.lotID }
func (s *Session) GateLocation() string  { return s.gateLocation }
func (s *Session) EntryTime() time.Time  { return s.entryTime }
func (s *Session) ExitTime() *time.Time  { return s.exitTime }
func (s *Session) Status() Status        { return s.status }
func (s *Session) Notes() string         { return s.notes }
func (s *Session) CreatedAt() time.Time  { return s.createdAt }
func (s *Session) UpdatedAt() time.Time  { return s.updatedAt }

func (s *Session) Clone() *Session {
	c := *s
	if s.exitTime != nil {
		t := *s.exitTime
		c.exitTime = &t
	}
	return &c
}
