package lot

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName        = errors.New("lot name cannot be empty")
	ErrNameTooLong      = errors.New("lot name is too long (max 255 characters)")
	ErrInvalidCapacity  = errors.New("total spaces must be positive")
	ErrNegativeRate     = errors.New("rates cannot be negative")
	ErrInvalidStatus    = errors.New("invalid lot status")
	ErrInvalidPolicy    = errors.New("invalid capacity policy")
	ErrInvalidDelta     = errors.New("availability delta must be +1 or -1")
	ErrCapacityExceeded = errors.New("lot has no available spaces")
	ErrLotInactive      = errors.New("lot is inactive")
)

const MaxNameLength = 255

type Lot struct {
	id              uuid.UUID
	ownerID         uuid.UUID
	name            string
	location        string
	totalSpaces     int
	availableSpaces int
	hourlyRate      decimal.Decimal
	dailyCap        decimal.Decimal
	status          Status
	version         int64
	createdAt       time.Time
	updatedAt       time.Time
}

func NewLot(
	ownerID uuid.UUID,
	name, location string,
	totalSpaces int,
	hourlyRate, dailyCap decimal.Decimal,
	now time.Time,
) (*Lot, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}
	if totalSpaces <= 0 {
		return nil, ErrInvalidCapacity
	}
	if hourlyRate.IsNegative() || dailyCap.IsNegative() {
		return nil, ErrNegativeRate
	}

	return &Lot{
		id:              uuid.New(),
		ownerID:         ownerID,
		name:            name,
		location:        strings.TrimSpace(location),
		totalSpaces:     totalSpaces,
		availableSpaces: totalSpaces,
		hourlyRate:      hourlyRate,
		dailyCap:        dailyCap,
		status:          StatusActive,
		version:         1,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructLot(
	id, ownerID uuid.UUID,
	name, location string,
	totalSpaces, availableSpaces int,
	hourlyRate, dailyCap decimal.Decimal,
	status Status,
	version int64,
	createdAt, updatedAt time.Time,
) *Lot {
	return &Lot{
		id:              id,
		ownerID:         ownerID,
		name:            name,
		location:        location,
		totalSpaces:     totalSpaces,
		availableSpaces: availableSpaces,
		hourlyRate:      hourlyRate,
		dailyCap:        dailyCap,
		status:          status,
		version:         version,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// AdjustAvailability applies one entry (-1) or exit (+1). The result always stays
// within [0, totalSpaces]; under PolicyReject an entry into a full lot fails instead.
func (l *Lot) AdjustAvailability(delta int, policy CapacityPolicy, now time.Time) error {
	if delta != DeltaEntry && delta != DeltaExit {
		return ErrInvalidDelta
	}
	if delta == DeltaEntry && l.status != StatusActive {
		return ErrLotInactive
	}

	next := l.availableSpaces + delta
	if next < 0 {
		if policy == PolicyReject {
			return ErrCapacityExceeded
		}
		next = 0
	}
	if next > l.totalSpaces {
		next = l.totalSpaces
	}

	l.availableSpaces = next
	l.updatedAt = now
	return nil
}

// Reconcile resets availability from the number of sessions currently parked.
func (l *Lot) Reconcile(activeSessions int, now time.Time) bool {
	next := l.totalSpaces - activeSessions
	if next < 0 {
		next = 0
	}
	if next == l.availableSpaces {
		return false
	}
	l.availableSpaces = next
	l.updatedAt = now
	return true
}

func (l *Lot) ChangeStatus(status Status, now time.Time) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	l.status = status
	l.updatedAt = now
	return nil
}

func (l *Lot) IsOwnedBy(operatorID uuid.UUID) bool {
	return l.ownerID == operatorID
}

func (l *Lot) IsFull() bool {
	return l.availableSpaces == 0
}

func (l *Lot) OccupiedSpaces() int {
	return l.totalSpaces - l.availableSpaces
}

// BumpVersion is called by stores after a successful compare-and-swap.
func (l *Lot) BumpVersion() {
	l.version++
}

func (l *Lot) ID() uuid.UUID               { return l.id }
func (l *Lot) OwnerID() uuid.UUID          { return l.ownerID }
func (l *Lot) Name() string                { return l.name }
func (l *Lot) Location() string            { return l.location }
func (l *Lot) TotalSpaces() int            { return l.totalSpaces }
func (l *Lot) AvailableSpaces() int        { return l.availableSpaces }
func (l *Lot) HourlyRate() decimal.Decimal { return l.hourlyRate }
func (l *Lot) DailyCap() decimal.Decimal   { return l.dailyCap }
func (l *Lot) Status() Status              { return l.status }
func (l *Lot) Version() int64              { return l.version }
func (l *Lot) CreatedAt() time.Time        { return l.createdAt }
func (l *Lot) UpdatedAt() time.Time        { return l.updatedAt }

// Clone returns a copy that can be mutated without affecting the receiver.
func (l *Lot) Clone() *Lot {
	c := *l
	return &c
}
