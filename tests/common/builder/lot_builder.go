//go:build unit || e2e

package builder

import (
	"time"

	"parkpass/internal/domain/lot"
	reqdto "parkpass/internal/handler/dto/request"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LotBuilder struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	Name            string
	Location        string
	TotalSpaces     int
	AvailableSpaces int
	HourlyRate      decimal.Decimal
	DailyCap        decimal.Decimal
	Status          lot.Status
	Version         int64
	CreatedAt       time.Time
}

func NewLotBuilder() *LotBuilder {
	return &LotBuilder{
		ID:              uuid.New(),
		OwnerID:         uuid.New(),
		Name:            "Central Garage",
		Location:        "12 Main St",
		TotalSpaces:     10,
		AvailableSpaces: 10,
		HourlyRate:      decimal.NewFromInt(5),
		DailyCap:        decimal.NewFromInt(30),
		Status:          lot.StatusActive,
		Version:         1,
		CreatedAt:       time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC),
	}
}

func (b *LotBuilder) With(mutate func(*LotBuilder)) *LotBuilder {
	mutate(b)
	return b
}

func (b *LotBuilder) BuildDomain() *lot.Lot {
	return lot.ReconstructLot(
		b.ID, b.OwnerID,
		b.Name, b.Location,
		b.TotalSpaces, b.AvailableSpaces,
		b.HourlyRate, b.DailyCap,
		b.Status, b.Version,
		b.CreatedAt, b.CreatedAt,
	)
}

func (b *LotBuilder) BuildCreateRequestDTO() reqdto.CreateLotRequest {
	return reqdto.CreateLotRequest{
		Name:        b.Name,
		Location:    b.Location,
		TotalSpaces: b.TotalSpaces,
		HourlyRate:  b.HourlyRate,
		DailyCap:    b.DailyCap,
	}
}
