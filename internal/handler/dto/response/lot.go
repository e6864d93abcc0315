package response

import (
	"parkpass/internal/domain/lot"

	"github.com/shopspring/decimal"
)

type LotResponse struct {
	ID              string          `json:"id"`
	OwnerID         string          `json:"ownerId"`
	Name            string          `json:"name"`
	Location        string          `json:"location"`
	TotalSpaces     int             `json:"totalSpaces"`
	AvailableSpaces int             `json:"availableSpaces"`
	HourlyRate      decimal.Decimal `json:"hourlyRate"`
	DailyCap        decimal.Decimal `json:"dailyCap"`
	Status          string          `json:"status"`
	CreatedAt       int64           `json:"createdAt"`
	UpdatedAt       int64           `json:"updatedAt"`
}

func FromLot(l *lot.Lot) *LotResponse {
	return &LotResponse{
		ID:              l.ID().String(),
		OwnerID:         l.OwnerID().String(),
		Name:            l.Name(),
		Location:        l.Location(),
		TotalSpaces:     l.TotalSpaces(),
		AvailableSpaces: l.AvailableSpaces(),
		HourlyRate:      l.HourlyRate(),
		DailyCap:        l.DailyCap(),
		Status:          l.Status().String(),
		CreatedAt:       l.CreatedAt().Unix(),
		UpdatedAt:       l.UpdatedAt().Unix(),
	}
}

type AvailabilityResponse struct {
	LotID           string `json:"lotId"`
	AvailableSpaces int    `json:"availableSpaces"`
}
