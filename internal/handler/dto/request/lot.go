package request

import (
	"parkpass/internal/domain/lot"
	"parkpass/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type CreateLotRequest struct {
	Name        string          `json:"name" binding:"required,max=255"`
	Location    string          `json:"location" binding:"max=255"`
	TotalSpaces int             `json:"totalSpaces" binding:"required,min=1,max=100000"`
	HourlyRate  decimal.Decimal `json:"hourlyRate"`
	DailyCap    decimal.Decimal `json:"dailyCap"`
}

func (r *CreateLotRequest) ToInput() commands.CreateLotInput {
	return commands.CreateLotInput{
		Name:        r.Name,
		Location:    r.Location,
		TotalSpaces: r.TotalSpaces,
		HourlyRate:  r.HourlyRate,
		DailyCap:    r.DailyCap,
	}
}

type UpdateLotStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active inactive"`
}

func (r *UpdateLotStatusRequest) ToDomain() (lot.Status, error) {
	return lot.NewStatus(r.Status)
}
