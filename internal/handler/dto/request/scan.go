package request

import (
	"strings"

	"parkpass/internal/usecase/commands"

	"github.com/google/uuid"
)

type ScanRequest struct {
	Token     string    `json:"token" binding:"required,max=512"`
	LotID     uuid.UUID `json:"lotId" binding:"required"`
	Gate      string    `json:"gate" binding:"required,max=64"`
	Direction string    `json:"direction" binding:"required,oneof=entry exit"`
}

func (r *ScanRequest) ToInput() commands.ScanInput {
	return commands.ScanInput{
		RawToken:  r.Token,
		LotID:     r.LotID,
		Gate:      strings.TrimSpace(r.Gate),
		Direction: commands.Direction(r.Direction),
	}
}
