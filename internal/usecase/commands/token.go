package commands

import (
	"context"
	"strings"
	"time"

	"parkpass/internal/domain/accesstoken"
	"parkpass/internal/pkg/clock"
	"parkpass/internal/pkg/errs"

	"github.com/google/uuid"
)

type MintTokenResult struct {
	Token     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type TokenCommands interface {
	Mint(ctx context.Context, driverID uuid.UUID, vehiclePlate string) (*MintTokenResult, error)
}

type tokenUseCaseImpl struct {
	codec *accesstoken.Codec
	clock clock.Clock
}

func NewTokenUseCase(codec *accesstoken.Codec, clk clock.Clock) TokenCommands {
	return &tokenUseCaseImpl{codec: codec, clock: clk}
}

// Mint is deterministic in driver, plate and issue millisecond: the wire format has no nonce,
// so two mints in the same millisecond return the same code and admit a single scan.
func (uc *tokenUseCaseImpl) Mint(_ context.Context, driverID uuid.UUID, vehiclePlate string) (*MintTokenResult, error) {
	plate := strings.TrimSpace(vehiclePlate)
	if driverID == uuid.Nil {
		return nil, errs.Wrap(errs.ErrDomainValidation, "driver id is required")
	}
	if plate == "" || strings.Contains(plate, "|") {
		return nil, errs.Wrap(errs.ErrDomainValidation, "vehicle plate is invalid")
	}

	now := uc.clock.Now()
	return &MintTokenResult{
		Token:     uc.codec.Encode(driverID.String(), plate, now),
		IssuedAt:  now,
		ExpiresAt: now.Add(uc.codec.Window()),
	}, nil
}
