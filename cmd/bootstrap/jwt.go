package bootstrap

import (
	"parkpass/internal/pkg/clock"
	"parkpass/internal/pkg/config"
	"parkpass/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config, clk clock.Clock) *jwt.Service {
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration,
		jwt.WithIssuer(cfg.JWT.Issuer),
		jwt.WithClock(clk),
	)
}
