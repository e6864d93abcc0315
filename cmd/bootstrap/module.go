package bootstrap

import (
	"parkpass/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	MetricsModule,
	StoreModule,
	RedisModule,
	JWTModule,
	components.UseCaseModule,
	components.HandlerModule,
	JobsModule,
)
