package bootstrap

import (
	"ordering-service/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	TelemetryModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
	OutboxModule,
)
