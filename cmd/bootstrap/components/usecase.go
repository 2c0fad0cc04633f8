package components

import (
	"ordering-service/internal/pkg/clock"
	"ordering-service/internal/pkg/config"
	"ordering-service/internal/usecase"
	"ordering-service/internal/usecase/commands"
	"ordering-service/internal/usecase/queries"
	"ordering-service/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
	usecaseValidatorsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		func(u shared.UnitOfWork, telemetry commands.OrderTelemetry, clk clock.Clock, cfg config.Config) commands.OrderCommands {
			return commands.NewOrderCommands(u, telemetry, clk, cfg.Payment)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewOrderQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
