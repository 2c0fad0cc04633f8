package bootstrap

import (
	"context"
	"net/http"

	"ordering-service/internal/pkg/config"
	"ordering-service/internal/telemetry"
	"ordering-service/internal/usecase/commands"

	"go.uber.org/fx"
)

var TelemetryModule = fx.Module("telemetry",
	fx.Provide(
		NewMetricsHandler,
		fx.Annotate(
			// Instruments must be created after the meter provider is
			// installed; the handler dependency forces that order.
			func(_ http.Handler) (*telemetry.OrderMetrics, error) {
				return telemetry.NewOrderMetrics()
			},
			fx.As(new(commands.OrderTelemetry)),
		),
	),
	fx.Invoke(initTracing),
)

// NewMetricsHandler sets the global meter provider and exposes the
// Prometheus scrape handler for the router.
func NewMetricsHandler(lc fx.Lifecycle, cfg config.Config) (http.Handler, error) {
	handler, shutdown, err := telemetry.InitMeterProvider(cfg.Telemetry)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return shutdown(ctx)
		},
	})

	return handler, nil
}

func initTracing(lc fx.Lifecycle, cfg config.Config) error {
	shutdown, err := telemetry.InitTracerProvider(context.Background(), cfg.Telemetry)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return shutdown(ctx)
		},
	})

	return nil
}
