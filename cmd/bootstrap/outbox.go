package bootstrap

import (
	"context"

	"ordering-service/internal/outbox"
	"ordering-service/internal/pkg/config"
	"ordering-service/internal/usecase/shared"

	"go.uber.org/fx"
)

var OutboxModule = fx.Module("outbox",
	fx.Provide(
		NewKafkaPublisher,
		NewRelay,
	),
	fx.Invoke(runRelay),
)

func NewKafkaPublisher(lc fx.Lifecycle, cfg config.Config) outbox.Publisher {
	publisher := outbox.NewKafkaPublisher(cfg.Kafka)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})

	return publisher
}

func NewRelay(uow shared.UnitOfWork, publisher outbox.Publisher, cfg config.Config) *outbox.Relay {
	return outbox.NewRelay(uow, publisher, cfg.Outbox)
}

func runRelay(lc fx.Lifecycle, relay *outbox.Relay) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			relay.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			relay.Stop()
			return nil
		},
	})
}
