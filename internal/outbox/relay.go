package outbox

import (
	"context"
	"log/slog"
	"time"

	"ordering-service/internal/pkg/config"
	"ordering-service/internal/usecase/shared"

	"github.com/google/uuid"
)

// Relay drains the outbox table into the broker. Events are claimed
// with row locks inside a transaction, so multiple relay instances can
// run side by side without double publishing. Delivery is at least
// once: an event published but not yet marked is retried on the next
// pass.
type Relay struct {
	uow       shared.UnitOfWork
	publisher Publisher

	pollInterval time.Duration
	batchSize    int

	cancel context.CancelFunc
	done   chan struct{}
}

func NewRelay(uow shared.UnitOfWork, publisher Publisher, cfg config.OutboxConfig) *Relay {
	return &Relay{
		uow:          uow,
		publisher:    publisher,
		pollInterval: cfg.PollInterval,
		batchSize:    cfg.BatchSize,
	}
}

func (r *Relay) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.done = make(chan struct{})

	go func() {
		defer close(r.done)

		ticker := time.NewTicker(r.pollInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := r.RunOnce(ctx); err != nil && ctx.Err() == nil {
					slog.Warn("outbox relay pass failed", "error", err.Error())
				}
			}
		}
	}()
}

func (r *Relay) Stop() {
	if r.cancel == nil {
		return
	}
	r.cancel()
	<-r.done
}

// RunOnce publishes one batch of pending events. Events that reach the
// broker are marked published even when a later event in the batch
// fails; the failed tail stays pending for the next pass.
func (r *Relay) RunOnce(ctx context.Context) error {
	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		events, err := tx.Outbox().ClaimPending(ctx, r.batchSize)
		if err != nil {
			return err
		}
		if len(events) == 0 {
			return nil
		}

		published := make([]uuid.UUID, 0, len(events))
		for _, ev := range events {
			if err := r.publisher.Publish(ctx, ev); err != nil {
				slog.Warn("failed to publish integration event",
					"event_id", ev.ID,
					"event_type", ev.EventType,
					"error", err.Error())
				break
			}
			published = append(published, ev.ID)
		}

		return tx.Outbox().MarkPublished(ctx, published)
	})
}
