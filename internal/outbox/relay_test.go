//go:build unit

package outbox_test

import (
	"context"
	"testing"
	"time"

	"ordering-service/internal/infra/db"
	"ordering-service/internal/outbox"
	"ordering-service/internal/pkg/config"
	"ordering-service/internal/pkg/errs"
	"ordering-service/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fakeOutboxStore struct {
	pending []shared.IntegrationEvent
}

type fakeUoW struct {
	store *fakeOutboxStore
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{store: u.store})
}

func (u *fakeUoW) WithinReadOnly(_ context.Context, _ func(ctx context.Context, dbtx db.DBTX) error) error {
	return errs.New("not supported")
}

type fakeTx struct {
	store *fakeOutboxStore
}

func (t *fakeTx) Orders() shared.OrderRepository     { return nil }
func (t *fakeTx) Requests() shared.RequestRepository { return nil }
func (t *fakeTx) DB() db.DBTX                        { return nil }
func (t *fakeTx) Outbox() shared.OutboxRepository    { return &fakeOutbox{store: t.store} }

type fakeOutbox struct {
	store *fakeOutboxStore
}

func (o *fakeOutbox) Enqueue(_ context.Context, aggregateID uuid.UUID, eventType string, payload []byte) error {
	o.store.pending = append(o.store.pending, shared.IntegrationEvent{
		ID:          uuid.New(),
		AggregateID: aggregateID,
		EventType:   eventType,
		Payload:     payload,
	})
	return nil
}

func (o *fakeOutbox) ClaimPending(_ context.Context, limit int) ([]shared.IntegrationEvent, error) {
	if limit > len(o.store.pending) {
		limit = len(o.store.pending)
	}
	return append([]shared.IntegrationEvent(nil), o.store.pending[:limit]...), nil
}

func (o *fakeOutbox) MarkPublished(_ context.Context, ids []uuid.UUID) error {
	published := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		published[id] = true
	}
	var remaining []shared.IntegrationEvent
	for _, ev := range o.store.pending {
		if !published[ev.ID] {
			remaining = append(remaining, ev)
		}
	}
	o.store.pending = remaining
	return nil
}

type capturePublisher struct {
	published []shared.IntegrationEvent
	failAfter int // publish calls before returning errors; -1 never fails
}

func (p *capturePublisher) Publish(_ context.Context, event shared.IntegrationEvent) error {
	if p.failAfter >= 0 && len(p.published) >= p.failAfter {
		return errs.New("broker unavailable")
	}
	p.published = append(p.published, event)
	return nil
}

func pendingEvents(t *testing.T, store *fakeOutboxStore, n int) {
	t.Helper()
	tx := &fakeTx{store: store}
	for i := 0; i < n; i++ {
		require.NoError(t, tx.Outbox().Enqueue(context.Background(), uuid.New(), "ordering.order_started", []byte(`{}`)))
	}
}

func TestRelayRunOnce_PublishesAndMarks(t *testing.T) {
	store := &fakeOutboxStore{}
	pendingEvents(t, store, 3)
	publisher := &capturePublisher{failAfter: -1}
	relay := outbox.NewRelay(&fakeUoW{store: store}, publisher, config.OutboxConfig{
		PollInterval: time.Second,
		BatchSize:    10,
	})

	require.NoError(t, relay.RunOnce(context.Background()))

	require.Len(t, publisher.published, 3)
	require.Empty(t, store.pending)
}

func TestRelayRunOnce_RespectsBatchSize(t *testing.T) {
	store := &fakeOutboxStore{}
	pendingEvents(t, store, 5)
	publisher := &capturePublisher{failAfter: -1}
	relay := outbox.NewRelay(&fakeUoW{store: store}, publisher, config.OutboxConfig{
		PollInterval: time.Second,
		BatchSize:    2,
	})

	require.NoError(t, relay.RunOnce(context.Background()))

	require.Len(t, publisher.published, 2)
	require.Len(t, store.pending, 3)
}

func TestRelayRunOnce_KeepsFailedTailPending(t *testing.T) {
	store := &fakeOutboxStore{}
	pendingEvents(t, store, 4)
	publisher := &capturePublisher{failAfter: 2}
	relay := outbox.NewRelay(&fakeUoW{store: store}, publisher, config.OutboxConfig{
		PollInterval: time.Second,
		BatchSize:    10,
	})

	require.NoError(t, relay.RunOnce(context.Background()))

	require.Len(t, publisher.published, 2)
	require.Len(t, store.pending, 2)
}

func TestRelayRunOnce_EmptyOutbox(t *testing.T) {
	store := &fakeOutboxStore{}
	publisher := &capturePublisher{failAfter: -1}
	relay := outbox.NewRelay(&fakeUoW{store: store}, publisher, config.OutboxConfig{
		PollInterval: time.Second,
		BatchSize:    10,
	})

	require.NoError(t, relay.RunOnce(context.Background()))
	require.Empty(t, publisher.published)
}
