package repository

import (
	"context"

	"ordering-service/internal/infra"
	"ordering-service/internal/infra/db"
	"ordering-service/internal/usecase/shared"

	"github.com/google/uuid"
)

// OutboxRepository stores integration events in the same transaction
// as the state change they describe. A separate relay publishes them
// after commit.
type OutboxRepository struct {
	db db.DBTX
}

func NewOutboxRepository(dbtx db.DBTX) *OutboxRepository {
	return &OutboxRepository{db: dbtx}
}

func (r *OutboxRepository) Enqueue(ctx context.Context, aggregateID uuid.UUID, eventType string, payload []byte) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO outbox_events (id, aggregate_id, event_type, payload)
		VALUES ($1, $2, $3, $4)
	`, uuid.New(), aggregateID, eventType, payload)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to enqueue integration event", err)
	}

	return nil
}

// ClaimPending locks a batch of unpublished events for this relay
// pass. SKIP LOCKED keeps concurrent relays from publishing the same
// event twice.
func (r *OutboxRepository) ClaimPending(ctx context.Context, limit int) ([]shared.IntegrationEvent, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, aggregate_id, event_type, payload, created_at
		FROM outbox_events
		WHERE status = 'pending'
		ORDER BY created_at
		LIMIT $1
		FOR UPDATE SKIP LOCKED
	`, limit)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to claim pending events", err)
	}
	defer rows.Close()

	var events []shared.IntegrationEvent
	for rows.Next() {
		var ev shared.IntegrationEvent
		if err := rows.Scan(&ev.ID, &ev.AggregateID, &ev.EventType, &ev.Payload, &ev.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan pending event", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read pending events", err)
	}

	return events, nil
}

func (r *OutboxRepository) MarkPublished(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	_, err := r.db.Exec(ctx, `
		UPDATE outbox_events
		SET status = 'published', published_at = now()
		WHERE id = ANY($1)
	`, ids)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to mark events published", err)
	}

	return nil
}
