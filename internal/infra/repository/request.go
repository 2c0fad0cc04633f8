package repository

import (
	"context"
	"errors"

	"ordering-service/internal/infra"
	"ordering-service/internal/infra/db"
	"ordering-service/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// RequestRepository is the durable deduplication store. TryInsert is
// the check-and-set: the primary key on (command_type, request_id)
// makes exactly one of any set of concurrent first attempts win; the
// losers block until the winner's transaction resolves and then
// observe its committed record.
type RequestRepository struct {
	db db.DBTX
}

func NewRequestRepository(dbtx db.DBTX) *RequestRepository {
	return &RequestRepository{db: dbtx}
}

func (r *RequestRepository) TryInsert(ctx context.Context, commandType string, requestID uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO client_requests (command_type, request_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, commandType, requestID)
	if err != nil {
		return false, infra.WrapRepoErr(infra.KindDBFailure, "failed to claim request id", err)
	}

	return tag.RowsAffected() == 1, nil
}

func (r *RequestRepository) Find(ctx context.Context, commandType string, requestID uuid.UUID) (*shared.RequestRecord, error) {
	rec := shared.RequestRecord{
		CommandType: commandType,
		RequestID:   requestID,
	}

	err := r.db.QueryRow(ctx, `
		SELECT succeeded, order_id, created_at
		FROM client_requests
		WHERE command_type = $1 AND request_id = $2
	`, commandType, requestID).Scan(&rec.Succeeded, &rec.OrderID, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "request record not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query request record", err)
	}

	return &rec, nil
}

func (r *RequestRepository) MarkSucceeded(ctx context.Context, commandType string, requestID, orderID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE client_requests
		SET succeeded = TRUE, order_id = $3
		WHERE command_type = $1 AND request_id = $2
	`, commandType, requestID, orderID)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to record request outcome", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "request record not claimed", nil)
	}

	return nil
}
