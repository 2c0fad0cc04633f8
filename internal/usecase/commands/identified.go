package commands

import (
	"context"
	"log/slog"

	"ordering-service/internal/pkg/errs"
	"ordering-service/internal/pkg/mask"
	"ordering-service/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("ordering-service/commands")

// Identified carries a client-chosen request id alongside the command
// payload. Retries of the same logical request reuse the id, which is
// what makes the command safe to submit more than once.
type Identified[C any] struct {
	RequestID uuid.UUID
	Command   C
}

func NewIdentified[C any](requestID uuid.UUID, cmd C) Identified[C] {
	return Identified[C]{RequestID: requestID, Command: cmd}
}

// Result reports the order a command resolved to. Duplicate is true
// when a previous attempt already processed this request id and the
// stored outcome was replayed instead of re-running the handler.
type Result struct {
	OrderID   uuid.UUID
	Duplicate bool
}

// Outcome is what an inner handler hands back from inside the
// transaction. PostCommit runs only after the transaction commits,
// keeping telemetry out of the atomic section.
type Outcome struct {
	OrderID    uuid.UUID
	PostCommit func(ctx context.Context)
}

// TxHandler executes one command kind against an open transaction.
type TxHandler[C any] interface {
	CommandType() string
	Handle(ctx context.Context, tx shared.Tx, cmd C) (*Outcome, error)
}

// IdentifiedHandler decorates a TxHandler with durable request
// deduplication. The dedup row, the aggregate mutation and the outbox
// event commit atomically; a failed attempt leaves no record, so the
// client may retry with the same request id.
type IdentifiedHandler[C any] struct {
	inner TxHandler[C]
	uow   shared.UnitOfWork
}

func WithDeduplication[C any](inner TxHandler[C], uow shared.UnitOfWork) *IdentifiedHandler[C] {
	return &IdentifiedHandler[C]{inner: inner, uow: uow}
}

func (h *IdentifiedHandler[C]) Execute(ctx context.Context, cmd Identified[C]) (*Result, error) {
	if cmd.RequestID == uuid.Nil {
		return nil, errs.Mark(errs.New("missing request id"), errs.ErrInvalidRequest)
	}

	commandType := h.inner.CommandType()

	ctx, span := tracer.Start(ctx, commandType, trace.WithAttributes(
		attribute.String("command.request_id", mask.UUID(cmd.RequestID.String())),
	))
	defer span.End()

	var (
		result     Result
		postCommit func(ctx context.Context)
	)

	err := h.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		claimed, err := tx.Requests().TryInsert(ctx, commandType, cmd.RequestID)
		if err != nil {
			return err
		}

		if !claimed {
			rec, err := tx.Requests().Find(ctx, commandType, cmd.RequestID)
			if err != nil {
				return err
			}
			if !rec.Succeeded || rec.OrderID == nil {
				return errs.Mark(errs.New("request record not finalized"), errs.ErrPersistenceConflict)
			}
			result = Result{OrderID: *rec.OrderID, Duplicate: true}
			return nil
		}

		outcome, err := h.inner.Handle(ctx, tx, cmd.Command)
		if err != nil {
			return err
		}

		if err := tx.Requests().MarkSucceeded(ctx, commandType, cmd.RequestID, outcome.OrderID); err != nil {
			return err
		}

		result = Result{OrderID: outcome.OrderID}
		postCommit = outcome.PostCommit
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Duplicate {
		slog.Info("duplicate request suppressed",
			"command_type", commandType,
			"request_id", mask.UUID(cmd.RequestID.String()),
			"order_id", result.OrderID)
		span.SetAttributes(attribute.Bool("command.duplicate", true))
		return &result, nil
	}

	if postCommit != nil {
		postCommit(ctx)
	}

	return &result, nil
}
