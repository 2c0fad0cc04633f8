package outbox

import (
	"context"
	"time"

	"ordering-service/internal/pkg/config"
	"ordering-service/internal/usecase/shared"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

var producerTracer = otel.Tracer("outbox/producer")

// Publisher hands a claimed integration event to the message broker.
type Publisher interface {
	Publish(ctx context.Context, event shared.IntegrationEvent) error
}

type KafkaPublisher struct {
	writer *kafka.Writer
	topic  string
}

func NewKafkaPublisher(cfg config.KafkaConfig) *KafkaPublisher {
	return &KafkaPublisher{
		topic: cfg.Topic,
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Topic:                  cfg.Topic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
			BatchTimeout:           100 * time.Millisecond,
		},
	}
}

// Publish keys messages by aggregate id so every event of one order
// lands on the same partition in commit order.
func (p *KafkaPublisher) Publish(ctx context.Context, event shared.IntegrationEvent) error {
	key := event.AggregateID.String()

	msg := kafka.Message{
		Key:   []byte(key),
		Value: event.Payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
			{Key: "event_id", Value: []byte(event.ID.String())},
		},
	}

	ctx, span := producerTracer.Start(ctx, "send "+p.topic,
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			semconv.MessagingSystemKafka,
			semconv.MessagingOperationName("send"),
			semconv.MessagingOperationTypePublish,
			semconv.MessagingDestinationName(p.topic),
			semconv.MessagingKafkaMessageKey(key),
		),
	)
	defer span.End()

	otel.GetTextMapPropagator().Inject(ctx, NewMessageCarrier(&msg))

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
