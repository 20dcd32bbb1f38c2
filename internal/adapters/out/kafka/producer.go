// Package kafka publishes order events to the message broker. The producer is
// the downstream half of the outbox: the relay job reads unsent events and
// hands them here.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"fooddelivery/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

// orderEventEnvelope is the wire format published to the topic. The payload
// travels as raw JSON produced when the event was written to the outbox.
type orderEventEnvelope struct {
	EventID   string          `json:"eventId"`
	OrderID   string          `json:"orderId"`
	EventType string          `json:"eventType"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"createdAt"`
}

// OrderEventProducer writes order events to one Kafka topic, keyed by order
// ID so a single order's events stay in one partition, in order.
type OrderEventProducer struct {
	writer *kafka.Writer
	topic  string
}

// NewOrderEventProducer creates a producer for the given brokers and topic.
func NewOrderEventProducer(brokers []string, topic string) *OrderEventProducer {
	return &OrderEventProducer{
		topic: topic,
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
			BatchTimeout:           100 * time.Millisecond,
		},
	}
}

// Publish writes one event to the topic.
func (p *OrderEventProducer) Publish(ctx context.Context, event order.Event) error {
	payload := event.Payload
	if len(payload) == 0 {
		payload = []byte("null")
	}

	data, err := json.Marshal(orderEventEnvelope{
		EventID:   event.ID.String(),
		OrderID:   event.OrderID.String(),
		EventType: event.EventType,
		Payload:   payload,
		CreatedAt: event.CreatedAt,
	})
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID.String()),
		Value: data,
	})
}

// Close flushes and closes the underlying writer.
func (p *OrderEventProducer) Close() error {
	return p.writer.Close()
}
