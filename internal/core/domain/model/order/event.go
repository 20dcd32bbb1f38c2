package order

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
)

// Event is an outbox record of an order change, written in the same
// transaction as the change itself and relayed to the message broker by a
// background job. SentAt is nil until the relay publishes it.
type Event struct {
	ID        kernel.UUID
	OrderID   kernel.UUID
	EventType string
	Payload   []byte
	CreatedAt time.Time
	SentAt    *time.Time
}

// NewEvent creates an unsent outbox Event stamped with the current time.
func NewEvent(orderID kernel.UUID, eventType string, payload []byte) Event {
	return Event{
		ID:        kernel.NewUUID(),
		OrderID:   orderID,
		EventType: eventType,
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	}
}
