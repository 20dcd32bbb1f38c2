package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
)

// EventPublisher delivers outbox events to the message broker. The relay job
// calls Publish for each unsent event and only marks events it delivered.
type EventPublisher interface {
	Publish(ctx context.Context, event order.Event) error
	Close() error
}
