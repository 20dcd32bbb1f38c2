package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// EventRepository is the outbox: order events are written in the same
// transaction as the order change and relayed to the broker asynchronously.
type EventRepository interface {
	// Add persists an unsent outbox event.
	Add(ctx context.Context, event order.Event) error

	// GetUnsent retrieves up to limit unsent events, oldest first.
	GetUnsent(ctx context.Context, limit int) ([]order.Event, error)

	// MarkSent stamps events as published. Already-sent events are skipped.
	MarkSent(ctx context.Context, ids []kernel.UUID) error
}
