package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for notifications.
type NotificationRepository interface {
	// Add persists a new notification.
	Add(ctx context.Context, aggregate *notification.Notification) error

	// AddBatch persists a fan-out batch in one round trip.
	AddBatch(ctx context.Context, aggregates []*notification.Notification) error

	// Get retrieves a notification by its unique identifier.
	// Returns an ObjectNotFoundError when the notification does not exist.
	Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error)

	// Update persists changes to an existing notification (read flag).
	Update(ctx context.Context, aggregate *notification.Notification) error
}
