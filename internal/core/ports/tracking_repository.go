package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/tracking"
)

// TrackingRepository defines the persistence contract for the append-only
// tracking history.
type TrackingRepository interface {
	// Add appends a tracking entry. Entries are never updated or deleted.
	Add(ctx context.Context, entry *tracking.Entry) error

	// GetByOrder retrieves an order's tracking history, oldest first.
	GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*tracking.Entry, error)
}
