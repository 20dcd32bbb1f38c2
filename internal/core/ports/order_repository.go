package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Claim atomically binds a driver to an unclaimed order with a
	// conditional update (driver_id IS NULL guard) and moves it to
	// Preparing. Exactly one of several concurrent claims succeeds; the
	// losers receive a ConflictError.
	Claim(ctx context.Context, orderID kernel.UUID, driverID kernel.UUID) error

	// GetAllAvailable retrieves the available-orders pool: confirmed
	// orders with no driver assigned, newest first.
	GetAllAvailable(ctx context.Context) ([]*order.Order, error)

	// HasActiveOrderForDriver reports whether the driver currently holds
	// a non-terminal order. Used by the release reconciliation sweep.
	HasActiveOrderForDriver(ctx context.Context, driverID kernel.UUID) (bool, error)
}
