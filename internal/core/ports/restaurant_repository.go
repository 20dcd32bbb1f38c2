package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the persistence contract for restaurant aggregates.
type RestaurantRepository interface {
	// Add persists a new restaurant aggregate to storage.
	Add(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Update persists changes to an existing restaurant aggregate.
	Update(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Get retrieves a restaurant aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when the restaurant does not exist.
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)
}
