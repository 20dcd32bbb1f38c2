package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/driver"
	"fooddelivery/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a new driver aggregate to storage.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver aggregate.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when the driver does not exist.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetByPhone retrieves a driver by normalized phone number. Used by login.
	GetByPhone(ctx context.Context, phone string) (*driver.Driver, error)

	// MarkBusy atomically claims the driver with a conditional update
	// (is_available AND is_active guard). A driver already claimed by a
	// concurrent assignment yields a ConflictError.
	MarkBusy(ctx context.Context, id kernel.UUID) error

	// Release returns the driver to the available pool. Idempotent:
	// releasing an already-available driver succeeds without effect.
	Release(ctx context.Context, id kernel.UUID) error

	// GetAllBusy retrieves active drivers currently marked unavailable.
	// Used by the release reconciliation sweep.
	GetAllBusy(ctx context.Context) ([]*driver.Driver, error)
}
