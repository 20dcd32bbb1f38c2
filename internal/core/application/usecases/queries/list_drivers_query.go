package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrListDriversQueryIsNotConstructed = errors.New(
	"ListDriversQuery must be created via NewListDriversQuery constructor",
)

// ListDriversQuery retrieves drivers for the admin dashboard, optionally
// narrowed to those currently available for orders.
type ListDriversQuery struct {
	availableOnly bool

	guard guard.ConstructorGuard
}

// NewListDriversQuery creates a driver listing query.
func NewListDriversQuery(availableOnly bool) ListDriversQuery {
	return ListDriversQuery{availableOnly: availableOnly, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListDriversQuery) Validate() error {
	return q.guard.Validate(ErrListDriversQueryIsNotConstructed)
}

// AvailableOnly reports whether only available drivers are wanted.
func (q ListDriversQuery) AvailableOnly() bool {
	return q.availableOnly
}

// DriverQueryResponse is the driver read model. The password hash never
// leaves the database through this projection.
type DriverQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Phone       string
	IsAvailable bool
	IsActive    bool
	CreatedAt   time.Time
}
