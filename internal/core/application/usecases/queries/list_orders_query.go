// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves orders matching optional filters. All filters are
// combined with AND; the zero filter set returns every order, newest first.
//
// The available filter is the driver feed: confirmed orders with no driver
// assigned yet.
type ListOrdersQuery struct {
	status        *order.Status
	driverID      *kernel.UUID
	restaurantID  *kernel.UUID
	availableOnly bool

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates an order listing query. Nil filters are skipped.
func NewListOrdersQuery(
	status *order.Status,
	driverID *kernel.UUID,
	restaurantID *kernel.UUID,
	availableOnly bool,
) (ListOrdersQuery, error) {
	q := ListOrdersQuery{
		availableOnly: availableOnly,
		guard:         guard.NewConstructorGuard(),
	}

	if status != nil {
		if err := status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
		q.status = status
	}
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
		q.driverID = driverID
	}
	if restaurantID != nil {
		if err := restaurantID.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
		q.restaurantID = restaurantID
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the status filter, nil when unset.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

// DriverID returns the driver filter, nil when unset.
func (q ListOrdersQuery) DriverID() *kernel.UUID {
	return q.driverID
}

// RestaurantID returns the restaurant filter, nil when unset.
func (q ListOrdersQuery) RestaurantID() *kernel.UUID {
	return q.restaurantID
}

// AvailableOnly reports whether only unclaimed confirmed orders are wanted.
func (q ListOrdersQuery) AvailableOnly() bool {
	return q.availableOnly
}

// OrderQueryResponse is the order read model shared by the order queries.
type OrderQueryResponse struct {
	ID              kernel.UUID
	OrderNumber     string
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	DeliveryAddress string
	Latitude        *float64
	Longitude       *float64
	Notes           string
	PaymentMethod   string
	Status          string
	Items           []order.Item
	Subtotal        float64
	DeliveryFee     float64
	TotalAmount     float64
	DriverEarnings  float64
	RestaurantID    kernel.UUID
	DriverID        *kernel.UUID
	EstimatedTime   string
	CreatedAt       time.Time
}
