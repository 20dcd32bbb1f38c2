package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrListRestaurantsQueryIsNotConstructed = errors.New(
	"ListRestaurantsQuery must be created via NewListRestaurantsQuery constructor",
)

// ListRestaurantsQuery retrieves all restaurants.
type ListRestaurantsQuery struct {
	guard guard.ConstructorGuard
}

// NewListRestaurantsQuery creates a restaurant listing query.
func NewListRestaurantsQuery() ListRestaurantsQuery {
	return ListRestaurantsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrListRestaurantsQueryIsNotConstructed)
}

// RestaurantQueryResponse is the restaurant read model.
type RestaurantQueryResponse struct {
	ID           kernel.UUID
	Name         string
	Phone        string
	Address      string
	DeliveryFee  float64
	DeliveryTime string
	IsOpen       bool
}
