// Package restaurantrepo provides data transfer objects and mapping functions
// for restaurant persistence.
package restaurantrepo

import (
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
)

// RestaurantDTO represents the database structure for persisting restaurants.
type RestaurantDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Phone        string
	Address      string
	DeliveryFee  float64
	DeliveryTime string
	IsOpen       bool
}

// TableName specifies the database table name for restaurant entities.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// fromDomain converts a restaurant domain aggregate to its database representation.
func fromDomain(aggregate *restaurant.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Phone:        aggregate.Phone(),
		Address:      aggregate.Address(),
		DeliveryFee:  aggregate.DeliveryFee(),
		DeliveryTime: aggregate.DeliveryTime(),
		IsOpen:       aggregate.IsOpen(),
	}
}

// toDomain converts a database DTO to a restaurant domain aggregate.
func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreRestaurant(
		id,
		dto.Name,
		dto.Phone,
		dto.Address,
		dto.DeliveryFee,
		dto.DeliveryTime,
		dto.IsOpen,
	)
}
