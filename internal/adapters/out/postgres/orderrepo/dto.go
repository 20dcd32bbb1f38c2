// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and database
// representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The item collection travels as a JSON column; everything else stays flat so
// the status and assignment filters remain plain indexed columns.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber     string    `gorm:"uniqueIndex"`
	CustomerName    string
	CustomerPhone   string `gorm:"index"`
	CustomerEmail   string
	CustomerID      *uuid.UUID `gorm:"type:uuid"`
	DeliveryAddress string
	Latitude        *float64
	Longitude       *float64
	Notes           string
	PaymentMethod   int
	Status          int `gorm:"index"`
	Items           datatypes.JSON
	Subtotal        float64
	DeliveryFee     float64
	TotalAmount     float64
	DriverEarnings  float64
	RestaurantID    uuid.UUID  `gorm:"type:uuid;index"`
	DriverID        *uuid.UUID `gorm:"type:uuid;index"`
	EstimatedTime   string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	itemsJSON, err := json.Marshal(aggregate.Items())
	if err != nil {
		return OrderDTO{}, err
	}

	var customerID *uuid.UUID
	if id := aggregate.Customer().ID(); id != nil {
		raw := id.Bytes()
		customerID = &raw
	}

	var driverID *uuid.UUID
	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	var latitude, longitude *float64
	if loc := aggregate.Location(); loc != nil {
		lat, lng := loc.Lat(), loc.Lng()
		latitude, longitude = &lat, &lng
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		OrderNumber:     aggregate.OrderNumber(),
		CustomerName:    aggregate.Customer().Name(),
		CustomerPhone:   aggregate.Customer().Phone(),
		CustomerEmail:   aggregate.Customer().Email(),
		CustomerID:      customerID,
		DeliveryAddress: aggregate.DeliveryAddress(),
		Latitude:        latitude,
		Longitude:       longitude,
		Notes:           aggregate.Notes(),
		PaymentMethod:   int(aggregate.PaymentMethod()),
		Status:          int(aggregate.Status()),
		Items:           datatypes.JSON(itemsJSON),
		Subtotal:        aggregate.Pricing().Subtotal(),
		DeliveryFee:     aggregate.Pricing().DeliveryFee(),
		TotalAmount:     aggregate.Pricing().TotalAmount(),
		DriverEarnings:  aggregate.DriverEarnings(),
		RestaurantID:    aggregate.RestaurantID().Bytes(),
		DriverID:        driverID,
		EstimatedTime:   aggregate.EstimatedTime(),
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status, assignment,
// and the recorded commission using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var customerID *kernel.UUID
	if dto.CustomerID != nil {
		cID, customerErr := kernel.UUIDFromBytes((*dto.CustomerID)[:])
		if customerErr != nil {
			return nil, customerErr
		}

		customerID = &cID
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}

		driverID = &dID
	}

	customer, err := order.NewCustomer(
		dto.CustomerName, dto.CustomerPhone, dto.CustomerEmail, customerID)
	if err != nil {
		return nil, err
	}

	var location *kernel.GeoPoint
	if dto.Latitude != nil && dto.Longitude != nil {
		point, locationErr := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if locationErr != nil {
			return nil, locationErr
		}

		location = &point
	}

	var items []order.Item
	if len(dto.Items) > 0 {
		if err = json.Unmarshal(dto.Items, &items); err != nil {
			return nil, err
		}
	}

	pricing, err := order.NewPricing(dto.Subtotal, dto.DeliveryFee, dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		customer,
		dto.DeliveryAddress,
		location,
		dto.Notes,
		order.PaymentMethod(dto.PaymentMethod),
		order.Status(dto.Status),
		items,
		pricing,
		dto.DriverEarnings,
		restaurantID,
		driverID,
		dto.EstimatedTime,
	)
}
