package restaurant

import (
	"errors"
	"fmt"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// defaultDeliveryTime is the estimate handed to orders when the restaurant
// has no delivery window configured.
const defaultDeliveryTime = "30-45 min"

// ErrRestaurantIsNotConstructed is returned when using an improperly initialized Restaurant.
var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

// Restaurant is the venue an order is placed with. Orders copy its delivery
// fee and delivery-time window at creation time.
type Restaurant struct {
	id           kernel.UUID
	name         string
	phone        string
	address      string
	deliveryFee  float64
	deliveryTime string
	isOpen       bool

	guard guard.ConstructorGuard
}

// NewRestaurant creates an open Restaurant.
func NewRestaurant(
	id kernel.UUID,
	name string,
	phone string,
	address string,
	deliveryFee float64,
	deliveryTime string,
) (*Restaurant, error) {
	restaurant := &Restaurant{
		isOpen: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		restaurant.setID(id),
		restaurant.setName(name),
		restaurant.setPhone(phone),
		restaurant.setAddress(address),
		restaurant.setDeliveryFee(deliveryFee),
		restaurant.setDeliveryTime(deliveryTime),
	); err != nil {
		return nil, err
	}

	return restaurant, nil
}

// RestoreRestaurant reconstructs a Restaurant from persistent storage.
func RestoreRestaurant(
	id kernel.UUID,
	name string,
	phone string,
	address string,
	deliveryFee float64,
	deliveryTime string,
	isOpen bool,
) (*Restaurant, error) {
	restaurant, err := NewRestaurant(id, name, phone, address, deliveryFee, deliveryTime)
	if err != nil {
		return nil, err
	}

	restaurant.isOpen = isOpen
	return restaurant, nil
}

// Validate checks if the Restaurant was properly constructed.
func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

// IsEqual compares two restaurants by their unique identifiers.
func (r *Restaurant) IsEqual(other *Restaurant) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the restaurant's unique identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// Name returns the restaurant's name.
func (r *Restaurant) Name() string {
	return r.name
}

// Phone returns the restaurant's contact phone.
func (r *Restaurant) Phone() string {
	return r.phone
}

// Address returns the restaurant's address.
func (r *Restaurant) Address() string {
	return r.address
}

// DeliveryFee returns the fee added to orders from this restaurant.
func (r *Restaurant) DeliveryFee() float64 {
	return r.deliveryFee
}

// DeliveryTime returns the delivery window estimate, falling back to the
// default when none is configured.
func (r *Restaurant) DeliveryTime() string {
	if r.deliveryTime == "" {
		return defaultDeliveryTime
	}
	return r.deliveryTime
}

// IsOpen reports whether the restaurant currently accepts orders.
func (r *Restaurant) IsOpen() bool {
	return r.isOpen
}

// SetOpen toggles whether the restaurant accepts orders.
func (r *Restaurant) SetOpen(open bool) {
	r.isOpen = open
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}

func (r *Restaurant) setPhone(phone string) error {
	r.phone = strings.Join(strings.Fields(phone), "")
	return nil
}

func (r *Restaurant) setAddress(address string) error {
	r.address = strings.TrimSpace(address)
	return nil
}

func (r *Restaurant) setDeliveryFee(deliveryFee float64) error {
	if deliveryFee < 0 {
		return errs.NewValueIsInvalidErrorWithCause("deliveryFee",
			fmt.Errorf("%g is negative", deliveryFee))
	}
	r.deliveryFee = deliveryFee
	return nil
}

func (r *Restaurant) setDeliveryTime(deliveryTime string) error {
	r.deliveryTime = strings.TrimSpace(deliveryTime)
	return nil
}
