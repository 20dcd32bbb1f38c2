package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/guard"
)

// ErrCreateOrderCommandIsNotConstructed is returned when the command was not
// built through NewCreateOrderCommand.
var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a new order.
// Field-level validation (required customer fields, non-empty items, item
// shape) happens when the domain objects are built in the handler, so a
// caller sees every problem enumerated in one error.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), customer, "12 Baker Street",
//	    nil, "", order.PaymentCash, items, restaurantID)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	result, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	customer      order.Customer
	address       string
	location      *kernel.GeoPoint
	notes         string
	paymentMethod order.PaymentMethod
	items         []order.Item
	restaurantID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customer order.Customer,
	address string,
	location *kernel.GeoPoint,
	notes string,
	paymentMethod order.PaymentMethod,
	items []order.Item,
	restaurantID kernel.UUID,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomer(customer),
		cmd.setRestaurantID(restaurantID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.address = address
	cmd.location = location
	cmd.notes = notes
	cmd.paymentMethod = paymentMethod
	cmd.items = items

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the id the new order will be created with.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Customer returns the ordering customer's contact data.
func (c CreateOrderCommand) Customer() order.Customer {
	return c.customer
}

// Address returns the delivery address.
func (c CreateOrderCommand) Address() string {
	return c.address
}

// Location returns the optional delivery coordinates.
func (c CreateOrderCommand) Location() *kernel.GeoPoint {
	return c.location
}

// Notes returns the free-text order notes.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

// PaymentMethod returns how the customer settles the order.
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// Items returns the requested item lines.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

// RestaurantID returns the restaurant the order is placed with.
func (c CreateOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomer(customer order.Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	c.restaurantID = restaurantID
	return nil
}
