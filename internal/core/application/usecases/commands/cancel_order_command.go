package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/tracking"
	"fooddelivery/internal/pkg/guard"
)

// ErrCancelOrderCommandIsNotConstructed is returned when the command was not
// built through NewCancelOrderCommand.
var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a request to cancel an order.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	reason    string
	actorID   string
	actorType tracking.ActorType

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a cancellation command.
// An empty reason falls back to the cancelled status's default message.
func NewCancelOrderCommand(
	orderID kernel.UUID,
	reason string,
	actorID string,
	actorType tracking.ActorType,
) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActorType(actorType),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	cmd.reason = reason
	cmd.actorID = actorID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the order to cancel.
func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Reason returns the cancellation reason, empty for the default.
func (c CancelOrderCommand) Reason() string {
	return c.reason
}

// ActorID returns the identifier of whoever requested the cancellation.
func (c CancelOrderCommand) ActorID() string {
	return c.actorID
}

// ActorType returns who requested the cancellation.
func (c CancelOrderCommand) ActorType() tracking.ActorType {
	return c.actorType
}

func (c *CancelOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CancelOrderCommand) setActorType(actorType tracking.ActorType) error {
	if err := actorType.Validate(); err != nil {
		return err
	}
	c.actorType = actorType
	return nil
}
