package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/tracking"
	"fooddelivery/internal/pkg/guard"
)

// ErrUpdateOrderStatusCommandIsNotConstructed is returned when the command was
// not built through NewUpdateOrderStatusCommand.
var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a generic status update request.
// Only the fixed successor of the order's current status is accepted by the
// handler; cancellation has its own command.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	status    order.Status
	message   string
	actorID   string
	actorType tracking.ActorType

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a status update command.
// An empty message falls back to the status's default message in tracking.
func NewUpdateOrderStatusCommand(
	orderID kernel.UUID,
	status order.Status,
	message string,
	actorID string,
	actorType tracking.ActorType,
) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
		cmd.setActorType(actorType),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	cmd.message = message
	cmd.actorID = actorID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order to update.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the requested target status.
func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}

// Message returns the tracking message, empty for the default.
func (c UpdateOrderStatusCommand) Message() string {
	return c.message
}

// ActorID returns the identifier of whoever requested the change.
func (c UpdateOrderStatusCommand) ActorID() string {
	return c.actorID
}

// ActorType returns who requested the change.
func (c UpdateOrderStatusCommand) ActorType() tracking.ActorType {
	return c.actorType
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *UpdateOrderStatusCommand) setActorType(actorType tracking.ActorType) error {
	if err := actorType.Validate(); err != nil {
		return err
	}
	c.actorType = actorType
	return nil
}
