package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/tracking"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// ErrOrderNotFound is returned when a command references an order that does
// not exist.
var ErrOrderNotFound = errors.New("order not found")

// UpdateOrderStatusCommandHandler moves an order one step along its lifecycle.
// Reaching a terminal status releases the assigned driver; the release is
// idempotent so retried updates stay safe.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	fanout     services.NotificationFanout
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		fanout:     services.NewNotificationFanout(),
	}
}

// Handle processes the status update command.
func (h UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	driverRepo := uow.DriverRepository()
	trackingRepo := uow.TrackingRepository()
	eventRepo := uow.EventRepository()

	theOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}

	if err = theOrder.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if theOrder.Status().IsTerminal() && theOrder.DriverAssigned() {
		if err = driverRepo.Release(ctx, *theOrder.Driver()); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, theOrder); err != nil {
		return err
	}

	entry, err := tracking.NewEntry(kernel.NewUUID(), theOrder.ID(), theOrder.Status(),
		cmd.Message(), cmd.ActorID(), cmd.ActorType())
	if err != nil {
		return err
	}
	if err = trackingRepo.Add(ctx, entry); err != nil {
		return err
	}

	if err = eventRepo.Add(ctx, newOrderEvent(theOrder, services.EventStatusChanged)); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if batch, fanoutErr := h.fanout.StatusChanged(theOrder, entry.Message()); fanoutErr == nil {
		h.notifier.Publish(ctx, batch)
	}

	return nil
}
