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

// CancelOrderCommandHandler cancels an order from any non-terminal status.
// A driver already assigned to the order is released in the same transaction.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	fanout     services.NotificationFanout
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		fanout:     services.NewNotificationFanout(),
	}
}

// Handle processes the cancellation command.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	if err = theOrder.Cancel(); err != nil {
		return err
	}

	if theOrder.DriverAssigned() {
		if err = driverRepo.Release(ctx, *theOrder.Driver()); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, theOrder); err != nil {
		return err
	}

	entry, err := tracking.NewEntry(kernel.NewUUID(), theOrder.ID(), theOrder.Status(),
		cmd.Reason(), cmd.ActorID(), cmd.ActorType())
	if err != nil {
		return err
	}
	if err = trackingRepo.Add(ctx, entry); err != nil {
		return err
	}

	if err = eventRepo.Add(ctx, newOrderEvent(theOrder, services.EventOrderCancelled)); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if batch, fanoutErr := h.fanout.OrderCancelled(theOrder, entry.Message()); fanoutErr == nil {
		h.notifier.Publish(ctx, batch)
	}

	return nil
}
