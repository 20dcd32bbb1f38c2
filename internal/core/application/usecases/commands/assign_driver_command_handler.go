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

// ErrDriverNotFound is returned when a command references a driver that does
// not exist.
var ErrDriverNotFound = errors.New("driver not found")

// AssignDriverCommandHandler handles a driver's claim on an order.
//
// The precondition reads (order has no driver, driver is available) give
// callers precise errors, but they race against concurrent claims. The
// writes that follow are conditional updates inside one transaction: the
// order claim guards on driver_id IS NULL and the driver claim guards on
// is_available, so of several concurrent claims exactly one commits and the
// rest surface a ConflictError.
type AssignDriverCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	fanout     services.NotificationFanout
}

// NewAssignDriverCommandHandler creates a handler for driver assignment.
func NewAssignDriverCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		fanout:     services.NewNotificationFanout(),
	}
}

// Handle processes the assignment command.
func (h AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
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

	theDriver, err := driverRepo.Get(ctx, cmd.DriverID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrDriverNotFound
	}
	if err != nil {
		return err
	}

	// Domain-level checks run first so callers get precise errors; the
	// conditional repository updates below are what make the claim atomic.
	if err = theOrder.Assign(theDriver.ID()); err != nil {
		return err
	}
	if err = theDriver.MarkBusy(); err != nil {
		return err
	}

	if err = orderRepo.Claim(ctx, theOrder.ID(), theDriver.ID()); err != nil {
		return err
	}
	if err = driverRepo.MarkBusy(ctx, theDriver.ID()); err != nil {
		return err
	}

	entry, err := tracking.NewEntry(kernel.NewUUID(), theOrder.ID(), theOrder.Status(),
		"", theDriver.ID().String(), tracking.ActorDriver)
	if err != nil {
		return err
	}
	if err = trackingRepo.Add(ctx, entry); err != nil {
		return err
	}

	if err = eventRepo.Add(ctx, newOrderEvent(theOrder, services.EventDriverAssigned)); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if batch, fanoutErr := h.fanout.DriverAssigned(theOrder, theDriver.Name()); fanoutErr == nil {
		h.notifier.Publish(ctx, batch)
	}

	return nil
}
