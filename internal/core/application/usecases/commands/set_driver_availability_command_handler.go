package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/pkg/errs"
)

// SetDriverAvailabilityCommandHandler handles driver availability toggles.
type SetDriverAvailabilityCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewSetDriverAvailabilityCommandHandler creates a handler for availability updates.
func NewSetDriverAvailabilityCommandHandler(
	uowFactory DriverUoWFactory,
) SetDriverAvailabilityCommandHandler {
	return SetDriverAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the availability command.
func (h SetDriverAvailabilityCommandHandler) Handle(
	ctx context.Context,
	cmd SetDriverAvailabilityCommand,
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

	driverRepo := uow.DriverRepository()

	theDriver, err := driverRepo.Get(ctx, cmd.DriverID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrDriverNotFound
	}
	if err != nil {
		return err
	}

	if err = theDriver.SetAvailability(cmd.IsAvailable()); err != nil {
		return err
	}

	if err = driverRepo.Update(ctx, theDriver); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
