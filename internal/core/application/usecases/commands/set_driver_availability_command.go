package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

// ErrSetDriverAvailabilityCommandIsNotConstructed is returned when the command
// was not built through NewSetDriverAvailabilityCommand.
var ErrSetDriverAvailabilityCommandIsNotConstructed = errors.New(
	"SetDriverAvailabilityCommand must be created via NewSetDriverAvailabilityCommand constructor",
)

// SetDriverAvailabilityCommand toggles a driver's availability for new orders.
type SetDriverAvailabilityCommand struct { //nolint:recvcheck //using for validation
	driverID    kernel.UUID
	isAvailable bool

	guard guard.ConstructorGuard
}

// NewSetDriverAvailabilityCommand creates an availability command.
func NewSetDriverAvailabilityCommand(
	driverID kernel.UUID,
	isAvailable bool,
) (SetDriverAvailabilityCommand, error) {
	cmd := SetDriverAvailabilityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setDriverID(driverID); err != nil {
		return SetDriverAvailabilityCommand{}, err
	}

	cmd.isAvailable = isAvailable

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetDriverAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetDriverAvailabilityCommandIsNotConstructed)
}

// DriverID returns the driver to update.
func (c SetDriverAvailabilityCommand) DriverID() kernel.UUID {
	return c.driverID
}

// IsAvailable returns the requested availability.
func (c SetDriverAvailabilityCommand) IsAvailable() bool {
	return c.isAvailable
}

func (c *SetDriverAvailabilityCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}
