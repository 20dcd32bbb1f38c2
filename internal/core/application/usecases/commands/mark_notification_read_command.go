package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

// ErrMarkNotificationReadCommandIsNotConstructed is returned when the command
// was not built through NewMarkNotificationReadCommand.
var ErrMarkNotificationReadCommandIsNotConstructed = errors.New(
	"MarkNotificationReadCommand must be created via NewMarkNotificationReadCommand constructor",
)

// MarkNotificationReadCommand marks a notification as read.
type MarkNotificationReadCommand struct { //nolint:recvcheck //using for validation
	notificationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkNotificationReadCommand creates a mark-read command.
func NewMarkNotificationReadCommand(notificationID kernel.UUID) (MarkNotificationReadCommand, error) {
	cmd := MarkNotificationReadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setNotificationID(notificationID); err != nil {
		return MarkNotificationReadCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkNotificationReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkNotificationReadCommandIsNotConstructed)
}

// NotificationID returns the notification to mark as read.
func (c MarkNotificationReadCommand) NotificationID() kernel.UUID {
	return c.notificationID
}

func (c *MarkNotificationReadCommand) setNotificationID(notificationID kernel.UUID) error {
	if err := notificationID.Validate(); err != nil {
		return err
	}
	c.notificationID = notificationID
	return nil
}
