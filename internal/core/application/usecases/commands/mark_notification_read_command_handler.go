package commands

import (
	"context"
	"errors"

	"fooddelivery/internal/pkg/errs"
)

// ErrNotificationNotFound is returned when a command references a notification
// that does not exist.
var ErrNotificationNotFound = errors.New("notification not found")

// MarkNotificationReadCommandHandler handles read receipts for notifications.
// Marking an already-read notification again is a no-op.
type MarkNotificationReadCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewMarkNotificationReadCommandHandler creates a handler for read receipts.
func NewMarkNotificationReadCommandHandler(
	uowFactory NotificationUoWFactory,
) MarkNotificationReadCommandHandler {
	return MarkNotificationReadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the mark-read command.
func (h MarkNotificationReadCommandHandler) Handle(
	ctx context.Context,
	cmd MarkNotificationReadCommand,
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

	notificationRepo := uow.NotificationRepository()

	theNotification, err := notificationRepo.Get(ctx, cmd.NotificationID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNotificationNotFound
	}
	if err != nil {
		return err
	}

	theNotification.MarkRead()

	if err = notificationRepo.Update(ctx, theNotification); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
