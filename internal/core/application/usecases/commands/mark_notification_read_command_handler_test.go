package commands_test

import (
	"errors"
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/notification"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testNotification(t *testing.T, id kernel.UUID) *notification.Notification {
	t.Helper()
	n, err := notification.NewNotification(
		id, "status_update", "Order update", "order confirmed, preparing",
		notification.RecipientCustomer, nil, kernel.NewUUID())
	require.NoError(t, err)
	return n
}

func TestMarkNotificationReadCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	notificationID := kernel.NewUUID()
	theNotification := testNotification(t, notificationID)
	cmd, err := commands.NewMarkNotificationReadCommand(notificationID)
	require.NoError(t, err)

	notificationRepo := new(MockNotificationRepository)
	uow := new(MockNotificationUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NotificationRepository").Return(notificationRepo).Once(),
		notificationRepo.On("Get", ctx, notificationID).Return(theNotification, nil).Once(),
		notificationRepo.On("Update", ctx, mock.AnythingOfType("*notification.Notification")).
			Return(nil).
			Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockNotificationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkNotificationReadCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, theNotification.IsRead())
	notificationRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestMarkNotificationReadCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.MarkNotificationReadCommand{} // not constructed properly

	factory := new(MockNotificationUoWFactory)
	handler := commands.NewMarkNotificationReadCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrMarkNotificationReadCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestMarkNotificationReadCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	notificationID := kernel.NewUUID()
	cmd, err := commands.NewMarkNotificationReadCommand(notificationID)
	require.NoError(t, err)

	notificationRepo := new(MockNotificationRepository)
	uow := new(MockNotificationUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NotificationRepository").Return(notificationRepo).Once(),
		notificationRepo.On("Get", ctx, notificationID).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockNotificationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkNotificationReadCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrNotificationNotFound)
}

func TestMarkNotificationReadCommandHandler_Handle_AlreadyRead(t *testing.T) {
	ctx := t.Context()
	notificationID := kernel.NewUUID()
	theNotification := testNotification(t, notificationID)
	theNotification.MarkRead()
	cmd, err := commands.NewMarkNotificationReadCommand(notificationID)
	require.NoError(t, err)

	notificationRepo := new(MockNotificationRepository)
	uow := new(MockNotificationUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NotificationRepository").Return(notificationRepo).Once(),
		notificationRepo.On("Get", ctx, notificationID).Return(theNotification, nil).Once(),
		notificationRepo.On("Update", ctx, mock.AnythingOfType("*notification.Notification")).
			Return(nil).
			Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockNotificationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkNotificationReadCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, theNotification.IsRead())
}

func TestMarkNotificationReadCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	notificationID := kernel.NewUUID()
	theNotification := testNotification(t, notificationID)
	cmd, err := commands.NewMarkNotificationReadCommand(notificationID)
	require.NoError(t, err)

	notificationRepo := new(MockNotificationRepository)
	uow := new(MockNotificationUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NotificationRepository").Return(notificationRepo).Once(),
		notificationRepo.On("Get", ctx, notificationID).Return(theNotification, nil).Once(),
		notificationRepo.On("Update", ctx, mock.AnythingOfType("*notification.Notification")).
			Return(errors.New("update error")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockNotificationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkNotificationReadCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "update error")
}
