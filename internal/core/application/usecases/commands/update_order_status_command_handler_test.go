package commands_test

import (
	"errors"
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/notification"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/tracking"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUpdateStatusCommand(
	t *testing.T,
	orderID kernel.UUID,
	status order.Status,
) commands.UpdateOrderStatusCommand {
	t.Helper()
	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status, "", "", tracking.ActorRestaurant)
	require.NoError(t, err)
	return cmd
}

func TestUpdateOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	testOrder := testPendingOrder(t, kernel.NewUUID())
	cmd := newUpdateStatusCommand(t, testOrder.ID(), order.Confirmed)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	trackingRepo := new(MockTrackingRepository)
	eventRepo := new(MockEventRepository)
	uow := new(MockOrderUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		uow.On("TrackingRepository").Return(trackingRepo).Once(),
		uow.On("EventRepository").Return(eventRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		trackingRepo.On("Add", ctx, mock.AnythingOfType("*tracking.Entry")).Return(nil).Once(),
		eventRepo.On("Add", ctx, mock.AnythingOfType("order.Event")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("Publish", ctx, mock.AnythingOfType("[]*notification.Notification")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderStatusCommandHandler(factory, notifier)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Confirmed, testOrder.Status())
	driverRepo.AssertNotCalled(t, "Release", mock.Anything, mock.Anything)

	batch := notifier.Calls[0].Arguments[1].([]*notification.Notification)
	require.Len(t, batch, 2)
	recipients := make(map[notification.RecipientType]*notification.Notification, len(batch))
	for _, n := range batch {
		recipients[n.RecipientType()] = n
	}
	require.Contains(t, recipients, notification.RecipientCustomer)
	require.Contains(t, recipients, notification.RecipientAdmin)

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_DeliveredReleasesDriver(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	testOrder := assignedOrder(t, kernel.NewUUID(), driverID)
	require.NoError(t, testOrder.ChangeStatus(order.Ready))
	require.NoError(t, testOrder.ChangeStatus(order.PickedUp))
	require.NoError(t, testOrder.ChangeStatus(order.OnWay))
	cmd := newUpdateStatusCommand(t, testOrder.ID(), order.Delivered)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	trackingRepo := new(MockTrackingRepository)
	eventRepo := new(MockEventRepository)
	uow := new(MockOrderUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		uow.On("TrackingRepository").Return(trackingRepo).Once(),
		uow.On("EventRepository").Return(eventRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		driverRepo.On("Release", ctx, driverID).Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		trackingRepo.On("Add", ctx, mock.AnythingOfType("*tracking.Entry")).Return(nil).Once(),
		eventRepo.On("Add", ctx, mock.AnythingOfType("order.Event")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("Publish", ctx, mock.AnythingOfType("[]*notification.Notification")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderStatusCommandHandler(factory, notifier)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Delivered, testOrder.Status())
	driverRepo.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.UpdateOrderStatusCommand{} // not constructed properly

	factory := new(MockOrderUoWFactory)
	notifier := new(MockNotifier)
	handler := commands.NewUpdateOrderStatusCommandHandler(factory, notifier)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrUpdateOrderStatusCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestUpdateOrderStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd := newUpdateStatusCommand(t, orderID, order.Confirmed)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	trackingRepo := new(MockTrackingRepository)
	eventRepo := new(MockEventRepository)
	uow := new(MockOrderUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		uow.On("TrackingRepository").Return(trackingRepo).Once(),
		uow.On("EventRepository").Return(eventRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderStatusCommandHandler(factory, notifier)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrOrderNotFound)
}

func TestUpdateOrderStatusCommandHandler_Handle_SkippedStatusRejected(t *testing.T) {
	ctx := t.Context()
	testOrder := testPendingOrder(t, kernel.NewUUID())
	cmd := newUpdateStatusCommand(t, testOrder.ID(), order.Ready) // pending can only go to confirmed

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	trackingRepo := new(MockTrackingRepository)
	eventRepo := new(MockEventRepository)
	uow := new(MockOrderUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		uow.On("TrackingRepository").Return(trackingRepo).Once(),
		uow.On("EventRepository").Return(eventRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderStatusCommandHandler(factory, notifier)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, order.Pending, testOrder.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateOrderStatusCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	testOrder := testPendingOrder(t, kernel.NewUUID())
	cmd := newUpdateStatusCommand(t, testOrder.ID(), order.Confirmed)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	trackingRepo := new(MockTrackingRepository)
	eventRepo := new(MockEventRepository)
	uow := new(MockOrderUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		uow.On("TrackingRepository").Return(trackingRepo).Once(),
		uow.On("EventRepository").Return(eventRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		trackingRepo.On("Add", ctx, mock.AnythingOfType("*tracking.Entry")).Return(nil).Once(),
		eventRepo.On("Add", ctx, mock.AnythingOfType("order.Event")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateOrderStatusCommandHandler(factory, notifier)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "commit error")
	notifier.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}
