package commands_test

import (
	"errors"
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/notification"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/restaurant"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateOrderCommand(t *testing.T, restaurantID kernel.UUID) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		testCustomer(t),
		"221B Baker Street",
		nil,
		"ring the bell",
		order.PaymentCash,
		testItems(),
		restaurantID,
	)
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	cmd := newCreateOrderCommand(t, restaurantID)
	venue := testRestaurant(t, restaurantID)

	orderRepo := new(MockOrderRepository)
	restaurantRepo := new(MockRestaurantRepository)
	trackingRepo := new(MockTrackingRepository)
	eventRepo := new(MockEventRepository)
	uow := new(MockCreateOrderUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("TrackingRepository").Return(trackingRepo).Once(),
		uow.On("EventRepository").Return(eventRepo).Once(),
		restaurantRepo.On("Get", ctx, restaurantID).Return(venue, nil).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		trackingRepo.On("Add", ctx, mock.AnythingOfType("*tracking.Entry")).Return(nil).Once(),
		eventRepo.On("Add", ctx, mock.AnythingOfType("order.Event")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("Publish", ctx, mock.AnythingOfType("[]*notification.Notification")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, notifier)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, cmd.OrderID(), result.OrderID)
	assert.NotEmpty(t, result.OrderNumber)
	assert.Equal(t, order.Pending, result.Status)
	assert.Equal(t, "30-45 min", result.EstimatedTime)
	assert.InDelta(t, 32.5, result.TotalAmount, 0.001)

	orderRepo.AssertExpectations(t)
	restaurantRepo.AssertExpectations(t)
	trackingRepo.AssertExpectations(t)
	eventRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_FansOutToRestaurantDriversAndAdmin(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	cmd := newCreateOrderCommand(t, restaurantID)
	venue := testRestaurant(t, restaurantID)

	orderRepo := new(MockOrderRepository)
	restaurantRepo := new(MockRestaurantRepository)
	trackingRepo := new(MockTrackingRepository)
	eventRepo := new(MockEventRepository)
	uow := new(MockCreateOrderUoW)
	notifier := new(MockNotifier)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RestaurantRepository").Return(restaurantRepo).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("TrackingRepository").Return(trackingRepo).Once()
	uow.On("EventRepository").Return(eventRepo).Once()
	restaurantRepo.On("Get", ctx, restaurantID).Return(venue, nil).Once()
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	trackingRepo.On("Add", ctx, mock.AnythingOfType("*tracking.Entry")).Return(nil).Once()
	eventRepo.On("Add", ctx, mock.AnythingOfType("order.Event")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	notifier.On("Publish", ctx, mock.AnythingOfType("[]*notification.Notification")).Once()

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, notifier)
	_, err := handler.Handle(ctx, cmd)
	require.NoError(t, err)

	batch := notifier.Calls[0].Arguments[1].([]*notification.Notification)
	require.Len(t, batch, 3)

	recipients := make(map[notification.RecipientType]*notification.Notification, len(batch))
	for _, n := range batch {
		recipients[n.RecipientType()] = n
	}
	require.Contains(t, recipients, notification.RecipientRestaurant)
	require.Contains(t, recipients, notification.RecipientDriver)
	require.Contains(t, recipients, notification.RecipientAdmin)

	require.NotNil(t, recipients[notification.RecipientRestaurant].RecipientKey())
	assert.Equal(t, restaurantID.String(), *recipients[notification.RecipientRestaurant].RecipientKey())
	assert.True(t, recipients[notification.RecipientDriver].IsBroadcast())
	assert.True(t, recipients[notification.RecipientAdmin].IsBroadcast())
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly

	factory := new(MockCreateOrderUoWFactory)
	notifier := new(MockNotifier)
	handler := commands.NewCreateOrderCommandHandler(factory, notifier)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_RestaurantNotFound(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	cmd := newCreateOrderCommand(t, restaurantID)

	restaurantRepo := new(MockRestaurantRepository)
	orderRepo := new(MockOrderRepository)
	trackingRepo := new(MockTrackingRepository)
	eventRepo := new(MockEventRepository)
	uow := new(MockCreateOrderUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("TrackingRepository").Return(trackingRepo).Once(),
		uow.On("EventRepository").Return(eventRepo).Once(),
		restaurantRepo.On("Get", ctx, restaurantID).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, notifier)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRestaurantNotFound)
	notifier.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_RestaurantClosed(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	cmd := newCreateOrderCommand(t, restaurantID)

	closedVenue, err := restaurant.RestoreRestaurant(
		restaurantID, "Mario's", "+15550188", "12 Dock Lane", 5, "30-45 min", false)
	require.NoError(t, err)

	restaurantRepo := new(MockRestaurantRepository)
	orderRepo := new(MockOrderRepository)
	trackingRepo := new(MockTrackingRepository)
	eventRepo := new(MockEventRepository)
	uow := new(MockCreateOrderUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("TrackingRepository").Return(trackingRepo).Once(),
		uow.On("EventRepository").Return(eventRepo).Once(),
		restaurantRepo.On("Get", ctx, restaurantID).Return(closedVenue, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, notifier)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRestaurantClosed)
}

func TestCreateOrderCommandHandler_Handle_AddOrderError(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	cmd := newCreateOrderCommand(t, restaurantID)
	venue := testRestaurant(t, restaurantID)

	restaurantRepo := new(MockRestaurantRepository)
	orderRepo := new(MockOrderRepository)
	trackingRepo := new(MockTrackingRepository)
	eventRepo := new(MockEventRepository)
	uow := new(MockCreateOrderUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("TrackingRepository").Return(trackingRepo).Once(),
		uow.On("EventRepository").Return(eventRepo).Once(),
		restaurantRepo.On("Get", ctx, restaurantID).Return(venue, nil).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Return(errors.New("insert error")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, notifier)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "insert error")
	notifier.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()
	cmd := newCreateOrderCommand(t, restaurantID)
	venue := testRestaurant(t, restaurantID)

	restaurantRepo := new(MockRestaurantRepository)
	orderRepo := new(MockOrderRepository)
	trackingRepo := new(MockTrackingRepository)
	eventRepo := new(MockEventRepository)
	uow := new(MockCreateOrderUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("TrackingRepository").Return(trackingRepo).Once(),
		uow.On("EventRepository").Return(eventRepo).Once(),
		restaurantRepo.On("Get", ctx, restaurantID).Return(venue, nil).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		trackingRepo.On("Add", ctx, mock.AnythingOfType("*tracking.Entry")).Return(nil).Once(),
		eventRepo.On("Add", ctx, mock.AnythingOfType("order.Event")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, notifier)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "commit error")
	notifier.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}
