package commands

import (
	"context"
	"encoding/json"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/tracking"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// ErrRestaurantNotFound is returned when the order references a restaurant
// that does not exist.
var ErrRestaurantNotFound = errors.New("restaurant not found")

// ErrRestaurantClosed is returned when the restaurant is not accepting orders.
var ErrRestaurantClosed = errors.New("restaurant is closed")

// CreateOrderResult is the slice of the new order returned to the caller.
type CreateOrderResult struct {
	OrderID       kernel.UUID
	OrderNumber   string
	Status        order.Status
	EstimatedTime string
	TotalAmount   float64
}

// CreateOrderCommandHandler handles the business logic for placing an order.
// The order, its initial tracking entry, and the outbox event are written in
// one transaction; the notification fan-out runs after commit and is
// best-effort.
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
	notifier   ports.Notifier
	fanout     services.NotificationFanout
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(
	uowFactory CreateOrderUoWFactory,
	notifier ports.Notifier,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		fanout:     services.NewNotificationFanout(),
	}
}

// Handle processes the order creation command.
// Resolves the restaurant, prices the order from its items and the
// restaurant's delivery fee, and persists it in Pending status.
func (h CreateOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateOrderCommand,
) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	restaurantRepo := uow.RestaurantRepository()
	orderRepo := uow.OrderRepository()
	trackingRepo := uow.TrackingRepository()
	eventRepo := uow.EventRepository()

	venue, err := restaurantRepo.Get(ctx, cmd.RestaurantID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return CreateOrderResult{}, ErrRestaurantNotFound
	}
	if err != nil {
		return CreateOrderResult{}, err
	}
	if !venue.IsOpen() {
		return CreateOrderResult{}, ErrRestaurantClosed
	}

	pricing, err := priceOrder(cmd.Items(), venue.DeliveryFee())
	if err != nil {
		return CreateOrderResult{}, err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		order.NewOrderNumber(),
		cmd.Customer(),
		cmd.Address(),
		cmd.Location(),
		cmd.Notes(),
		cmd.PaymentMethod(),
		cmd.Items(),
		pricing,
		venue.ID(),
		venue.DeliveryTime(),
	)
	if err != nil {
		return CreateOrderResult{}, err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return CreateOrderResult{}, err
	}

	entry, err := tracking.NewEntry(kernel.NewUUID(), newOrder.ID(), newOrder.Status(),
		"", "", tracking.ActorSystem)
	if err != nil {
		return CreateOrderResult{}, err
	}
	if err = trackingRepo.Add(ctx, entry); err != nil {
		return CreateOrderResult{}, err
	}

	if err = eventRepo.Add(ctx, newOrderEvent(newOrder, services.EventOrderCreated)); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	if batch, fanoutErr := h.fanout.OrderCreated(newOrder, venue); fanoutErr == nil {
		h.notifier.Publish(ctx, batch)
	}

	return CreateOrderResult{
		OrderID:       newOrder.ID(),
		OrderNumber:   newOrder.OrderNumber(),
		Status:        newOrder.Status(),
		EstimatedTime: newOrder.EstimatedTime(),
		TotalAmount:   newOrder.Pricing().TotalAmount(),
	}, nil
}

// priceOrder derives the order's monetary breakdown: the item subtotal plus
// the restaurant's delivery fee.
func priceOrder(items []order.Item, deliveryFee float64) (order.Pricing, error) {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}
	return order.NewPricing(subtotal, deliveryFee, subtotal+deliveryFee)
}

// newOrderEvent builds the outbox record for an order change.
func newOrderEvent(o *order.Order, eventType string) order.Event {
	payload, _ := json.Marshal(map[string]any{
		"orderId":     o.ID().String(),
		"orderNumber": o.OrderNumber(),
		"status":      o.Status().String(),
		"total":       o.Pricing().TotalAmount(),
	})
	return order.NewEvent(o.ID(), eventType, payload)
}
