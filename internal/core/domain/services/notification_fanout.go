package services

import (
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/notification"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/restaurant"
)

// Event tags carried on fan-out notifications and outbox events.
const (
	EventOrderCreated   = "new_order"
	EventStatusChanged  = "status_update"
	EventDriverAssigned = "driver_assigned"
	EventOrderTaken     = "order_taken"
	EventOrderCancelled = "order_cancelled"
)

// NotificationFanout is a domain service that builds the notification batch
// for each order event. It only decides recipients and wording; writing the
// batch and publishing it happen elsewhere, after the order transaction
// commits, and are best-effort.
//
// Recipient resolution:
//   - the customer is addressed by account id, falling back to the
//     normalized phone for guest orders
//   - the restaurant is addressed by its id
//   - drivers receive broadcasts (nil recipient key): every driver reading
//     the feed sees new and taken orders
//   - the admin dashboard always receives broadcasts
type NotificationFanout struct{}

// NewNotificationFanout creates a new NotificationFanout instance.
func NewNotificationFanout() NotificationFanout {
	return NotificationFanout{}
}

// OrderCreated builds the batch for a freshly placed order: the restaurant,
// all drivers, and the admin dashboard.
func (f NotificationFanout) OrderCreated(
	o *order.Order,
	r *restaurant.Restaurant,
) ([]*notification.Notification, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	restaurantKey := r.ID().String()
	message := fmt.Sprintf("order %s placed, total %.2f", o.OrderNumber(), o.Pricing().TotalAmount())

	return f.build(o.ID(), []recipientSpec{
		{EventOrderCreated, "New order", message, notification.RecipientRestaurant, &restaurantKey},
		{EventOrderCreated, "New order available",
			fmt.Sprintf("order %s is available for pickup", o.OrderNumber()),
			notification.RecipientDriver, nil},
		{EventOrderCreated, "New order", message, notification.RecipientAdmin, nil},
	})
}

// StatusChanged builds the batch for a generic status update: the customer
// and the admin dashboard.
func (f NotificationFanout) StatusChanged(
	o *order.Order,
	message string,
) ([]*notification.Notification, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if message == "" {
		message = o.Status().DefaultMessage()
	}
	customerKey := o.Customer().AddressKey()

	return f.build(o.ID(), []recipientSpec{
		{EventStatusChanged, "Order update", message, notification.RecipientCustomer, &customerKey},
		{EventStatusChanged, "Order update",
			fmt.Sprintf("order %s: %s", o.OrderNumber(), message),
			notification.RecipientAdmin, nil},
	})
}

// DriverAssigned builds the batch for a successful assignment: the customer,
// the remaining drivers (so they drop the order from their feeds), and the
// admin dashboard.
func (f NotificationFanout) DriverAssigned(
	o *order.Order,
	driverName string,
) ([]*notification.Notification, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	customerKey := o.Customer().AddressKey()

	return f.build(o.ID(), []recipientSpec{
		{EventDriverAssigned, "Driver assigned",
			fmt.Sprintf("%s will deliver your order", driverName),
			notification.RecipientCustomer, &customerKey},
		{EventOrderTaken, "Order taken",
			fmt.Sprintf("order %s was taken by another driver", o.OrderNumber()),
			notification.RecipientDriver, nil},
		{EventDriverAssigned, "Driver assigned",
			fmt.Sprintf("order %s assigned to %s", o.OrderNumber(), driverName),
			notification.RecipientAdmin, nil},
	})
}

// OrderCancelled builds the batch for a cancellation: the customer only.
func (f NotificationFanout) OrderCancelled(
	o *order.Order,
	reason string,
) ([]*notification.Notification, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if reason == "" {
		reason = order.Cancelled.DefaultMessage()
	}
	customerKey := o.Customer().AddressKey()

	return f.build(o.ID(), []recipientSpec{
		{EventOrderCancelled, "Order cancelled", reason, notification.RecipientCustomer, &customerKey},
	})
}

type recipientSpec struct {
	eventType     string
	title         string
	message       string
	recipientType notification.RecipientType
	recipientKey  *string
}

func (f NotificationFanout) build(
	orderID kernel.UUID,
	specs []recipientSpec,
) ([]*notification.Notification, error) {
	batch := make([]*notification.Notification, 0, len(specs))
	for _, spec := range specs {
		n, err := notification.NewNotification(kernel.NewUUID(), spec.eventType, spec.title,
			spec.message, spec.recipientType, spec.recipientKey, orderID)
		if err != nil {
			return nil, err
		}
		batch = append(batch, n)
	}
	return batch, nil
}
