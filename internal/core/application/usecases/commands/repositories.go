// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fooddelivery/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// RestaurantRepoFactory provides access to the restaurant repository within a transaction.
	RestaurantRepoFactory interface {
		RestaurantRepository() ports.RestaurantRepository
	}

	// NotificationRepoFactory provides access to the notification repository within a transaction.
	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// TrackingRepoFactory provides access to the tracking repository within a transaction.
	TrackingRepoFactory interface {
		TrackingRepository() ports.TrackingRepository
	}

	// EventRepoFactory provides access to the outbox event repository within a transaction.
	EventRepoFactory interface {
		EventRepository() ports.EventRepository
	}

	// CreateOrderUoW manages the order creation transaction: the new order,
	// the restaurant lookup, the initial tracking entry, and the outbox event.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		RestaurantRepoFactory
		TrackingRepoFactory
		EventRepoFactory
	}

	// CreateOrderUoWFactory creates new order-creation unit of work instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// OrderUoW manages transactions that move an order through its lifecycle:
	// status updates, assignment, and cancellation all touch the order, the
	// driver, the tracking history, and the outbox together.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		DriverRepoFactory
		TrackingRepoFactory
		EventRepoFactory
	}

	// OrderUoWFactory creates new order-lifecycle unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DriverUoW manages transactions for driver-only operations.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	// DriverUoWFactory creates new driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// NotificationUoW manages transactions for notification-only operations.
	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	// NotificationUoWFactory creates new notification unit of work instances.
	NotificationUoWFactory interface {
		Create() NotificationUoW
	}
)
