// Package telemetry exposes the service's Prometheus metrics. Counters are
// registered on the default registry and served by the /metrics endpoint.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OrdersCreated counts successfully placed orders.
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fooddelivery_orders_created_total",
		Help: "Number of orders placed.",
	})

	// OrdersAssigned counts successful driver assignments.
	OrdersAssigned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fooddelivery_orders_assigned_total",
		Help: "Number of orders assigned to a driver.",
	})

	// OrdersDelivered counts orders that reached the delivered state.
	OrdersDelivered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fooddelivery_orders_delivered_total",
		Help: "Number of orders delivered.",
	})

	// OrdersCancelled counts cancelled orders.
	OrdersCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fooddelivery_orders_cancelled_total",
		Help: "Number of orders cancelled.",
	})

	// AssignmentConflicts counts assignment attempts lost to a concurrent claim.
	AssignmentConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fooddelivery_assignment_conflicts_total",
		Help: "Number of driver assignments rejected by a concurrent claim.",
	})

	// NotificationFailures counts fan-out batches that could not be stored.
	NotificationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fooddelivery_notification_failures_total",
		Help: "Number of notification batches dropped on storage failure.",
	})

	// EventsRelayed counts outbox events published to the broker.
	EventsRelayed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fooddelivery_events_relayed_total",
		Help: "Number of order events relayed to the message broker.",
	})
)
