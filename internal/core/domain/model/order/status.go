package order

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with a fixed forward progression and an
// explicit cancellation path:
//
//	Pending -> Confirmed -> Preparing -> Ready -> PickedUp -> OnWay -> Delivered
//	    └──────────┴───────────┴──────────┴─────────┴──────────┘
//	                     (Cancelled, via the cancel operation only)
//
// Delivered and Cancelled are terminal. A generic status update may only move
// an order to the fixed successor of its current status; Cancelled is reachable
// exclusively through Cancel so the two paths stay distinguishable in tracking.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// The restaurant has not confirmed it yet.
	Pending

	// Confirmed indicates the restaurant accepted the order.
	// Confirmed orders without a driver form the available-orders pool.
	Confirmed

	// Preparing indicates the kitchen is working on the order.
	// Driver assignment moves an order here.
	Preparing

	// Ready indicates the order is packed and waiting for pickup.
	Ready

	// PickedUp indicates the driver collected the order from the restaurant.
	PickedUp

	// OnWay indicates the driver is en route to the customer.
	OnWay

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was aborted. Terminal, reachable from
	// any non-terminal status via the cancel operation.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Confirmed: "confirmed",
		Preparing: "preparing",
		Ready:     "ready",
		PickedUp:  "picked_up",
		OnWay:     "on_way",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Confirmed: "confirmed",
		Preparing: "preparing",
		Ready:     "ready",
		PickedUp:  "picked_up",
		OnWay:     "on_way",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// getStatusMessages is the fixed status-to-message table used for tracking
// entries and customer notifications when no explicit message is supplied.
func getStatusMessages() map[Status]string {
	//nolint:exhaustive // Unknown has no message
	return map[Status]string{
		Pending:   "order received, awaiting confirmation",
		Confirmed: "order confirmed, preparing",
		Preparing: "order is being prepared",
		Ready:     "order ready for pickup",
		PickedUp:  "order picked up by driver",
		OnWay:     "driver en route",
		Delivered: "order delivered successfully",
		Cancelled: "order cancelled",
	}
}

// StatusFromString parses the wire representation ("pending", "picked_up", ...)
// into a Status. Unrecognized values yield a ValueIsInvalid error.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a known order status", s))
}

// Validate checks that the Status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// DefaultMessage returns the human-readable message for the status from the
// fixed table, or a generic fallback for unknown values.
func (s Status) DefaultMessage() string {
	if msg, ok := getStatusMessages()[s]; ok {
		return msg
	}
	return fmt.Sprintf("order status updated to %s", s)
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Next returns the fixed successor in the forward progression,
// or Unknown when the status is terminal or invalid.
func (s Status) Next() Status {
	//nolint:exhaustive // terminal and invalid statuses have no successor
	switch s {
	case Pending:
		return Confirmed
	case Confirmed:
		return Preparing
	case Preparing:
		return Ready
	case Ready:
		return PickedUp
	case PickedUp:
		return OnWay
	case OnWay:
		return Delivered
	default:
		return Unknown
	}
}

// TransitionTo validates a generic status update and returns the new status.
// Only the fixed successor of the current status is accepted; cancellation
// must go through Cancel.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if next != s.Next() {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s cannot transition to %s", s, next),
		)
	}
	return next, nil
}

// Cancel transitions the status to Cancelled.
// Terminal statuses cannot be cancelled and yield a ConflictError.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if s.IsTerminal() {
		return Unknown, errs.NewConflictErrorWithCause(
			"order is already finished",
			fmt.Errorf("%s is a terminal status", s),
		)
	}
	return Cancelled, nil
}
