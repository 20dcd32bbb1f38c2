package tracking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrEntryIsNotConstructed is returned when using an improperly initialized Entry.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")

// ActorType identifies who caused a tracked status change.
type ActorType int

const (
	// ActorUnknown represents an invalid or undefined actor type.
	ActorUnknown ActorType = iota

	// ActorSystem marks entries written by the system itself, for example
	// the entry appended on order creation.
	ActorSystem

	// ActorCustomer marks entries caused by the customer.
	ActorCustomer

	// ActorRestaurant marks entries caused by the restaurant.
	ActorRestaurant

	// ActorDriver marks entries caused by the driver.
	ActorDriver

	// ActorAdmin marks entries caused by an admin.
	ActorAdmin
)

func getActorTypeStrings() map[ActorType]string {
	//nolint:exhaustive // ActorUnknown is intentionally excluded as it's invalid
	return map[ActorType]string{
		ActorSystem:     "system",
		ActorCustomer:   "customer",
		ActorRestaurant: "restaurant",
		ActorDriver:     "driver",
		ActorAdmin:      "admin",
	}
}

// ActorTypeFromString parses the wire representation of an actor type.
// The empty string yields the default, ActorSystem.
func ActorTypeFromString(s string) (ActorType, error) {
	if s == "" {
		return ActorSystem, nil
	}
	for actorType, str := range getActorTypeStrings() {
		if str == s {
			return actorType, nil
		}
	}
	return ActorUnknown, errs.NewValueIsInvalidErrorWithCause("actorType",
		fmt.Errorf("%q is not a known actor type", s))
}

// Validate checks that the ActorType is one of the defined actors.
func (t ActorType) Validate() error {
	if _, ok := getActorTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("actorType",
			fmt.Errorf("%d is not a valid actor type", t))
	}
	return nil
}

// String returns the wire name of the actor type.
func (t ActorType) String() string {
	if str, ok := getActorTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// Entry is one row of an order's tracking history: which status the order
// entered, the message shown to the customer, and who caused the change.
// The history is append-only; entries are never updated or deleted.
type Entry struct {
	id        kernel.UUID
	orderID   kernel.UUID
	status    order.Status
	message   string
	actorID   string
	actorType ActorType
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewEntry creates a tracking Entry stamped with the current time.
// An empty message falls back to the status's default message; actorID is
// free-form and may be empty for system entries.
func NewEntry(
	id kernel.UUID,
	orderID kernel.UUID,
	status order.Status,
	message string,
	actorID string,
	actorType ActorType,
) (*Entry, error) {
	entry := &Entry{
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		entry.setID(id),
		entry.setOrderID(orderID),
		entry.setStatus(status),
		entry.setActorType(actorType),
	); err != nil {
		return nil, err
	}

	entry.actorID = strings.TrimSpace(actorID)

	message = strings.TrimSpace(message)
	if message == "" {
		message = status.DefaultMessage()
	}
	entry.message = message

	return entry, nil
}

// RestoreEntry reconstructs an Entry from persistent storage.
func RestoreEntry(
	id kernel.UUID,
	orderID kernel.UUID,
	status order.Status,
	message string,
	actorID string,
	actorType ActorType,
	createdAt time.Time,
) (*Entry, error) {
	entry, err := NewEntry(id, orderID, status, message, actorID, actorType)
	if err != nil {
		return nil, err
	}

	entry.createdAt = createdAt
	return entry, nil
}

// Validate checks if the Entry was properly constructed.
func (e *Entry) Validate() error {
	if e == nil {
		return ErrEntryIsNotConstructed
	}
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

// ID returns the entry's unique identifier.
func (e *Entry) ID() kernel.UUID {
	return e.id
}

// OrderID returns the order the entry belongs to.
func (e *Entry) OrderID() kernel.UUID {
	return e.orderID
}

// Status returns the status the order entered.
func (e *Entry) Status() order.Status {
	return e.status
}

// Message returns the human-readable tracking message.
func (e *Entry) Message() string {
	return e.message
}

// ActorID returns the identifier of whoever caused the change, empty for
// system entries.
func (e *Entry) ActorID() string {
	return e.actorID
}

// ActorType returns who caused the change.
func (e *Entry) ActorType() ActorType {
	return e.actorType
}

// CreatedAt returns the entry's timestamp.
func (e *Entry) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Entry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Entry) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	e.orderID = orderID
	return nil
}

func (e *Entry) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	e.status = status
	return nil
}

func (e *Entry) setActorType(actorType ActorType) error {
	if err := actorType.Validate(); err != nil {
		return err
	}
	e.actorType = actorType
	return nil
}
