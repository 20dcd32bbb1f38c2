package notification

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrNotificationIsNotConstructed is returned when using an improperly initialized Notification.
var ErrNotificationIsNotConstructed = errors.New(
	"Notification must be created via NewNotification constructor")

// RecipientType identifies the audience a notification is addressed to.
type RecipientType int

const (
	// RecipientUnknown represents an invalid or undefined recipient type.
	RecipientUnknown RecipientType = iota

	// RecipientCustomer targets the ordering customer, addressed by account
	// id or by normalized phone for guests.
	RecipientCustomer

	// RecipientRestaurant targets the restaurant an order was placed with.
	RecipientRestaurant

	// RecipientDriver targets a specific driver, or all drivers as a broadcast.
	RecipientDriver

	// RecipientAdmin targets the admin dashboard. Always a broadcast.
	RecipientAdmin
)

func getRecipientTypeStrings() map[RecipientType]string {
	//nolint:exhaustive // RecipientUnknown is intentionally excluded as it's invalid
	return map[RecipientType]string{
		RecipientCustomer:   "customer",
		RecipientRestaurant: "restaurant",
		RecipientDriver:     "driver",
		RecipientAdmin:      "admin",
	}
}

// RecipientTypeFromString parses the wire representation of a recipient type.
func RecipientTypeFromString(s string) (RecipientType, error) {
	for recipientType, str := range getRecipientTypeStrings() {
		if str == s {
			return recipientType, nil
		}
	}
	return RecipientUnknown, errs.NewValueIsInvalidErrorWithCause("recipientType",
		fmt.Errorf("%q is not a known recipient type", s))
}

// Validate checks that the RecipientType is one of the defined audiences.
func (t RecipientType) Validate() error {
	if _, ok := getRecipientTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("recipientType",
			fmt.Errorf("%d is not a valid recipient type", t))
	}
	return nil
}

// String returns the wire name of the recipient type.
func (t RecipientType) String() string {
	if str, ok := getRecipientTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// Notification is a message addressed to one recipient or broadcast to a
// recipient type. A nil recipient key means broadcast: every reader of the
// type sees the row. Notifications are written best-effort after the order
// transaction commits; a lost notification never fails an order operation.
type Notification struct {
	id            kernel.UUID
	eventType     string
	title         string
	message       string
	recipientType RecipientType
	recipientKey  *string
	orderID       kernel.UUID
	isRead        bool
	createdAt     time.Time

	guard guard.ConstructorGuard
}

// NewNotification creates an unread Notification stamped with the current time.
// A nil recipientKey addresses the whole recipient type.
func NewNotification(
	id kernel.UUID,
	eventType string,
	title string,
	message string,
	recipientType RecipientType,
	recipientKey *string,
	orderID kernel.UUID,
) (*Notification, error) {
	n := &Notification{
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		n.setID(id),
		n.setEventType(eventType),
		n.setTitle(title),
		n.setMessage(message),
		n.setRecipient(recipientType, recipientKey),
		n.setOrderID(orderID),
	); err != nil {
		return nil, err
	}

	return n, nil
}

// RestoreNotification reconstructs a Notification from persistent storage.
func RestoreNotification(
	id kernel.UUID,
	eventType string,
	title string,
	message string,
	recipientType RecipientType,
	recipientKey *string,
	orderID kernel.UUID,
	isRead bool,
	createdAt time.Time,
) (*Notification, error) {
	n, err := NewNotification(id, eventType, title, message, recipientType, recipientKey, orderID)
	if err != nil {
		return nil, err
	}

	n.isRead = isRead
	n.createdAt = createdAt
	return n, nil
}

// Validate checks if the Notification was properly constructed.
func (n *Notification) Validate() error {
	if n == nil {
		return ErrNotificationIsNotConstructed
	}
	return n.guard.Validate(ErrNotificationIsNotConstructed)
}

// ID returns the notification's unique identifier.
func (n *Notification) ID() kernel.UUID {
	return n.id
}

// EventType returns the event tag, for example "new_order" or "driver_assigned".
func (n *Notification) EventType() string {
	return n.eventType
}

// Title returns the short display title.
func (n *Notification) Title() string {
	return n.title
}

// Message returns the notification body.
func (n *Notification) Message() string {
	return n.message
}

// RecipientType returns the addressed audience.
func (n *Notification) RecipientType() RecipientType {
	return n.recipientType
}

// RecipientKey returns the addressed recipient's key, nil for broadcasts.
func (n *Notification) RecipientKey() *string {
	return n.recipientKey
}

// IsBroadcast reports whether the notification targets the whole recipient type.
func (n *Notification) IsBroadcast() bool {
	return n.recipientKey == nil
}

// OrderID returns the order the notification refers to.
func (n *Notification) OrderID() kernel.UUID {
	return n.orderID
}

// IsRead reports whether the recipient has seen the notification.
func (n *Notification) IsRead() bool {
	return n.isRead
}

// CreatedAt returns the creation timestamp.
func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// MarkRead flips the read flag. Idempotent.
func (n *Notification) MarkRead() {
	n.isRead = true
}

func (n *Notification) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

func (n *Notification) setEventType(eventType string) error {
	if eventType == "" {
		return errs.NewValueIsRequiredError("eventType")
	}
	n.eventType = eventType
	return nil
}

func (n *Notification) setTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	n.title = title
	return nil
}

func (n *Notification) setMessage(message string) error {
	message = strings.TrimSpace(message)
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}
	n.message = message
	return nil
}

func (n *Notification) setRecipient(recipientType RecipientType, recipientKey *string) error {
	if err := recipientType.Validate(); err != nil {
		return err
	}
	if recipientKey != nil && *recipientKey == "" {
		return errs.NewValueIsRequiredError("recipientKey")
	}
	n.recipientType = recipientType
	n.recipientKey = recipientKey
	return nil
}

func (n *Notification) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	n.orderID = orderID
	return nil
}
