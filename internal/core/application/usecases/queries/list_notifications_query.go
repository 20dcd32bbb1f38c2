package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/notification"
	"fooddelivery/internal/pkg/guard"
)

var ErrListNotificationsQueryIsNotConstructed = errors.New(
	"ListNotificationsQuery must be created via NewListNotificationsQuery constructor",
)

// ListNotificationsQuery retrieves a recipient's notification feed: rows
// addressed to the recipient's key plus the broadcasts for its type.
type ListNotificationsQuery struct {
	recipientType notification.RecipientType
	recipientKey  string
	unreadOnly    bool

	guard guard.ConstructorGuard
}

// NewListNotificationsQuery creates a notification feed query. An empty
// recipientKey returns only the broadcasts for the type.
func NewListNotificationsQuery(
	recipientType notification.RecipientType,
	recipientKey string,
	unreadOnly bool,
) (ListNotificationsQuery, error) {
	if err := recipientType.Validate(); err != nil {
		return ListNotificationsQuery{}, err
	}
	return ListNotificationsQuery{
		recipientType: recipientType,
		recipientKey:  recipientKey,
		unreadOnly:    unreadOnly,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrListNotificationsQueryIsNotConstructed)
}

// RecipientType returns the recipient type filter.
func (q ListNotificationsQuery) RecipientType() notification.RecipientType {
	return q.recipientType
}

// RecipientKey returns the recipient key, empty for broadcasts only.
func (q ListNotificationsQuery) RecipientKey() string {
	return q.recipientKey
}

// UnreadOnly reports whether read notifications are excluded.
func (q ListNotificationsQuery) UnreadOnly() bool {
	return q.unreadOnly
}

// NotificationQueryResponse is the notification read model.
type NotificationQueryResponse struct {
	ID            kernel.UUID
	EventType     string
	Title         string
	Message       string
	RecipientType string
	RecipientKey  *string
	OrderID       kernel.UUID
	IsRead        bool
	CreatedAt     time.Time
}
