package queries

import (
	"context"
	"database/sql"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/notification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListNotificationsQueryHandler retrieves notification feeds from the database.
type ListNotificationsQueryHandler struct {
	db *gorm.DB
}

// NewListNotificationsQueryHandler creates a handler for notification feed queries.
func NewListNotificationsQueryHandler(db *gorm.DB) ListNotificationsQueryHandler {
	return ListNotificationsQueryHandler{db: db}
}

// Handle executes the query and returns the feed, newest first. Broadcast
// rows (null recipient key) are always part of the recipient type's feed.
func (h ListNotificationsQueryHandler) Handle(
	ctx context.Context,
	query ListNotificationsQuery,
) ([]NotificationQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			id,
			event_type,
			title,
			message,
			recipient_type,
			recipient_key,
			order_id,
			is_read,
			created_at
		FROM notifications
		WHERE recipient_type = ?`
	args := []any{int(query.RecipientType())}

	if query.RecipientKey() != "" {
		sqlQuery += ` AND (recipient_key IS NULL OR recipient_key = ?)`
		args = append(args, query.RecipientKey())
	} else {
		sqlQuery += ` AND recipient_key IS NULL`
	}
	if query.UnreadOnly() {
		sqlQuery += ` AND is_read = false`
	}

	sqlQuery += ` ORDER BY created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := make([]NotificationQueryResponse, 0)
	for rows.Next() {
		var (
			resp          NotificationQueryResponse
			id            uuid.UUID
			recipientType int
			recipientKey  sql.NullString
			orderID       uuid.UUID
		)

		if err = rows.Scan(
			&id,
			&resp.EventType,
			&resp.Title,
			&resp.Message,
			&recipientType,
			&recipientKey,
			&orderID,
			&resp.IsRead,
			&resp.CreatedAt,
		); err != nil {
			return nil, err
		}

		notificationID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = notificationID

		linkedOrderID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.OrderID = linkedOrderID

		if recipientKey.Valid {
			resp.RecipientKey = &recipientKey.String
		}
		resp.RecipientType = notification.RecipientType(recipientType).String()

		notifications = append(notifications, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}
