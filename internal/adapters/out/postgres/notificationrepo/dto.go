// Package notificationrepo provides data transfer objects and mapping
// functions for notification persistence.
package notificationrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO represents the database structure for persisting
// notifications. A null recipient key marks a broadcast row visible to every
// recipient of the type.
type NotificationDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	EventType     string
	Title         string
	Message       string
	RecipientType int     `gorm:"index"`
	RecipientKey  *string `gorm:"index"`
	OrderID       uuid.UUID `gorm:"type:uuid;index"`
	IsRead        bool
	CreatedAt     time.Time
}

// TableName specifies the database table name for notification entities.
func (NotificationDTO) TableName() string {
	return "notifications"
}

// fromDomain converts a notification domain aggregate to its database representation.
func fromDomain(aggregate *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:            aggregate.ID().Bytes(),
		EventType:     aggregate.EventType(),
		Title:         aggregate.Title(),
		Message:       aggregate.Message(),
		RecipientType: int(aggregate.RecipientType()),
		RecipientKey:  aggregate.RecipientKey(),
		OrderID:       aggregate.OrderID().Bytes(),
		IsRead:        aggregate.IsRead(),
		CreatedAt:     aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a notification domain aggregate.
func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(
		id,
		dto.EventType,
		dto.Title,
		dto.Message,
		notification.RecipientType(dto.RecipientType),
		dto.RecipientKey,
		orderID,
		dto.IsRead,
		dto.CreatedAt,
	)
}
