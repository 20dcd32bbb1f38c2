// Package trackingrepo provides data transfer objects and mapping functions
// for the append-only order tracking history.
package trackingrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/tracking"

	"github.com/google/uuid"
)

// TrackingEntryDTO represents the database structure for tracking entries.
type TrackingEntryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	Status    int
	Message   string
	ActorID   string
	ActorType int
	CreatedAt time.Time
}

// TableName specifies the database table name for tracking entries.
func (TrackingEntryDTO) TableName() string {
	return "tracking_entries"
}

// fromDomain converts a tracking entry to its database representation.
func fromDomain(entry *tracking.Entry) TrackingEntryDTO {
	return TrackingEntryDTO{
		ID:        entry.ID().Bytes(),
		OrderID:   entry.OrderID().Bytes(),
		Status:    int(entry.Status()),
		Message:   entry.Message(),
		ActorID:   entry.ActorID(),
		ActorType: int(entry.ActorType()),
		CreatedAt: entry.CreatedAt(),
	}
}

// toDomain converts a database DTO to a tracking entry.
func toDomain(dto TrackingEntryDTO) (*tracking.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return tracking.RestoreEntry(
		id,
		orderID,
		order.Status(dto.Status),
		dto.Message,
		dto.ActorID,
		tracking.ActorType(dto.ActorType),
		dto.CreatedAt,
	)
}
