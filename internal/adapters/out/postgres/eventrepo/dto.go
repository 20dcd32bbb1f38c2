// Package eventrepo persists the order-event outbox. Events are written in
// the same transaction as the order change and relayed to the broker by a
// background job.
package eventrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderEventDTO represents the database structure for outbox events. A null
// sent_at marks an event still waiting for the relay.
type OrderEventDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	EventType string
	Payload   datatypes.JSON
	CreatedAt time.Time
	SentAt    *time.Time `gorm:"index"`
}

// TableName specifies the database table name for outbox events.
func (OrderEventDTO) TableName() string {
	return "order_events"
}

// fromDomain converts an outbox event to its database representation.
func fromDomain(event order.Event) OrderEventDTO {
	return OrderEventDTO{
		ID:        event.ID.Bytes(),
		OrderID:   event.OrderID.Bytes(),
		EventType: event.EventType,
		Payload:   datatypes.JSON(event.Payload),
		CreatedAt: event.CreatedAt,
		SentAt:    event.SentAt,
	}
}

// toDomain converts a database DTO to an outbox event.
func toDomain(dto OrderEventDTO) (order.Event, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Event{}, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return order.Event{}, err
	}

	return order.Event{
		ID:        id,
		OrderID:   orderID,
		EventType: dto.EventType,
		Payload:   []byte(dto.Payload),
		CreatedAt: dto.CreatedAt,
		SentAt:    dto.SentAt,
	}, nil
}
