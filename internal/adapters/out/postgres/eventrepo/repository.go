package eventrepo

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormEventRepository implements EventRepository using GORM.
type GormEventRepository struct {
	db *gorm.DB
}

// NewGormEventRepository creates a new GORM outbox repository.
func NewGormEventRepository(db *gorm.DB) *GormEventRepository {
	return &GormEventRepository{db: db}
}

// Add persists an unsent outbox event.
func (r *GormEventRepository) Add(ctx context.Context, event order.Event) error {
	if err := event.ID.Validate(); err != nil {
		return err
	}

	dto := fromDomain(event)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetUnsent retrieves up to limit unsent events, oldest first, so the relay
// preserves publish order.
func (r *GormEventRepository) GetUnsent(ctx context.Context, limit int) ([]order.Event, error) {
	var dtos []OrderEventDTO
	err := r.db.WithContext(ctx).
		Where("sent_at IS NULL").
		Order("created_at ASC").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	events := make([]order.Event, 0, len(dtos))
	for _, dto := range dtos {
		event, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}

// MarkSent stamps events as published. The sent_at IS NULL guard keeps the
// stamp of events a concurrent relay already published.
func (r *GormEventRepository) MarkSent(ctx context.Context, ids []kernel.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	now := time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&OrderEventDTO{}).
		Where("id IN ? AND sent_at IS NULL", raw).
		Update("sent_at", now).Error
}
