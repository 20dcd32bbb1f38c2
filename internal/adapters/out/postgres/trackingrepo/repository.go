package trackingrepo

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/tracking"

	"gorm.io/gorm"
)

// GormTrackingRepository implements TrackingRepository using GORM. Entries
// are append-only, so the repository never tracks aggregates for update.
type GormTrackingRepository struct {
	db *gorm.DB
}

// NewGormTrackingRepository creates a new GORM tracking repository.
func NewGormTrackingRepository(db *gorm.DB) *GormTrackingRepository {
	return &GormTrackingRepository{db: db}
}

// Add appends a tracking entry.
func (r *GormTrackingRepository) Add(ctx context.Context, entry *tracking.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByOrder retrieves an order's tracking history, oldest first.
func (r *GormTrackingRepository) GetByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*tracking.Entry, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TrackingEntryDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("created_at ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*tracking.Entry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
