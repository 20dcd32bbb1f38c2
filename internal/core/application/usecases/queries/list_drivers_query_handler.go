package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListDriversQueryHandler retrieves driver information from the database.
type ListDriversQueryHandler struct {
	db *gorm.DB
}

// NewListDriversQueryHandler creates a handler for driver listing queries.
func NewListDriversQueryHandler(db *gorm.DB) ListDriversQueryHandler {
	return ListDriversQueryHandler{db: db}
}

// Handle executes the query and returns active drivers sorted by name.
func (h ListDriversQueryHandler) Handle(
	ctx context.Context,
	query ListDriversQuery,
) ([]DriverQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
		SELECT
			id,
			name,
			phone,
			is_available,
			is_active,
			created_at
		FROM drivers
		WHERE is_active = true`
	if query.AvailableOnly() {
		sqlQuery += ` AND is_available = true`
	}
	sqlQuery += ` ORDER BY name`

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drivers := make([]DriverQueryResponse, 0)
	for rows.Next() {
		var resp DriverQueryResponse
		var id uuid.UUID

		if err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Phone,
			&resp.IsAvailable,
			&resp.IsActive,
			&resp.CreatedAt,
		); err != nil {
			return nil, err
		}

		driverID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = driverID
		drivers = append(drivers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}
