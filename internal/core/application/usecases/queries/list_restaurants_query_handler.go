package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListRestaurantsQueryHandler retrieves restaurant information from the database.
type ListRestaurantsQueryHandler struct {
	db *gorm.DB
}

// NewListRestaurantsQueryHandler creates a handler for restaurant listing queries.
func NewListRestaurantsQueryHandler(db *gorm.DB) ListRestaurantsQueryHandler {
	return ListRestaurantsQueryHandler{db: db}
}

// Handle executes the query and returns all restaurants sorted by name.
func (h ListRestaurantsQueryHandler) Handle(
	ctx context.Context,
	query ListRestaurantsQuery,
) ([]RestaurantQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			phone,
			address,
			delivery_fee,
			delivery_time,
			is_open
		FROM restaurants
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := make([]RestaurantQueryResponse, 0)
	for rows.Next() {
		var resp RestaurantQueryResponse
		var id uuid.UUID

		if err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Phone,
			&resp.Address,
			&resp.DeliveryFee,
			&resp.DeliveryTime,
			&resp.IsOpen,
		); err != nil {
			return nil, err
		}

		restaurantID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = restaurantID
		restaurants = append(restaurants, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return restaurants, nil
}
