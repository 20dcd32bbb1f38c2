package queries

import (
	"context"

	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order read model from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. A missing order yields an ObjectNotFoundError.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (OrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		`SELECT `+orderColumns+` FROM orders WHERE id = ?`,
		query.OrderID().Bytes(),
	).Rows()
	if err != nil {
		return OrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderQueryResponse{}, err
		}
		return OrderQueryResponse{}, errs.NewObjectNotFoundError(
			"order", query.OrderID().String())
	}

	return scanOrderRow(rows)
}
