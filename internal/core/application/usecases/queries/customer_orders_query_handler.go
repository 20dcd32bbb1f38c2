package queries

import (
	"context"

	"gorm.io/gorm"
)

// CustomerOrdersQueryHandler retrieves a customer's orders from the database.
type CustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewCustomerOrdersQueryHandler creates a handler for customer history queries.
func NewCustomerOrdersQueryHandler(db *gorm.DB) CustomerOrdersQueryHandler {
	return CustomerOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the customer's orders, newest first.
func (h CustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query CustomerOrdersQuery,
) ([]OrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		`SELECT `+orderColumns+` FROM orders WHERE customer_phone = ? ORDER BY created_at DESC`,
		query.Phone(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderQueryResponse, 0)
	for rows.Next() {
		resp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
