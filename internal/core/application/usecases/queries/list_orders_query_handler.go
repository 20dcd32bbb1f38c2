package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// orderColumns is the projection shared by the order queries; scanOrderRow is
// its single scanning counterpart.
const orderColumns = `
		id,
		order_number,
		customer_name,
		customer_phone,
		customer_email,
		delivery_address,
		latitude,
		longitude,
		notes,
		payment_method,
		status,
		items,
		subtotal,
		delivery_fee,
		total_amount,
		driver_earnings,
		restaurant_id,
		driver_id,
		estimated_time,
		created_at`

// scanOrderRow maps one projected order row into the read model.
func scanOrderRow(rows *sql.Rows) (OrderQueryResponse, error) {
	var (
		resp          OrderQueryResponse
		id            uuid.UUID
		latitude      sql.NullFloat64
		longitude     sql.NullFloat64
		paymentMethod int
		status        int
		itemsJSON     []byte
		restID        uuid.UUID
		driverID      uuid.NullUUID
		createdAt     time.Time
	)

	if err := rows.Scan(
		&id,
		&resp.OrderNumber,
		&resp.CustomerName,
		&resp.CustomerPhone,
		&resp.CustomerEmail,
		&resp.DeliveryAddress,
		&latitude,
		&longitude,
		&resp.Notes,
		&paymentMethod,
		&status,
		&itemsJSON,
		&resp.Subtotal,
		&resp.DeliveryFee,
		&resp.TotalAmount,
		&resp.DriverEarnings,
		&restID,
		&driverID,
		&resp.EstimatedTime,
		&createdAt,
	); err != nil {
		return OrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderQueryResponse{}, err
	}
	resp.ID = orderID

	restaurantID, err := kernel.UUIDFromBytes(restID[:])
	if err != nil {
		return OrderQueryResponse{}, err
	}
	resp.RestaurantID = restaurantID

	if driverID.Valid {
		dID, dErr := kernel.UUIDFromBytes(driverID.UUID[:])
		if dErr != nil {
			return OrderQueryResponse{}, dErr
		}
		resp.DriverID = &dID
	}

	if latitude.Valid {
		resp.Latitude = &latitude.Float64
	}
	if longitude.Valid {
		resp.Longitude = &longitude.Float64
	}

	if len(itemsJSON) > 0 {
		if err = json.Unmarshal(itemsJSON, &resp.Items); err != nil {
			return OrderQueryResponse{}, err
		}
	}

	resp.PaymentMethod = order.PaymentMethod(paymentMethod).String()
	resp.Status = order.Status(status).String()
	resp.CreatedAt = createdAt

	return resp, nil
}

// ListOrdersQueryHandler retrieves filtered order lists from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query and returns matching orders, newest first.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]OrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `SELECT ` + orderColumns + ` FROM orders WHERE 1=1`
	args := make([]any, 0, 3)

	if query.Status() != nil {
		sqlQuery += ` AND status = ?`
		args = append(args, int(*query.Status()))
	}
	if query.DriverID() != nil {
		sqlQuery += ` AND driver_id = ?`
		args = append(args, query.DriverID().Bytes())
	}
	if query.RestaurantID() != nil {
		sqlQuery += ` AND restaurant_id = ?`
		args = append(args, query.RestaurantID().Bytes())
	}
	if query.AvailableOnly() {
		sqlQuery += ` AND status = ? AND driver_id IS NULL`
		args = append(args, int(order.Confirmed))
	}

	sqlQuery += ` ORDER BY created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
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
