package http

import (
	"time"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/order"
)

// Request bodies.

// CreateOrderRequest is the POST /orders body.
type CreateOrderRequest struct {
	CustomerName    string             `json:"customerName"`
	CustomerPhone   string             `json:"customerPhone"`
	CustomerEmail   string             `json:"customerEmail"`
	DeliveryAddress string             `json:"deliveryAddress"`
	Latitude        *float64           `json:"latitude,omitempty"`
	Longitude       *float64           `json:"longitude,omitempty"`
	Notes           string             `json:"notes"`
	PaymentMethod   string             `json:"paymentMethod"`
	Items           []OrderItemPayload `json:"items"`
	RestaurantID    string             `json:"restaurantId"`
}

// OrderItemPayload is one order line as it travels on the wire.
type OrderItemPayload struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Notes    string  `json:"notes,omitempty"`
}

// UpdateOrderStatusRequest is the PUT /orders/:id body.
type UpdateOrderStatusRequest struct {
	Status        string `json:"status"`
	Message       string `json:"message"`
	UpdatedBy     string `json:"updatedBy"`
	UpdatedByType string `json:"updatedByType"`
}

// AssignDriverRequest is the PUT /orders/:id/assign-driver body.
type AssignDriverRequest struct {
	DriverID string `json:"driverId"`
}

// CancelOrderRequest is the PATCH /orders/:orderId/cancel body.
type CancelOrderRequest struct {
	Reason      string `json:"reason"`
	CancelledBy string `json:"cancelledBy"`
}

// LoginRequest is the POST /drivers/login body.
type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// SetAvailabilityRequest is the PUT /drivers/:id/availability body.
type SetAvailabilityRequest struct {
	IsAvailable bool `json:"isAvailable"`
}

// Response bodies.

// ErrorResponse is the envelope for every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// CreatedOrderResponse is the slice of the new order returned by POST /orders.
type CreatedOrderResponse struct {
	ID            string  `json:"id"`
	OrderNumber   string  `json:"orderNumber"`
	Status        string  `json:"status"`
	EstimatedTime string  `json:"estimatedTime"`
	Total         float64 `json:"total"`
}

// CreateOrderResponse is the POST /orders envelope.
type CreateOrderResponse struct {
	Success bool                 `json:"success"`
	Order   CreatedOrderResponse `json:"order"`
}

// OrderResponse is the full order read model on the wire.
type OrderResponse struct {
	ID              string             `json:"id"`
	OrderNumber     string             `json:"orderNumber"`
	CustomerName    string             `json:"customerName"`
	CustomerPhone   string             `json:"customerPhone"`
	CustomerEmail   string             `json:"customerEmail"`
	DeliveryAddress string             `json:"deliveryAddress"`
	Latitude        *float64           `json:"latitude,omitempty"`
	Longitude       *float64           `json:"longitude,omitempty"`
	Notes           string             `json:"notes"`
	PaymentMethod   string             `json:"paymentMethod"`
	Status          string             `json:"status"`
	Items           []OrderItemPayload `json:"items"`
	Subtotal        float64            `json:"subtotal"`
	DeliveryFee     float64            `json:"deliveryFee"`
	TotalAmount     float64            `json:"totalAmount"`
	DriverEarnings  float64            `json:"driverEarnings"`
	RestaurantID    string             `json:"restaurantId"`
	DriverID        *string            `json:"driverId,omitempty"`
	EstimatedTime   string             `json:"estimatedTime"`
	CreatedAt       time.Time          `json:"createdAt"`
}

// OrderEnvelope wraps a single order mutation result.
type OrderEnvelope struct {
	Success bool          `json:"success"`
	Order   OrderResponse `json:"order"`
}

// CancelOrderResponse is the PATCH /orders/:orderId/cancel envelope.
type CancelOrderResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
}

// DriverResponse is the driver read model on the wire.
type DriverResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	IsAvailable bool      `json:"isAvailable"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// LoginResponse is the POST /drivers/login envelope.
type LoginResponse struct {
	Token  string         `json:"token"`
	Driver DriverResponse `json:"driver"`
}

// RestaurantResponse is the restaurant read model on the wire.
type RestaurantResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Phone        string  `json:"phone"`
	Address      string  `json:"address"`
	DeliveryFee  float64 `json:"deliveryFee"`
	DeliveryTime string  `json:"deliveryTime"`
	IsOpen       bool    `json:"isOpen"`
}

// NotificationResponse is the notification read model on the wire.
type NotificationResponse struct {
	ID            string    `json:"id"`
	EventType     string    `json:"eventType"`
	Title         string    `json:"title"`
	Message       string    `json:"message"`
	RecipientType string    `json:"recipientType"`
	RecipientKey  *string   `json:"recipientKey,omitempty"`
	OrderID       string    `json:"orderId"`
	IsRead        bool      `json:"isRead"`
	CreatedAt     time.Time `json:"createdAt"`
}

// SuccessResponse is the minimal {success} envelope.
type SuccessResponse struct {
	Success bool `json:"success"`
}

func toOrderResponse(resp queries.OrderQueryResponse) OrderResponse {
	items := make([]OrderItemPayload, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, OrderItemPayload(item))
	}

	var driverID *string
	if resp.DriverID != nil {
		s := resp.DriverID.String()
		driverID = &s
	}

	return OrderResponse{
		ID:              resp.ID.String(),
		OrderNumber:     resp.OrderNumber,
		CustomerName:    resp.CustomerName,
		CustomerPhone:   resp.CustomerPhone,
		CustomerEmail:   resp.CustomerEmail,
		DeliveryAddress: resp.DeliveryAddress,
		Latitude:        resp.Latitude,
		Longitude:       resp.Longitude,
		Notes:           resp.Notes,
		PaymentMethod:   resp.PaymentMethod,
		Status:          resp.Status,
		Items:           items,
		Subtotal:        resp.Subtotal,
		DeliveryFee:     resp.DeliveryFee,
		TotalAmount:     resp.TotalAmount,
		DriverEarnings:  resp.DriverEarnings,
		RestaurantID:    resp.RestaurantID.String(),
		DriverID:        driverID,
		EstimatedTime:   resp.EstimatedTime,
		CreatedAt:       resp.CreatedAt,
	}
}

func toOrderResponses(resps []queries.OrderQueryResponse) []OrderResponse {
	out := make([]OrderResponse, 0, len(resps))
	for _, resp := range resps {
		out = append(out, toOrderResponse(resp))
	}
	return out
}

func toDriverResponse(resp queries.DriverQueryResponse) DriverResponse {
	return DriverResponse{
		ID:          resp.ID.String(),
		Name:        resp.Name,
		Phone:       resp.Phone,
		IsAvailable: resp.IsAvailable,
		IsActive:    resp.IsActive,
		CreatedAt:   resp.CreatedAt,
	}
}

func toItems(payload []OrderItemPayload) []order.Item {
	items := make([]order.Item, 0, len(payload))
	for _, line := range payload {
		items = append(items, order.Item(line))
	}
	return items
}
