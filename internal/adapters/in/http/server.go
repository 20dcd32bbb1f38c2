// Package http is the inbound REST adapter. It binds the Echo routes to the
// command and query handlers, translates wire contracts to domain commands,
// and maps application errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/notification"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/tracking"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/telemetry"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler      commands.CreateOrderCommandHandler
	updateStatusHandler     commands.UpdateOrderStatusCommandHandler
	assignDriverHandler     commands.AssignDriverCommandHandler
	cancelOrderHandler      commands.CancelOrderCommandHandler
	setAvailabilityHandler  commands.SetDriverAvailabilityCommandHandler
	markNotificationHandler commands.MarkNotificationReadCommandHandler

	// Query handlers
	listOrdersHandler        queries.ListOrdersQueryHandler
	getOrderHandler          queries.GetOrderQueryHandler
	customerOrdersHandler    queries.CustomerOrdersQueryHandler
	listDriversHandler       queries.ListDriversQueryHandler
	listRestaurantsHandler   queries.ListRestaurantsQueryHandler
	listNotificationsHandler queries.ListNotificationsQueryHandler

	driverRepo ports.DriverRepository
	auth       *Auth
}

// NewServer creates the HTTP server over the application's handlers. The
// driver repository serves the login flow, which reads credentials outside
// any command.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateStatusHandler commands.UpdateOrderStatusCommandHandler,
	assignDriverHandler commands.AssignDriverCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	setAvailabilityHandler commands.SetDriverAvailabilityCommandHandler,
	markNotificationHandler commands.MarkNotificationReadCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	customerOrdersHandler queries.CustomerOrdersQueryHandler,
	listDriversHandler queries.ListDriversQueryHandler,
	listRestaurantsHandler queries.ListRestaurantsQueryHandler,
	listNotificationsHandler queries.ListNotificationsQueryHandler,
	driverRepo ports.DriverRepository,
	auth *Auth,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateStatusHandler:      updateStatusHandler,
		assignDriverHandler:      assignDriverHandler,
		cancelOrderHandler:       cancelOrderHandler,
		setAvailabilityHandler:   setAvailabilityHandler,
		markNotificationHandler:  markNotificationHandler,
		listOrdersHandler:        listOrdersHandler,
		getOrderHandler:          getOrderHandler,
		customerOrdersHandler:    customerOrdersHandler,
		listDriversHandler:       listDriversHandler,
		listRestaurantsHandler:   listRestaurantsHandler,
		listNotificationsHandler: listNotificationsHandler,
		driverRepo:               driverRepo,
		auth:                     auth,
	}
}

// RegisterRoutes binds the REST surface onto the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/orders", s.CreateOrder)
	e.GET("/orders", s.ListOrders)
	e.GET("/orders/customer/:phone", s.CustomerOrders)
	e.GET("/orders/:orderId", s.GetOrder)
	e.PUT("/orders/:orderId", s.UpdateOrderStatus)
	e.PUT("/orders/:orderId/assign-driver", s.AssignDriver)
	e.PATCH("/orders/:orderId/cancel", s.CancelOrder)

	e.POST("/drivers/login", s.DriverLogin)
	e.GET("/drivers", s.ListDrivers, s.auth.Middleware(KindAdmin))
	e.PUT("/drivers/:driverId/availability", s.SetDriverAvailability,
		s.auth.Middleware(KindDriver, KindAdmin))

	e.GET("/restaurants", s.ListRestaurants)

	e.GET("/notifications", s.ListNotifications)
	e.PATCH("/notifications/:notificationId/read", s.MarkNotificationRead)

	e.GET("/health", s.Health)
}

// CreateOrder handles POST /orders.
//
//	@Summary	Place a new order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		order	body		CreateOrderRequest	true	"Order to place"
//	@Success	201		{object}	CreateOrderResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Router		/orders [post]
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	restaurantID, err := kernel.UUIDFromString(req.RestaurantID)
	if err != nil {
		return badRequest(ctx, "invalid restaurant id")
	}

	paymentMethod, err := order.PaymentMethodFromString(req.PaymentMethod)
	if err != nil {
		return writeError(ctx, err)
	}

	customer, err := order.NewCustomer(req.CustomerName, req.CustomerPhone, req.CustomerEmail, nil)
	if err != nil {
		return writeError(ctx, err)
	}

	var location *kernel.GeoPoint
	if req.Latitude != nil && req.Longitude != nil {
		point, locErr := kernel.NewGeoPoint(*req.Latitude, *req.Longitude)
		if locErr != nil {
			return writeError(ctx, locErr)
		}
		location = &point
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		customer,
		req.DeliveryAddress,
		location,
		req.Notes,
		paymentMethod,
		toItems(req.Items),
		restaurantID,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	telemetry.OrdersCreated.Inc()

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		Success: true,
		Order: CreatedOrderResponse{
			ID:            result.OrderID.String(),
			OrderNumber:   result.OrderNumber,
			Status:        result.Status.String(),
			EstimatedTime: result.EstimatedTime,
			Total:         result.TotalAmount,
		},
	})
}

// ListOrders handles GET /orders.
//
//	@Summary	List orders, newest first
//	@Tags		orders
//	@Produce	json
//	@Param		status			query		string	false	"Status filter"
//	@Param		driverId		query		string	false	"Driver filter"
//	@Param		restaurantId	query		string	false	"Restaurant filter"
//	@Param		available		query		bool	false	"Only unclaimed confirmed orders"
//	@Success	200				{array}		OrderResponse
//	@Failure	400				{object}	ErrorResponse
//	@Router		/orders [get]
func (s *Server) ListOrders(ctx echo.Context) error {
	var status *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.StatusFromString(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		status = &parsed
	}

	var driverID *kernel.UUID
	if raw := ctx.QueryParam("driverId"); raw != "" {
		parsed, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "invalid driver id")
		}
		driverID = &parsed
	}

	var restaurantID *kernel.UUID
	if raw := ctx.QueryParam("restaurantId"); raw != "" {
		parsed, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "invalid restaurant id")
		}
		restaurantID = &parsed
	}

	query, err := queries.NewListOrdersQuery(
		status, driverID, restaurantID, ctx.QueryParam("available") == "true")
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetOrder handles GET /orders/:orderId.
//
//	@Summary	Get one order
//	@Tags		orders
//	@Produce	json
//	@Param		orderId	path		string	true	"Order ID"
//	@Success	200		{object}	OrderResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/orders/{orderId} [get]
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(resp))
}

// CustomerOrders handles GET /orders/customer/:phone.
//
//	@Summary	List a customer's orders by phone, newest first
//	@Tags		orders
//	@Produce	json
//	@Param		phone	path		string	true	"Customer phone"
//	@Success	200		{array}		OrderResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/orders/customer/{phone} [get]
func (s *Server) CustomerOrders(ctx echo.Context) error {
	query, err := queries.NewCustomerOrdersQuery(ctx.Param("phone"))
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.customerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// UpdateOrderStatus handles PUT /orders/:orderId.
//
//	@Summary	Advance an order to its next status
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		orderId	path		string						true	"Order ID"
//	@Param		update	body		UpdateOrderStatusRequest	true	"Status update"
//	@Success	200		{object}	OrderEnvelope
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Router		/orders/{orderId} [put]
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req UpdateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	actorType, err := tracking.ActorTypeFromString(req.UpdatedByType)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(
		orderID, status, req.Message, req.UpdatedBy, actorType)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	if status == order.Delivered {
		telemetry.OrdersDelivered.Inc()
	}

	return s.respondWithOrder(ctx, orderID)
}

// AssignDriver handles PUT /orders/:orderId/assign-driver.
//
//	@Summary	Assign a driver to an order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		orderId		path		string				true	"Order ID"
//	@Param		assignment	body		AssignDriverRequest	true	"Driver to assign"
//	@Success	200			{object}	OrderEnvelope
//	@Failure	400			{object}	ErrorResponse
//	@Failure	404			{object}	ErrorResponse
//	@Failure	409			{object}	ErrorResponse
//	@Router		/orders/{orderId}/assign-driver [put]
func (s *Server) AssignDriver(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req AssignDriverRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return badRequest(ctx, "invalid driver id")
	}

	cmd, err := commands.NewAssignDriverCommand(orderID, driverID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.assignDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrConflict) {
			telemetry.AssignmentConflicts.Inc()
		}
		return writeError(ctx, err)
	}

	telemetry.OrdersAssigned.Inc()

	return s.respondWithOrder(ctx, orderID)
}

// CancelOrder handles PATCH /orders/:orderId/cancel.
//
//	@Summary	Cancel an order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		orderId			path		string				true	"Order ID"
//	@Param		cancellation	body		CancelOrderRequest	true	"Cancellation details"
//	@Success	200				{object}	CancelOrderResponse
//	@Failure	404				{object}	ErrorResponse
//	@Failure	409				{object}	ErrorResponse
//	@Router		/orders/{orderId}/cancel [patch]
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req CancelOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(
		orderID, req.Reason, req.CancelledBy, tracking.ActorCustomer)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	telemetry.OrdersCancelled.Inc()

	return ctx.JSON(http.StatusOK, CancelOrderResponse{
		Success: true,
		Status:  order.Cancelled.String(),
	})
}

// DriverLogin handles POST /drivers/login.
//
//	@Summary	Exchange driver credentials for a bearer token
//	@Tags		drivers
//	@Accept		json
//	@Produce	json
//	@Param		credentials	body		LoginRequest	true	"Driver credentials"
//	@Success	200			{object}	LoginResponse
//	@Failure	401			{object}	ErrorResponse
//	@Router		/drivers/login [post]
func (s *Server) DriverLogin(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	// A missing driver and a wrong password answer identically, so the
	// endpoint does not leak which phones are registered.
	unauthorized := func() error {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Success: false,
			Error:   "invalid phone or password",
		})
	}

	theDriver, err := s.driverRepo.GetByPhone(
		ctx.Request().Context(), order.NormalizePhone(req.Phone))
	if err != nil {
		return unauthorized()
	}

	if !theDriver.IsActive() || theDriver.VerifyPassword(req.Password) != nil {
		return unauthorized()
	}

	token, err := s.auth.IssueToken(theDriver.ID(), KindDriver)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LoginResponse{
		Token: token,
		Driver: DriverResponse{
			ID:          theDriver.ID().String(),
			Name:        theDriver.Name(),
			Phone:       theDriver.Phone(),
			IsAvailable: theDriver.IsAvailable(),
			IsActive:    theDriver.IsActive(),
		},
	})
}

// ListDrivers handles GET /drivers.
//
//	@Summary	List active drivers
//	@Tags		drivers
//	@Produce	json
//	@Param		available	query		bool	false	"Only available drivers"
//	@Success	200			{array}		DriverResponse
//	@Failure	401			{object}	ErrorResponse
//	@Failure	403			{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/drivers [get]
func (s *Server) ListDrivers(ctx echo.Context) error {
	query := queries.NewListDriversQuery(ctx.QueryParam("available") == "true")

	drivers, err := s.listDriversHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]DriverResponse, 0, len(drivers))
	for _, d := range drivers {
		response = append(response, toDriverResponse(d))
	}

	return ctx.JSON(http.StatusOK, response)
}

// SetDriverAvailability handles PUT /drivers/:driverId/availability.
//
//	@Summary	Set a driver's availability
//	@Tags		drivers
//	@Accept		json
//	@Produce	json
//	@Param		driverId		path		string					true	"Driver ID"
//	@Param		availability	body		SetAvailabilityRequest	true	"Availability flag"
//	@Success	200				{object}	SuccessResponse
//	@Failure	401				{object}	ErrorResponse
//	@Failure	403				{object}	ErrorResponse
//	@Failure	409				{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/drivers/{driverId}/availability [put]
func (s *Server) SetDriverAvailability(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("driverId"))
	if err != nil {
		return badRequest(ctx, "invalid driver id")
	}

	principal, ok := PrincipalFromContext(ctx)
	if !ok {
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
			Success: false,
			Error:   "missing bearer token",
		})
	}

	// Drivers may only change their own flag; admins may change anyone's.
	if principal.Kind == KindDriver && !principal.ID.IsEqual(driverID) {
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Success: false,
			Error:   "insufficient permissions",
		})
	}

	var req SetAvailabilityRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewSetDriverAvailabilityCommand(driverID, req.IsAvailable)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.setAvailabilityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// ListRestaurants handles GET /restaurants.
//
//	@Summary	List restaurants
//	@Tags		restaurants
//	@Produce	json
//	@Success	200	{array}	RestaurantResponse
//	@Router		/restaurants [get]
func (s *Server) ListRestaurants(ctx echo.Context) error {
	restaurants, err := s.listRestaurantsHandler.Handle(
		ctx.Request().Context(), queries.NewListRestaurantsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]RestaurantResponse, 0, len(restaurants))
	for _, r := range restaurants {
		response = append(response, RestaurantResponse{
			ID:           r.ID.String(),
			Name:         r.Name,
			Phone:        r.Phone,
			Address:      r.Address,
			DeliveryFee:  r.DeliveryFee,
			DeliveryTime: r.DeliveryTime,
			IsOpen:       r.IsOpen,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// ListNotifications handles GET /notifications.
//
//	@Summary	List a recipient's notification feed, newest first
//	@Tags		notifications
//	@Produce	json
//	@Param		recipientType	query		string	true	"customer, driver, restaurant or admin"
//	@Param		recipientId		query		string	false	"Recipient key; empty returns broadcasts only"
//	@Param		unread			query		bool	false	"Only unread notifications"
//	@Success	200				{array}		NotificationResponse
//	@Failure	400				{object}	ErrorResponse
//	@Router		/notifications [get]
func (s *Server) ListNotifications(ctx echo.Context) error {
	recipientType, err := notification.RecipientTypeFromString(ctx.QueryParam("recipientType"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewListNotificationsQuery(
		recipientType, ctx.QueryParam("recipientId"), ctx.QueryParam("unread") == "true")
	if err != nil {
		return writeError(ctx, err)
	}

	notifications, err := s.listNotificationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		response = append(response, NotificationResponse{
			ID:            n.ID.String(),
			EventType:     n.EventType,
			Title:         n.Title,
			Message:       n.Message,
			RecipientType: n.RecipientType,
			RecipientKey:  n.RecipientKey,
			OrderID:       n.OrderID.String(),
			IsRead:        n.IsRead,
			CreatedAt:     n.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// MarkNotificationRead handles PATCH /notifications/:notificationId/read.
//
//	@Summary	Mark a notification as read
//	@Tags		notifications
//	@Produce	json
//	@Param		notificationId	path		string	true	"Notification ID"
//	@Success	200				{object}	SuccessResponse
//	@Failure	404				{object}	ErrorResponse
//	@Router		/notifications/{notificationId}/read [patch]
func (s *Server) MarkNotificationRead(ctx echo.Context) error {
	notificationID, err := kernel.UUIDFromString(ctx.Param("notificationId"))
	if err != nil {
		return badRequest(ctx, "invalid notification id")
	}

	cmd, err := commands.NewMarkNotificationReadCommand(notificationID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.markNotificationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// Health handles GET /health.
//
//	@Summary	Liveness probe
//	@Tags		system
//	@Produce	json
//	@Success	200	{object}	SuccessResponse
//	@Router		/health [get]
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// respondWithOrder re-reads the order and returns it in the mutation envelope.
func (s *Server) respondWithOrder(ctx echo.Context, orderID kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderEnvelope{
		Success: true,
		Order:   toOrderResponse(resp),
	})
}
