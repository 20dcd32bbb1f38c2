package http_test

import (
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpadapter "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// newTestServer builds a server with zero-value handlers. The tests below
// only exercise the parsing and validation paths that reject a request
// before any handler runs.
func newTestServer() *httpadapter.Server {
	return httpadapter.NewServer(
		commands.CreateOrderCommandHandler{},
		commands.UpdateOrderStatusCommandHandler{},
		commands.AssignDriverCommandHandler{},
		commands.CancelOrderCommandHandler{},
		commands.SetDriverAvailabilityCommandHandler{},
		commands.MarkNotificationReadCommandHandler{},
		queries.ListOrdersQueryHandler{},
		queries.GetOrderQueryHandler{},
		queries.CustomerOrdersQueryHandler{},
		queries.ListDriversQueryHandler{},
		queries.ListRestaurantsQueryHandler{},
		queries.ListNotificationsQueryHandler{},
		nil,
		httpadapter.NewAuth("test-secret"),
	)
}

func doRequest(
	t *testing.T,
	handler func(echo.Context) error,
	method string,
	target string,
	body string,
	pathParams map[string]string,
) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	for name, value := range pathParams {
		ctx.SetParamNames(name)
		ctx.SetParamValues(value)
	}

	assert.NoError(t, handler(ctx))

	return rec
}

func TestCreateOrder_RequestValidation(t *testing.T) {
	server := newTestServer()

	t.Run("should reject a malformed body with 400", func(t *testing.T) {
		rec := doRequest(t, server.CreateOrder, nethttp.MethodPost, "/orders", "{not json", nil)

		assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	})

	t.Run("should reject an unparsable restaurant id with 400", func(t *testing.T) {
		body := `{"customerName":"Alice","customerPhone":"+15550001111",` +
			`"deliveryAddress":"221B Baker Street","paymentMethod":"cash",` +
			`"items":[{"name":"Burger","price":10,"quantity":1}],"restaurantId":"nope"}`

		rec := doRequest(t, server.CreateOrder, nethttp.MethodPost, "/orders", body, nil)

		assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	})

	t.Run("should reject an unknown payment method with 400", func(t *testing.T) {
		body := `{"customerName":"Alice","customerPhone":"+15550001111",` +
			`"deliveryAddress":"221B Baker Street","paymentMethod":"crypto",` +
			`"items":[{"name":"Burger","price":10,"quantity":1}],` +
			`"restaurantId":"550e8400-e29b-41d4-a716-446655440000"}`

		rec := doRequest(t, server.CreateOrder, nethttp.MethodPost, "/orders", body, nil)

		assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	})

	t.Run("should reject out of range coordinates with 400", func(t *testing.T) {
		body := `{"customerName":"Alice","customerPhone":"+15550001111",` +
			`"deliveryAddress":"221B Baker Street","paymentMethod":"cash",` +
			`"latitude":123.0,"longitude":15.0,` +
			`"items":[{"name":"Burger","price":10,"quantity":1}],` +
			`"restaurantId":"550e8400-e29b-41d4-a716-446655440000"}`

		rec := doRequest(t, server.CreateOrder, nethttp.MethodPost, "/orders", body, nil)

		assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	})
}

func TestGetOrder_RequestValidation(t *testing.T) {
	server := newTestServer()

	t.Run("should reject an unparsable order id with 400", func(t *testing.T) {
		rec := doRequest(t, server.GetOrder, nethttp.MethodGet, "/orders/nope", "",
			map[string]string{"orderId": "nope"})

		assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	})
}

func TestUpdateOrderStatus_RequestValidation(t *testing.T) {
	server := newTestServer()
	orderID := "550e8400-e29b-41d4-a716-446655440000"

	t.Run("should reject an unknown status with 400", func(t *testing.T) {
		body := `{"status":"teleported","updatedBy":"ops","updatedByType":"admin"}`

		rec := doRequest(t, server.UpdateOrderStatus, nethttp.MethodPut,
			"/orders/"+orderID, body, map[string]string{"orderId": orderID})

		assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	})

	t.Run("should reject an unknown actor type with 400", func(t *testing.T) {
		body := `{"status":"confirmed","updatedBy":"ops","updatedByType":"robot"}`

		rec := doRequest(t, server.UpdateOrderStatus, nethttp.MethodPut,
			"/orders/"+orderID, body, map[string]string{"orderId": orderID})

		assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	})
}

func TestAssignDriver_RequestValidation(t *testing.T) {
	server := newTestServer()
	orderID := "550e8400-e29b-41d4-a716-446655440000"

	t.Run("should reject an unparsable driver id with 400", func(t *testing.T) {
		rec := doRequest(t, server.AssignDriver, nethttp.MethodPut,
			"/orders/"+orderID+"/assign-driver", `{"driverId":"nope"}`,
			map[string]string{"orderId": orderID})

		assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	})

	t.Run("should reject an unparsable order id with 400", func(t *testing.T) {
		rec := doRequest(t, server.AssignDriver, nethttp.MethodPut,
			"/orders/nope/assign-driver", `{"driverId":"nope"}`,
			map[string]string{"orderId": "nope"})

		assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	})
}

func TestListNotifications_RequestValidation(t *testing.T) {
	server := newTestServer()

	t.Run("should reject an unknown recipient type with 400", func(t *testing.T) {
		rec := doRequest(t, server.ListNotifications, nethttp.MethodGet,
			"/notifications?recipientType=alien", "", nil)

		assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	})
}

func TestMarkNotificationRead_RequestValidation(t *testing.T) {
	server := newTestServer()

	t.Run("should reject an unparsable notification id with 400", func(t *testing.T) {
		rec := doRequest(t, server.MarkNotificationRead, nethttp.MethodPatch,
			"/notifications/nope/read", "",
			map[string]string{"notificationId": "nope"})

		assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
	})
}

func TestHealth(t *testing.T) {
	server := newTestServer()

	rec := doRequest(t, server.Health, nethttp.MethodGet, "/health", "", nil)

	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success": true}`, rec.Body.String())
}
