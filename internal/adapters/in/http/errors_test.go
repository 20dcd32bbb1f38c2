package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"required value", errs.NewValueIsRequiredError("name"), http.StatusBadRequest},
		{"invalid value", errs.NewValueIsInvalidError("status"), http.StatusBadRequest},
		{"out of range", errs.NewValueIsOutOfRangeError("lat", 91, -90, 90), http.StatusBadRequest},
		{"object not found", errs.NewObjectNotFoundError("order", "id"), http.StatusNotFound},
		{"order not found", commands.ErrOrderNotFound, http.StatusNotFound},
		{"driver not found", commands.ErrDriverNotFound, http.StatusNotFound},
		{"notification not found", commands.ErrNotificationNotFound, http.StatusNotFound},
		{"restaurant not found", commands.ErrRestaurantNotFound, http.StatusNotFound},
		{"conflict", errs.NewConflictError("order"), http.StatusConflict},
		{"restaurant closed", commands.ErrRestaurantClosed, http.StatusConflict},
		{"anything else", assert.AnError, http.StatusInternalServerError},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.status, statusFor(test.err))
		})
	}
}

func TestWriteError(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	err := writeError(ctx, errs.NewObjectNotFoundError("order", "42"))

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t,
		`{"success": false, "error": "object not found: 42"}`,
		rec.Body.String())
}
