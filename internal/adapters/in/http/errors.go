package http

import (
	"errors"
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps an application error onto the HTTP surface:
// missing/invalid input is 400, unknown objects are 404, lost races are 409,
// everything else is 500.
func writeError(ctx echo.Context, err error) error {
	return ctx.JSON(statusFor(err), ErrorResponse{
		Success: false,
		Error:   err.Error(),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, commands.ErrOrderNotFound),
		errors.Is(err, commands.ErrDriverNotFound),
		errors.Is(err, commands.ErrNotificationNotFound),
		errors.Is(err, commands.ErrRestaurantNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, commands.ErrRestaurantClosed):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// badRequest writes a 400 with a plain message, for malformed bodies and
// unparsable parameters.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Success: false,
		Error:   message,
	})
}
