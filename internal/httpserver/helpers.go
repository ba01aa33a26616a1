package httpserver

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Skotchmaster/inventory_service/internal/domain"
	"github.com/labstack/echo/v4"
)

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id is not a positive integer")
	}
	return uint(id), nil
}

func httpStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInsufficientStock):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// serviceError logs the failure and turns a service error into the
// echo.HTTPError the caller sees. Domain errors keep their message, anything
// unexpected is masked as an internal error.
func serviceError(l *slog.Logger, op string, err error) error {
	status := httpStatus(err)
	if status == http.StatusInternalServerError {
		l.Error(op, "status", status, "error", err)
		return echo.NewHTTPError(status, "internal error")
	}

	l.Warn(op, "status", status, "reason", err.Error())
	return echo.NewHTTPError(status, err.Error())
}
