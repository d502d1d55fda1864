package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"finance-dashboard/internal/adapter/middleware"
	"finance-dashboard/internal/domain/debt"
	"finance-dashboard/internal/domain/goal"
	"finance-dashboard/internal/domain/transaction"

	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

// bindAndValidate writes the 400/422 response itself and reports whether the
// handler should go on.
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(req); err != nil {
		return false, c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	return true, nil
}

// Map domain errors → HTTP codes.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, debt.ErrInvalidInput),
		errors.Is(err, goal.ErrInvalidInput),
		errors.Is(err, transaction.ErrInvalidInput):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, debt.ErrNotFound), errors.Is(err, goal.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, debt.ErrRetired),
		errors.Is(err, goal.ErrClosed),
		errors.Is(err, goal.ErrInvalidTransition):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		slog.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method, "path", c.Path(), "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

// parseDate reads an optional YYYY-MM-DD value already checked by the validator.
func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

func dateOrZero(s string) time.Time {
	if t := parseDate(s); t != nil {
		return *t
	}
	return time.Time{}
}

func today() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func userID(c echo.Context) string { return middleware.UserID(c) }
