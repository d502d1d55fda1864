package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const checkTimeout = 2 * time.Second

// Check is one dependency the health endpoint pings, e.g. the database or redis.
type Check struct {
	Name string
	Ping func(ctx context.Context) error
}

type Handler struct{ checks []Check }

func NewHandler(checks ...Check) *Handler { return &Handler{checks: checks} }

// Health reports "ok" when every dependency answers, otherwise "degraded"
// with a 503 so load balancers stop routing here.
func (h *Handler) Health(c echo.Context) error {
	code, status := http.StatusOK, "ok"
	deps := make(map[string]string, len(h.checks))
	for _, chk := range h.checks {
		ctx, cancel := context.WithTimeout(c.Request().Context(), checkTimeout)
		err := chk.Ping(ctx)
		cancel()
		if err != nil {
			slog.WarnContext(c.Request().Context(), "health check failed", "dependency", chk.Name, "error", err)
			deps[chk.Name] = "down"
			code, status = http.StatusServiceUnavailable, "degraded"
			continue
		}
		deps[chk.Name] = "up"
	}
	return c.JSON(code, map[string]any{
		"status":       status,
		"dependencies": deps,
		"time":         time.Now().UTC().Format(time.RFC3339Nano),
	})
}
