package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

type healthBody struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies"`
	Time         string            `json:"time"`
}

func runHealth(t *testing.T, h *Handler) (int, healthBody) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	if err := h.Health(echo.New().NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var body healthBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v; raw=%s", err, rec.Body.String())
	}
	return rec.Code, body
}

func TestHealth_Dependencies(t *testing.T) {
	up := Check{Name: "db", Ping: func(context.Context) error { return nil }}
	down := Check{Name: "db", Ping: func(context.Context) error { return errors.New("connection refused") }}

	tests := []struct {
		name     string
		checks   []Check
		wantCode int
		want     string
		wantDeps map[string]string
	}{
		{name: "no checks", wantCode: http.StatusOK, want: "ok", wantDeps: map[string]string{}},
		{name: "db up", checks: []Check{up}, wantCode: http.StatusOK, want: "ok", wantDeps: map[string]string{"db": "up"}},
		{name: "db down", checks: []Check{down}, wantCode: http.StatusServiceUnavailable, want: "degraded", wantDeps: map[string]string{"db": "down"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := runHealth(t, NewHandler(tt.checks...))
			if code != tt.wantCode || body.Status != tt.want {
				t.Fatalf("got %d %q, want %d %q", code, body.Status, tt.wantCode, tt.want)
			}
			if len(body.Dependencies) != len(tt.wantDeps) {
				t.Fatalf("dependencies = %v, want %v", body.Dependencies, tt.wantDeps)
			}
			for k, v := range tt.wantDeps {
				if body.Dependencies[k] != v {
					t.Fatalf("dependency %s = %q, want %q", k, body.Dependencies[k], v)
				}
			}
			if _, err := time.Parse(time.RFC3339Nano, body.Time); err != nil {
				t.Fatalf("time not RFC3339Nano: %v (value=%q)", err, body.Time)
			}
		})
	}
}

func TestHealth_RedisGoesAway(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer rdb.Close()

	h := NewHandler(Check{Name: "redis", Ping: func(ctx context.Context) error { return rdb.Ping(ctx).Err() }})

	if code, body := runHealth(t, h); code != http.StatusOK || body.Dependencies["redis"] != "up" {
		t.Fatalf("with redis running: %d %+v", code, body)
	}

	mr.Close()
	if code, body := runHealth(t, h); code != http.StatusServiceUnavailable || body.Dependencies["redis"] != "down" {
		t.Fatalf("with redis stopped: %d %+v", code, body)
	}
}
