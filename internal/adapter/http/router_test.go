package http

import (
	"net/http"
	"testing"
)

func TestRegister_Routes(t *testing.T) {
	e := newFixture().server()

	want := map[string]bool{
		"GET /health":                                   false,
		"POST /api/v1/debts":                            false,
		"GET /api/v1/debts":                             false,
		"POST /api/v1/debts/:debt_id/payments":          false,
		"GET /api/v1/payments":                          false,
		"GET /api/v1/debts/strategy":                    false,
		"GET /api/v1/debts/strategy/compare":            false,
		"POST /api/v1/goals":                            false,
		"GET /api/v1/goals":                             false,
		"PATCH /api/v1/goals/:goal_id/status":           false,
		"POST /api/v1/goals/:goal_id/contributions":     false,
		"GET /api/v1/contributions":                     false,
		"GET /api/v1/goals/insights":                    false,
		"POST /api/v1/transactions":                     false,
		"GET /api/v1/transactions":                      false,
		"GET /api/v1/transactions/summary":              false,
		"GET /api/v1/transactions/categories":           false,
		"GET /api/v1/transactions/trends":               false,
		"GET /api/v1/transactions/options":              false,
		"GET /api/v1/transactions/analytics/daily":      false,
		"GET /api/v1/transactions/analytics/categories": false,
		"GET /api/v1/transactions/analytics/modes":      false,
		"GET /api/v1/transactions/analytics/weekdays":   false,
		"GET /api/v1/dashboard":                         false,
	}
	for _, r := range e.Routes() {
		key := r.Method + " " + r.Path
		if _, ok := want[key]; ok {
			want[key] = true
		}
	}
	for k, seen := range want {
		if !seen {
			t.Fatalf("route %s not registered", k)
		}
	}
}

func TestHealth_NoUserRequired(t *testing.T) {
	rec := call(t, newFixture().server(), http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
