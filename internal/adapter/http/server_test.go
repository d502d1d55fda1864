package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"finance-dashboard/internal/adapter/middleware"
	"finance-dashboard/internal/domain/uow"
	"finance-dashboard/internal/testutil/debtmock"
	"finance-dashboard/internal/testutil/goalmock"
	"finance-dashboard/internal/testutil/txmock"
	"finance-dashboard/internal/testutil/uowmock"
	"finance-dashboard/internal/usecase/dashboard"
	debtuc "finance-dashboard/internal/usecase/debt"
	goaluc "finance-dashboard/internal/usecase/goal"
	txuc "finance-dashboard/internal/usecase/transaction"

	"github.com/labstack/echo/v4"
)

var testUser = strings.Repeat("b", 32)

type fixture struct {
	debts *debtmock.Repo
	goals *goalmock.Repo
	txs   *txmock.Repo
}

func newFixture() *fixture {
	return &fixture{debts: &debtmock.Repo{}, goals: &goalmock.Repo{}, txs: &txmock.Repo{}}
}

// server wires the real use cases over the mocks, behind UserScope.
func (f *fixture) server() *echo.Echo {
	tx := uowmock.Passthrough(uow.Repos{Debts: f.debts, Goals: f.goals, Transactions: f.txs})
	debts := debtuc.NewUsecase(f.debts, tx, nil)
	goals := goaluc.NewUsecase(f.goals, tx, nil)
	txs := txuc.NewUsecase(f.txs)

	e := newEchoWithValidator()
	Register(e, Handlers{
		Health:       NewHandler(),
		Debts:        NewDebtHandler(debts),
		Goals:        NewGoalHandler(goals),
		Transactions: NewTransactionHandler(txs),
		Dashboard:    NewDashboardHandler(dashboard.NewUsecase(txs, debts, goals)),
	}, middleware.UserScope())
	return e
}

func newEchoWithValidator() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func mustJSON(v any) *bytes.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func call(t *testing.T, e *echo.Echo, method, path string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(middleware.HeaderUserID, testUser)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("bad json: %v; raw=%s", err, rec.Body.String())
	}
	return out
}
