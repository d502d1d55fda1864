package http

import (
	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Health       *Handler
	Debts        *DebtHandler
	Goals        *GoalHandler
	Transactions *TransactionHandler
	Dashboard    *DashboardHandler
}

// Register mounts every route. mw is applied to /api/v1 in order, so the
// user scope goes before idempotency.
func Register(e *echo.Echo, h Handlers, mw ...echo.MiddlewareFunc) {
	e.GET("/health", h.Health.Health)

	api := e.Group("/api/v1", mw...)

	api.POST("/debts", h.Debts.CreateDebt)
	api.GET("/debts", h.Debts.ListDebts)
	api.GET("/debts/strategy", h.Debts.Strategy)
	api.GET("/debts/strategy/compare", h.Debts.Compare)
	api.POST("/debts/:debt_id/payments", h.Debts.RecordPayment)
	api.GET("/payments", h.Debts.ListPayments)

	api.POST("/goals", h.Goals.CreateGoal)
	api.GET("/goals", h.Goals.ListGoals)
	api.GET("/goals/insights", h.Goals.Insights)
	api.PATCH("/goals/:goal_id/status", h.Goals.UpdateStatus)
	api.POST("/goals/:goal_id/contributions", h.Goals.AddContribution)
	api.GET("/contributions", h.Goals.ListContributions)

	api.POST("/transactions", h.Transactions.CreateTransaction)
	api.GET("/transactions", h.Transactions.ListTransactions)
	api.GET("/transactions/summary", h.Transactions.Summary)
	api.GET("/transactions/categories", h.Transactions.Categories)
	api.GET("/transactions/trends", h.Transactions.Trends)
	api.GET("/transactions/options", h.Transactions.Options)
	api.GET("/transactions/analytics/daily", h.Transactions.Daily)
	api.GET("/transactions/analytics/categories", h.Transactions.CategoryMonths)
	api.GET("/transactions/analytics/modes", h.Transactions.Modes)
	api.GET("/transactions/analytics/weekdays", h.Transactions.Weekdays)

	api.GET("/dashboard", h.Dashboard.Overview)
}
