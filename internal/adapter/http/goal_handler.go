package http

import (
	"net/http"

	goaluc "finance-dashboard/internal/usecase/goal"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type GoalHandler struct{ uc *goaluc.Usecase }

func NewGoalHandler(uc *goaluc.Usecase) *GoalHandler { return &GoalHandler{uc: uc} }

type createGoalReq struct {
	Name          string           `json:"name"           validate:"required,max=255"`
	Description   string           `json:"description"`
	TargetAmount  decimal.Decimal  `json:"target_amount"  validate:"gt=0,dec2"`
	CurrentAmount decimal.Decimal  `json:"current_amount" validate:"gte=0,dec2"`
	Category      string           `json:"category"`
	Priority      string           `json:"priority"`
	TargetDate    string           `json:"target_date"    validate:"omitempty,datetime=2006-01-02"`
	StartDate     string           `json:"start_date"     validate:"omitempty,datetime=2006-01-02"`
	MonthlyTarget *decimal.Decimal `json:"monthly_target" validate:"omitempty,gte=0,dec2"`
	Notes         string           `json:"notes"`
}

type contributeReq struct {
	Amount decimal.Decimal `json:"amount" validate:"gt=0,dec2"`
	Date   string          `json:"date"   validate:"omitempty,datetime=2006-01-02"`
	Type   string          `json:"type"`
	Notes  string          `json:"notes"`
}

type updateStatusReq struct {
	Status string `json:"status" validate:"required"`
}

func (h *GoalHandler) CreateGoal(c echo.Context) error {
	var req createGoalReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Create(c.Request().Context(), goaluc.CreateGoalInput{
		UserID:        userID(c),
		Name:          req.Name,
		Description:   req.Description,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		Category:      req.Category,
		Priority:      req.Priority,
		TargetDate:    parseDate(req.TargetDate),
		StartDate:     dateOrZero(req.StartDate),
		MonthlyTarget: req.MonthlyTarget,
		Notes:         req.Notes,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *GoalHandler) ListGoals(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), userID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *GoalHandler) UpdateStatus(c echo.Context) error {
	goalID := c.Param("goal_id")
	if goalID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing goal_id path param"})
	}
	var req updateStatusReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.UpdateStatus(c.Request().Context(), goaluc.UpdateStatusInput{
		UserID: userID(c),
		GoalID: goalID,
		Status: req.Status,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *GoalHandler) AddContribution(c echo.Context) error {
	goalID := c.Param("goal_id")
	if goalID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing goal_id path param"})
	}
	var req contributeReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.AddContribution(c.Request().Context(), goaluc.ContributeInput{
		UserID: userID(c),
		GoalID: goalID,
		Amount: req.Amount,
		Date:   dateOrZero(req.Date),
		Type:   req.Type,
		Notes:  req.Notes,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *GoalHandler) ListContributions(c echo.Context) error {
	out, err := h.uc.ListContributions(c.Request().Context(), userID(c), c.QueryParam("goal_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *GoalHandler) Insights(c echo.Context) error {
	out, err := h.uc.Insights(c.Request().Context(), userID(c), today())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
