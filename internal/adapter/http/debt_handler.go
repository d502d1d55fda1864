package http

import (
	"net/http"

	"finance-dashboard/internal/domain/debt"
	debtuc "finance-dashboard/internal/usecase/debt"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type DebtHandler struct{ uc *debtuc.Usecase }

func NewDebtHandler(uc *debtuc.Usecase) *DebtHandler { return &DebtHandler{uc: uc} }

type createDebtReq struct {
	Name             string           `json:"name"              validate:"required,max=255"`
	Lender           string           `json:"lender"            validate:"required,max=255"`
	OriginalAmount   decimal.Decimal  `json:"original_amount"   validate:"gt=0,dec2"`
	CurrentBalance   *decimal.Decimal `json:"current_balance"   validate:"omitempty,gte=0,dec2"`
	InterestRate     decimal.Decimal  `json:"interest_rate"     validate:"gte=0,lte=100,dec2"`
	InterestType     string           `json:"interest_type"`
	PaymentFrequency string           `json:"payment_frequency"`
	StartDate        string           `json:"start_date"        validate:"omitempty,datetime=2006-01-02"`
	DueDate          string           `json:"due_date"          validate:"omitempty,datetime=2006-01-02"`
	MinimumPayment   decimal.Decimal  `json:"minimum_payment"   validate:"gte=0,dec2"`
	Priority         string           `json:"priority"`
	Notes            string           `json:"notes"`
}

type recordPaymentReq struct {
	Amount decimal.Decimal `json:"amount" validate:"gt=0,dec2"`
	Date   string          `json:"date"   validate:"omitempty,datetime=2006-01-02"`
	Type   string          `json:"type"`
	Notes  string          `json:"notes"`
}

func (h *DebtHandler) CreateDebt(c echo.Context) error {
	var req createDebtReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Create(c.Request().Context(), debtuc.CreateDebtInput{
		UserID:           userID(c),
		Name:             req.Name,
		Lender:           req.Lender,
		OriginalAmount:   req.OriginalAmount,
		CurrentBalance:   req.CurrentBalance,
		InterestRate:     req.InterestRate,
		InterestType:     req.InterestType,
		PaymentFrequency: req.PaymentFrequency,
		StartDate:        dateOrZero(req.StartDate),
		DueDate:          parseDate(req.DueDate),
		MinimumPayment:   req.MinimumPayment,
		Priority:         req.Priority,
		Notes:            req.Notes,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *DebtHandler) ListDebts(c echo.Context) error {
	out, err := h.uc.ListActive(c.Request().Context(), userID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *DebtHandler) RecordPayment(c echo.Context) error {
	debtID := c.Param("debt_id")
	if debtID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing debt_id path param"})
	}
	var req recordPaymentReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.RecordPayment(c.Request().Context(), debtuc.RecordPaymentInput{
		UserID: userID(c),
		DebtID: debtID,
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

func (h *DebtHandler) ListPayments(c echo.Context) error {
	out, err := h.uc.ListPayments(c.Request().Context(), userID(c), c.QueryParam("debt_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// Strategy defaults to avalanche when no method is given.
func (h *DebtHandler) Strategy(c echo.Context) error {
	method := debt.Method(c.QueryParam("method"))
	if method == "" {
		method = debt.MethodAvalanche
	}
	s, err := h.uc.Strategy(c.Request().Context(), userID(c), method)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *DebtHandler) Compare(c echo.Context) error {
	out, err := h.uc.Compare(c.Request().Context(), userID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
