package http

import (
	"net/http"

	txuc "finance-dashboard/internal/usecase/transaction"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type TransactionHandler struct{ uc *txuc.Usecase }

func NewTransactionHandler(uc *txuc.Usecase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

type createTransactionReq struct {
	Date     string          `json:"date"     validate:"omitempty,datetime=2006-01-02"`
	Mode     string          `json:"mode"     validate:"required,max=64"`
	Category string          `json:"category" validate:"required,max=64"`
	Amount   decimal.Decimal `json:"amount"   validate:"gt=0,dec2"`
	Type     string          `json:"type"     validate:"required"`
	Currency string          `json:"currency" validate:"omitempty,len=3"`
}

func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req createTransactionReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Create(c.Request().Context(), txuc.CreateTransactionInput{
		UserID:   userID(c),
		Date:     dateOrZero(req.Date),
		Mode:     req.Mode,
		Category: req.Category,
		Amount:   req.Amount,
		Type:     req.Type,
		Currency: req.Currency,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), userID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *TransactionHandler) Summary(c echo.Context) error {
	out, err := h.uc.Summary(c.Request().Context(), userID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *TransactionHandler) Categories(c echo.Context) error {
	out, err := h.uc.Categories(c.Request().Context(), userID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *TransactionHandler) Trends(c echo.Context) error {
	out, err := h.uc.Trends(c.Request().Context(), userID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *TransactionHandler) Daily(c echo.Context) error {
	out, err := h.uc.Daily(c.Request().Context(), userID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *TransactionHandler) CategoryMonths(c echo.Context) error {
	out, err := h.uc.CategoryMonths(c.Request().Context(), userID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *TransactionHandler) Modes(c echo.Context) error {
	out, err := h.uc.Modes(c.Request().Context(), userID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *TransactionHandler) Weekdays(c echo.Context) error {
	out, err := h.uc.Weekdays(c.Request().Context(), userID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *TransactionHandler) Options(c echo.Context) error {
	out, err := h.uc.Options(c.Request().Context(), userID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
