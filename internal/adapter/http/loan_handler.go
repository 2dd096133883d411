package http

import (
	"net/http"

	"loan-marketplace/internal/usecase/loan"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type LoanHandler struct {
	uc  *loan.Usecase
	log *zap.Logger
}

func NewLoanHandler(uc *loan.Usecase, log *zap.Logger) *LoanHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &LoanHandler{uc: uc, log: log}
}

// Presence and positivity are business rules checked by the engine; the
// validator only rejects malformed shapes.
type submitLoanReq struct {
	Amount                   decimal.Decimal `json:"amount"                     validate:"dec2"`
	Purpose                  string          `json:"purpose"                    validate:"max=2000"`
	RepaymentPeriodMonths    int             `json:"repayment_period_months"    validate:"lte=600"`
	DeclaredEmploymentStatus string          `json:"declared_employment_status" validate:"max=50"`
	DeclaredMonthlyIncome    decimal.Decimal `json:"declared_monthly_income"    validate:"dec2"`
	TermsAccepted            bool            `json:"terms_accepted"`
	VendorID                 *uint64         `json:"vendor_id"`
	LoanProductID            *uint64         `json:"loan_product_id"`
}

func (h *LoanHandler) Submit(c echo.Context) error {
	userID, ok := sessionUser(c)
	if !ok {
		return unauthorized(c)
	}
	var req submitLoanReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Submit(c.Request().Context(), userID, loan.SubmitInput(req))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{
		"message":     "Loan application submitted successfully",
		"application": dto,
	})
}

func (h *LoanHandler) Eligibility(c echo.Context) error {
	userID, ok := sessionUser(c)
	if !ok {
		return unauthorized(c)
	}
	return c.JSON(http.StatusOK, h.uc.Preview(c.Request().Context(), userID))
}

func (h *LoanHandler) Mine(c echo.Context) error {
	userID, ok := sessionUser(c)
	if !ok {
		return unauthorized(c)
	}
	apps, err := h.uc.ListMine(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"applications": apps})
}

func (h *LoanHandler) Dashboard(c echo.Context) error {
	userID, ok := sessionUser(c)
	if !ok {
		return unauthorized(c)
	}
	d, err := h.uc.Dashboard(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, d)
}
