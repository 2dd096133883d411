package http

import (
	"net/http"

	"loan-marketplace/internal/usecase/profile"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ProfileHandler struct {
	uc  *profile.Usecase
	log *zap.Logger
}

func NewProfileHandler(uc *profile.Usecase, log *zap.Logger) *ProfileHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ProfileHandler{uc: uc, log: log}
}

type saveProfileReq struct {
	PhoneNumber        string          `json:"phone_number"        validate:"max=20"`
	NationalID         string          `json:"national_id"         validate:"max=50"`
	ResidentialAddress string          `json:"residential_address" validate:"max=500"`
	EmploymentStatus   string          `json:"employment_status"   validate:"max=50"`
	MonthlyIncome      decimal.Decimal `json:"monthly_income"      validate:"dec2,decnonneg"`
}

func (h *ProfileHandler) Get(c echo.Context) error {
	userID, ok := sessionUser(c)
	if !ok {
		return unauthorized(c)
	}
	p, err := h.uc.Get(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProfileHandler) Save(c echo.Context) error {
	userID, ok := sessionUser(c)
	if !ok {
		return unauthorized(c)
	}
	var req saveProfileReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	p, err := h.uc.Save(c.Request().Context(), userID, profile.SaveInput(req))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, p)
}
