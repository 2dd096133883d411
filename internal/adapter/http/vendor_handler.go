package http

import (
	"net/http"
	"strconv"

	domainVendor "loan-marketplace/internal/domain/vendors"
	"loan-marketplace/internal/usecase/vendors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type VendorHandler struct {
	uc  *vendors.Usecase
	log *zap.Logger
}

func NewVendorHandler(uc *vendors.Usecase, log *zap.Logger) *VendorHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &VendorHandler{uc: uc, log: log}
}

type reviewVendorReq struct {
	Status string `json:"status"`
}

func (h *VendorHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), domainVendor.Status(c.QueryParam("status")))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"vendors": out})
}

func (h *VendorHandler) Review(c echo.Context) error {
	adminID, ok := sessionUser(c)
	if !ok {
		return unauthorized(c)
	}
	vendorID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || vendorID == 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid vendor ID"})
	}
	var req reviewVendorReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	dto, err := h.uc.Review(c.Request().Context(), adminID, vendorID, domainVendor.Status(req.Status))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}
