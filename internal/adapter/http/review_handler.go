package http

import (
	"net/http"
	"strconv"

	domainLoan "loan-marketplace/internal/domain/loan"
	domainReview "loan-marketplace/internal/domain/review"
	"loan-marketplace/internal/usecase/review"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ReviewHandler struct {
	uc  *review.Usecase
	log *zap.Logger
}

func NewReviewHandler(uc *review.Usecase, log *zap.Logger) *ReviewHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ReviewHandler{uc: uc, log: log}
}

// action is checked by the use case so that a bad value reads "Invalid action".
type reviewLoanReq struct {
	Action  string  `json:"action"`
	Comment *string `json:"comment" validate:"omitempty,max=2000"`
}

func (h *ReviewHandler) Review(c echo.Context) error {
	adminID, ok := sessionUser(c)
	if !ok {
		return unauthorized(c)
	}
	loanID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || loanID == 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid loan ID"})
	}
	var req reviewLoanReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	dto, err := h.uc.Review(c.Request().Context(), adminID, review.ReviewInput{
		ApplicationID: loanID,
		Decision:      domainReview.Action(req.Action),
		Comment:       req.Comment,
	})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ReviewHandler) List(c echo.Context) error {
	apps, err := h.uc.List(c.Request().Context(), domainLoan.Status(c.QueryParam("status")))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"applications": apps})
}

func (h *ReviewHandler) Get(c echo.Context) error {
	loanID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || loanID == 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid loan ID"})
	}
	detail, err := h.uc.Get(c.Request().Context(), loanID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, detail)
}
