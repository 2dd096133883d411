package http

import (
	"errors"
	"net/http"

	"loan-marketplace/internal/adapter/middleware"
	"loan-marketplace/internal/domain/loan"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const internalErrMsg = "internal server error, please try again later"

// RuleErrorResponse is the body of every business-rule rejection.
type RuleErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// respondError maps use-case errors onto HTTP. Anything that is not a rule
// error is logged here and hidden from the client.
func respondError(c echo.Context, log *zap.Logger, err error) error {
	var re *loan.RuleError
	if errors.As(err, &re) {
		status := http.StatusBadRequest
		if errors.Is(err, loan.ErrNotFound) {
			status = http.StatusNotFound
		}
		return c.JSON(status, RuleErrorResponse{Error: re.Msg, Code: loan.Code(err)})
	}

	log.Error("request failed",
		zap.String("method", c.Request().Method),
		zap.String("route", c.Path()),
		zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
		zap.Error(err),
	)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: internalErrMsg})
}

func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(req); err != nil {
		return false, c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	return true, nil
}

// sessionUser reads the session set by middleware.Auth.
func sessionUser(c echo.Context) (uint64, bool) {
	s, ok := middleware.SessionFrom(c)
	return s.UserID, ok
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
}
