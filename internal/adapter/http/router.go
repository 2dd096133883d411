package http

import (
	"loan-marketplace/internal/adapter/middleware"
	"loan-marketplace/internal/domain/user"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

type Routes struct {
	Health    *Handler
	Loans     *LoanHandler
	Reviews   *ReviewHandler
	Profiles  *ProfileHandler
	Documents *DocumentHandler
	Vendors   *VendorHandler

	JWTSecret []byte
	// optional; applied to customer and admin mutations
	Idempotency echo.MiddlewareFunc
	// upload routes are only mounted when a file store is configured
	UploadsEnabled bool
	Metrics        echo.HandlerFunc
}

func Register(e *echo.Echo, r Routes) {
	e.GET("/health", r.Health.Health)
	if r.Metrics != nil {
		e.GET("/metrics", r.Metrics)
	}

	api := e.Group("/api/v1", middleware.Auth(r.JWTSecret))
	mutating := []echo.MiddlewareFunc{}
	if r.Idempotency != nil {
		mutating = append(mutating, r.Idempotency)
	}

	customer := api.Group("", middleware.RequireRole(user.RoleCustomer))
	customer.GET("/loans/eligibility", r.Loans.Eligibility)
	customer.POST("/loans", r.Loans.Submit, mutating...)
	customer.GET("/loans/mine", r.Loans.Mine)
	customer.GET("/customer/dashboard", r.Loans.Dashboard)
	customer.GET("/profile", r.Profiles.Get)
	customer.PUT("/profile", r.Profiles.Save, mutating...)
	customer.GET("/documents", r.Documents.List)
	if r.UploadsEnabled {
		customer.POST("/documents/:doc_type", r.Documents.Upload, echomw.BodyLimit("6M"))
	}

	admin := api.Group("/admin", middleware.RequireRole(user.RoleAdmin))
	admin.GET("/loans", r.Reviews.List)
	admin.GET("/loans/:id", r.Reviews.Get)
	admin.PATCH("/loans/:id", r.Reviews.Review, mutating...)
	admin.GET("/vendors", r.Vendors.List)
	admin.PATCH("/vendors/:id", r.Vendors.Review, mutating...)
}
