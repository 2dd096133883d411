package uow

import (
	"context"

	"loan-marketplace/internal/domain/document"
	"loan-marketplace/internal/domain/loan"
	"loan-marketplace/internal/domain/product"
	"loan-marketplace/internal/domain/profile"
	"loan-marketplace/internal/domain/review"
	"loan-marketplace/internal/domain/user"
	"loan-marketplace/internal/domain/vendors"
)

// Repos is the set of repositories bound to one transaction (or to the plain
// connection pool when built outside of one).
type Repos struct {
	Loans     loan.Repository
	Actions   review.Repository
	Profiles  profile.Repository
	Documents document.Repository
	Products  product.Repository
	Users     user.Repository
	Vendors   vendors.Repository
}

type UnitOfWork interface {
	// plain tx; a non-nil error from fn rolls everything back
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// lock the application row first, then pass it in
	WithinApplicationTx(ctx context.Context, applicationID uint64, fn func(r Repos, a *loan.Application) error) error
}
