package mysql

import (
	"context"
	"errors"

	"loan-marketplace/internal/domain/loan"
	"loan-marketplace/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

// NewRepos binds every repository to db, which may be the pool or a tx handle.
func NewRepos(db *gorm.DB) uow.Repos {
	return uow.Repos{
		Loans:     &LoanRepository{db: db},
		Actions:   &AdminActionRepository{db: db},
		Profiles:  &ProfileRepository{db: db},
		Documents: &DocumentRepository{db: db},
		Products:  &ProductRepository{db: db},
		Users:     &UserRepository{db: db},
		Vendors:   &VendorRepository{db: db},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepos(tx))
	})
}

func (u *GormUoW) WithinApplicationTx(ctx context.Context, applicationID uint64, fn func(r uow.Repos, a *loan.Application) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := NewRepos(tx)
		// lock the application row up-front so concurrent reviews serialize
		a, err := r.Loans.GetByIDForUpdate(ctx, applicationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return loan.NewRuleError(loan.ErrNotFound, "Loan not found")
			}
			return err
		}
		return fn(r, a)
	})
}
