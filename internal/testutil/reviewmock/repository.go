package reviewmock

import (
	"context"

	domain "loan-marketplace/internal/domain/review"
)

var _ domain.Repository = (*Repo)(nil)

type Repo struct {
	CreateFn       func(ctx context.Context, a *domain.AdminAction) error
	ListByLoanIDFn func(ctx context.Context, loanID uint64) ([]domain.AdminAction, error)
}

func (m *Repo) Create(ctx context.Context, a *domain.AdminAction) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) ListByLoanID(ctx context.Context, loanID uint64) ([]domain.AdminAction, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanID)
	}
	return nil, context.Canceled
}
