package productmock

import (
	"context"

	domain "loan-marketplace/internal/domain/product"
)

var _ domain.Repository = (*Repo)(nil)

type Repo struct {
	GetActiveByIDForUpdateFn func(ctx context.Context, id uint64) (*domain.Product, error)
	GetActiveByIDFn          func(ctx context.Context, id uint64) (*domain.Product, error)
}

func (m *Repo) GetActiveByIDForUpdate(ctx context.Context, id uint64) (*domain.Product, error) {
	if m.GetActiveByIDForUpdateFn != nil {
		return m.GetActiveByIDForUpdateFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetActiveByID(ctx context.Context, id uint64) (*domain.Product, error) {
	if m.GetActiveByIDFn != nil {
		return m.GetActiveByIDFn(ctx, id)
	}
	return nil, context.Canceled
}
