package usermock

import (
	"context"

	domain "loan-marketplace/internal/domain/user"
)

var _ domain.Repository = (*Repo)(nil)

type Repo struct {
	GetByIDFn   func(ctx context.Context, id uint64) (*domain.User, error)
	ListByIDsFn func(ctx context.Context, ids []uint64) ([]domain.User, error)
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByIDs(ctx context.Context, ids []uint64) ([]domain.User, error) {
	if m.ListByIDsFn != nil {
		return m.ListByIDsFn(ctx, ids)
	}
	return nil, context.Canceled
}
