package vendormock

import (
	"context"

	domain "loan-marketplace/internal/domain/vendors"
)

var _ domain.Repository = (*Repo)(nil)

type Repo struct {
	ListFn             func(ctx context.Context, status domain.Status) ([]domain.Listing, error)
	GetByIDForUpdateFn func(ctx context.Context, id uint64) (*domain.Vendor, error)
	UpdateStatusFn     func(ctx context.Context, id uint64, status domain.Status) error
}

func (m *Repo) List(ctx context.Context, status domain.Status) ([]domain.Listing, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, status)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Vendor, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) UpdateStatus(ctx context.Context, id uint64, status domain.Status) error {
	if m.UpdateStatusFn != nil {
		return m.UpdateStatusFn(ctx, id, status)
	}
	return nil
}
