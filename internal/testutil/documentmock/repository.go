package documentmock

import (
	"context"

	domain "loan-marketplace/internal/domain/document"
)

var _ domain.Repository = (*Repo)(nil)

type Repo struct {
	CreateFn       func(ctx context.Context, d *domain.Document) error
	ListByUserIDFn func(ctx context.Context, userID uint64) ([]domain.Document, error)
	ListDocTypesFn func(ctx context.Context, userID uint64) ([]string, error)
}

func (m *Repo) Create(ctx context.Context, d *domain.Document) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, d)
	}
	return nil
}

func (m *Repo) ListByUserID(ctx context.Context, userID uint64) ([]domain.Document, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListDocTypes(ctx context.Context, userID uint64) ([]string, error) {
	if m.ListDocTypesFn != nil {
		return m.ListDocTypesFn(ctx, userID)
	}
	return nil, context.Canceled
}
