package profilemock

import (
	"context"

	domain "loan-marketplace/internal/domain/profile"
)

var _ domain.Repository = (*Repo)(nil)

type Repo struct {
	GetByUserIDFn          func(ctx context.Context, userID uint64) (*domain.CustomerProfile, error)
	GetByUserIDForUpdateFn func(ctx context.Context, userID uint64) (*domain.CustomerProfile, error)
	CreateFn               func(ctx context.Context, p *domain.CustomerProfile) error
	SaveFn                 func(ctx context.Context, p *domain.CustomerProfile) error
}

func (m *Repo) GetByUserID(ctx context.Context, userID uint64) (*domain.CustomerProfile, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByUserIDForUpdate(ctx context.Context, userID uint64) (*domain.CustomerProfile, error) {
	if m.GetByUserIDForUpdateFn != nil {
		return m.GetByUserIDForUpdateFn(ctx, userID)
	}
	return nil, context.Canceled
}

func (m *Repo) Create(ctx context.Context, p *domain.CustomerProfile) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, p *domain.CustomerProfile) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}
