package loanmock

import (
	"context"
	"time"

	domain "loan-marketplace/internal/domain/loan"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset reads return context.Canceled; unset writes are no-ops.
type Repo struct {
	CreateFn                      func(ctx context.Context, a *domain.Application) error
	GetByIDFn                     func(ctx context.Context, id uint64) (*domain.Application, error)
	GetByIDForUpdateFn            func(ctx context.Context, id uint64) (*domain.Application, error)
	ListActiveByUserIDFn          func(ctx context.Context, userID uint64) ([]domain.Application, error)
	ListActiveByUserIDForUpdateFn func(ctx context.Context, userID uint64) ([]domain.Application, error)
	ListByUserIDFn                func(ctx context.Context, userID uint64) ([]domain.Application, error)
	ListFn                        func(ctx context.Context, status domain.Status) ([]domain.Application, error)
	UpdateStatusFn                func(ctx context.Context, id uint64, status domain.Status, reviewedAt time.Time) error
}

func (m *Repo) Create(ctx context.Context, a *domain.Application) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Application, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Application, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) ListActiveByUserID(ctx context.Context, userID uint64) ([]domain.Application, error) {
	if m.ListActiveByUserIDFn != nil {
		return m.ListActiveByUserIDFn(ctx, userID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListActiveByUserIDForUpdate(ctx context.Context, userID uint64) ([]domain.Application, error) {
	if m.ListActiveByUserIDForUpdateFn != nil {
		return m.ListActiveByUserIDForUpdateFn(ctx, userID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByUserID(ctx context.Context, userID uint64) ([]domain.Application, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context, status domain.Status) ([]domain.Application, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, status)
	}
	return nil, context.Canceled
}

func (m *Repo) UpdateStatus(ctx context.Context, id uint64, status domain.Status, reviewedAt time.Time) error {
	if m.UpdateStatusFn != nil {
		return m.UpdateStatusFn(ctx, id, status, reviewedAt)
	}
	return nil
}
