package loan

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, a *Application) error
	GetByID(ctx context.Context, id uint64) (*Application, error)
	// Row-locked read; only meaningful inside a transaction.
	GetByIDForUpdate(ctx context.Context, id uint64) (*Application, error)
	// Pending/approved applications of a user.
	ListActiveByUserID(ctx context.Context, userID uint64) ([]Application, error)
	ListActiveByUserIDForUpdate(ctx context.Context, userID uint64) ([]Application, error)
	ListByUserID(ctx context.Context, userID uint64) ([]Application, error)
	// Newest first; empty status means all.
	List(ctx context.Context, status Status) ([]Application, error)
	// Touches status and reviewed_at only.
	UpdateStatus(ctx context.Context, id uint64, status Status, reviewedAt time.Time) error
}
