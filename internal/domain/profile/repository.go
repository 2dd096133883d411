package profile

import "context"

type Repository interface {
	GetByUserID(ctx context.Context, userID uint64) (*CustomerProfile, error)
	GetByUserIDForUpdate(ctx context.Context, userID uint64) (*CustomerProfile, error)
	Create(ctx context.Context, p *CustomerProfile) error
	Save(ctx context.Context, p *CustomerProfile) error
}
