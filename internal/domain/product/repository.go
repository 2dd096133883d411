package product

import "context"

type Repository interface {
	// Locks the row; returns gorm.ErrRecordNotFound for unknown or inactive products.
	GetActiveByIDForUpdate(ctx context.Context, id uint64) (*Product, error)
	GetActiveByID(ctx context.Context, id uint64) (*Product, error)
}
