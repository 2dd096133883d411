package user

import "context"

type Repository interface {
	GetByID(ctx context.Context, id uint64) (*User, error)
	// Unknown ids are skipped; order is unspecified.
	ListByIDs(ctx context.Context, ids []uint64) ([]User, error)
}
