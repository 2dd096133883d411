package vendors

import "context"

type Repository interface {
	// Newest first; empty status means all.
	List(ctx context.Context, status Status) ([]Listing, error)
	GetByIDForUpdate(ctx context.Context, id uint64) (*Vendor, error)
	UpdateStatus(ctx context.Context, id uint64, status Status) error
}
