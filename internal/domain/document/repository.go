package document

import "context"

type Repository interface {
	Create(ctx context.Context, d *Document) error
	// Newest first.
	ListByUserID(ctx context.Context, userID uint64) ([]Document, error)
	// Distinct doc types the user has uploaded at least once.
	ListDocTypes(ctx context.Context, userID uint64) ([]string, error)
}
