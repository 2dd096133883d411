package review

import "context"

type Repository interface {
	// Append only; there is no update or delete.
	Create(ctx context.Context, a *AdminAction) error

	ListByLoanID(ctx context.Context, loanID uint64) ([]AdminAction, error)
}
