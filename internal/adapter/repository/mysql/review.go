package mysql

import (
	"context"

	reviewDomain "loan-marketplace/internal/domain/review"

	"gorm.io/gorm"
)

type AdminActionRepository struct{ db *gorm.DB }

func NewAdminActionRepository(db *gorm.DB) *AdminActionRepository {
	return &AdminActionRepository{db: db}
}

func (r *AdminActionRepository) Create(ctx context.Context, a *reviewDomain.AdminAction) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AdminActionRepository) ListByLoanID(ctx context.Context, loanID uint64) ([]reviewDomain.AdminAction, error) {
	var out []reviewDomain.AdminAction
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("action_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}
