package mysql

import (
	"context"
	"time"

	loanDomain "loan-marketplace/internal/domain/loan"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, a *loanDomain.Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *LoanRepository) GetByID(ctx context.Context, id uint64) (*loanDomain.Application, error) {
	var out loanDomain.Application
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *LoanRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*loanDomain.Application, error) {
	var out loanDomain.Application
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&out)
	return &out, res.Error
}

func (r *LoanRepository) activeByUser(db *gorm.DB, userID uint64) ([]loanDomain.Application, error) {
	var out []loanDomain.Application
	res := db.Where("user_id = ? AND status IN ?", userID, loanDomain.ActiveStatuses).
		Order("applied_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) ListActiveByUserID(ctx context.Context, userID uint64) ([]loanDomain.Application, error) {
	return r.activeByUser(r.db.WithContext(ctx), userID)
}

func (r *LoanRepository) ListActiveByUserIDForUpdate(ctx context.Context, userID uint64) ([]loanDomain.Application, error) {
	return r.activeByUser(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), userID)
}

func (r *LoanRepository) ListByUserID(ctx context.Context, userID uint64) ([]loanDomain.Application, error) {
	var out []loanDomain.Application
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("applied_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) List(ctx context.Context, status loanDomain.Status) ([]loanDomain.Application, error) {
	var out []loanDomain.Application
	q := r.db.WithContext(ctx)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	res := q.Order("applied_at DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *LoanRepository) UpdateStatus(ctx context.Context, id uint64, status loanDomain.Status, reviewedAt time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&loanDomain.Application{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "reviewed_at": reviewedAt})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
