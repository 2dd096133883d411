package mysql

import (
	"context"

	userDomain "loan-marketplace/internal/domain/user"

	"gorm.io/gorm"
)

// UserRepository is read-only; accounts are managed by the identity service.
type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *UserRepository) ListByIDs(ctx context.Context, ids []uint64) ([]userDomain.User, error) {
	var out []userDomain.User
	if len(ids) == 0 {
		return out, nil
	}
	res := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&out)
	return out, res.Error
}
