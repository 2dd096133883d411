package mysql

import (
	"context"

	profileDomain "loan-marketplace/internal/domain/profile"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepository struct{ db *gorm.DB }

func NewProfileRepository(db *gorm.DB) *ProfileRepository { return &ProfileRepository{db: db} }

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID uint64) (*profileDomain.CustomerProfile, error) {
	var out profileDomain.CustomerProfile
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&out)
	return &out, res.Error
}

func (r *ProfileRepository) GetByUserIDForUpdate(ctx context.Context, userID uint64) (*profileDomain.CustomerProfile, error) {
	var out profileDomain.CustomerProfile
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(&out)
	return &out, res.Error
}

func (r *ProfileRepository) Create(ctx context.Context, p *profileDomain.CustomerProfile) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProfileRepository) Save(ctx context.Context, p *profileDomain.CustomerProfile) error {
	return r.db.WithContext(ctx).Save(p).Error
}
