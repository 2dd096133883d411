package mysql

import (
	"context"

	vendorDomain "loan-marketplace/internal/domain/vendors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VendorRepository struct{ db *gorm.DB }

func NewVendorRepository(db *gorm.DB) *VendorRepository { return &VendorRepository{db: db} }

func (r *VendorRepository) List(ctx context.Context, status vendorDomain.Status) ([]vendorDomain.Listing, error) {
	out := []vendorDomain.Listing{}
	q := r.db.WithContext(ctx).
		Table("vendors AS v").
		Select("v.*, u.full_name AS owner_name").
		Joins("JOIN users u ON u.id = v.user_id")
	if status != "" {
		q = q.Where("v.status = ?", status)
	}
	res := q.Order("v.created_at DESC, v.id DESC").Scan(&out)
	return out, res.Error
}

func (r *VendorRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*vendorDomain.Vendor, error) {
	var out vendorDomain.Vendor
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&out)
	return &out, res.Error
}

// UpdateStatus does not check RowsAffected: MySQL reports 0 when the status
// is unchanged. Callers lock the row first.
func (r *VendorRepository) UpdateStatus(ctx context.Context, id uint64, status vendorDomain.Status) error {
	return r.db.WithContext(ctx).
		Model(&vendorDomain.Vendor{}).
		Where("id = ?", id).
		Update("status", status).Error
}
