package mysql

import (
	"context"

	productDomain "loan-marketplace/internal/domain/product"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) *ProductRepository { return &ProductRepository{db: db} }

func (r *ProductRepository) GetActiveByIDForUpdate(ctx context.Context, id uint64) (*productDomain.Product, error) {
	var out productDomain.Product
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND is_active = ?", id, true).
		First(&out)
	return &out, res.Error
}

func (r *ProductRepository) GetActiveByID(ctx context.Context, id uint64) (*productDomain.Product, error) {
	var out productDomain.Product
	res := r.db.WithContext(ctx).Where("id = ? AND is_active = ?", id, true).First(&out)
	return &out, res.Error
}
