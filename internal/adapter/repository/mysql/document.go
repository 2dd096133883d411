package mysql

import (
	"context"

	documentDomain "loan-marketplace/internal/domain/document"

	"gorm.io/gorm"
)

type DocumentRepository struct{ db *gorm.DB }

func NewDocumentRepository(db *gorm.DB) *DocumentRepository { return &DocumentRepository{db: db} }

func (r *DocumentRepository) Create(ctx context.Context, d *documentDomain.Document) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DocumentRepository) ListByUserID(ctx context.Context, userID uint64) ([]documentDomain.Document, error) {
	var out []documentDomain.Document
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("uploaded_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *DocumentRepository) ListDocTypes(ctx context.Context, userID uint64) ([]string, error) {
	var out []string
	res := r.db.WithContext(ctx).
		Model(&documentDomain.Document{}).
		Distinct("doc_type").
		Where("user_id = ?", userID).
		Order("doc_type").
		Pluck("doc_type", &out)
	return out, res.Error
}
