package document

import "time"

type Document struct {
	ID         uint64    `gorm:"column:id;primaryKey" json:"id"`
	UserID     uint64    `gorm:"column:user_id;not null;index:idx_documents_user_type" json:"user_id"`
	FileName   string    `gorm:"column:file_name;size:255;not null" json:"file_name"`
	FilePath   string    `gorm:"column:file_path;size:512;not null" json:"-"`
	FileType   string    `gorm:"column:file_type;size:100;not null" json:"file_type"`
	DocType    string    `gorm:"column:doc_type;size:30;not null;index:idx_documents_user_type" json:"doc_type"`
	UploadedAt time.Time `gorm:"column:uploaded_at;autoCreateTime" json:"uploaded_at"`
}

func (Document) TableName() string { return "documents" }
