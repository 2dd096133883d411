package document

import (
	"context"
	"fmt"
	"io"
	"strings"

	domainDocument "loan-marketplace/internal/domain/document"
	domainLoan "loan-marketplace/internal/domain/loan"
	"loan-marketplace/pkg/id"

	"go.uber.org/zap"
)

const MaxFileSize = 5 << 20

var allowedMIME = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"image/jpeg": true,
	"image/png":  true,
}

// FileStore keeps the uploaded bytes; the returned path is what gets persisted.
type FileStore interface {
	Put(ctx context.Context, objectName, contentType string, r io.Reader) (string, error)
	Delete(ctx context.Context, objectName string) error
}

type UploadInput struct {
	DocType     string
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type Usecase struct {
	repo    domainDocument.Repository
	store   FileStore
	allowed map[string]bool
	log     *zap.Logger
}

func NewUsecase(repo domainDocument.Repository, store FileStore, allowedDocTypes []string, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	allowed := make(map[string]bool, len(allowedDocTypes))
	for _, t := range allowedDocTypes {
		allowed[t] = true
	}
	return &Usecase{repo: repo, store: store, allowed: allowed, log: log}
}

func (u *Usecase) Upload(ctx context.Context, userID uint64, in UploadInput) (*domainDocument.Document, error) {
	if !u.allowed[in.DocType] {
		return nil, domainLoan.NewRuleError(domainLoan.ErrValidation, "Unsupported document type %q", in.DocType)
	}
	if in.Size <= 0 {
		return nil, domainLoan.NewRuleError(domainLoan.ErrValidation, "File is empty")
	}
	if in.Size > MaxFileSize {
		return nil, domainLoan.NewRuleError(domainLoan.ErrValidation, "File too large. Maximum size is 5MB")
	}
	ct := normalizeContentType(in.ContentType)
	if !allowedMIME[ct] {
		return nil, domainLoan.NewRuleError(domainLoan.ErrValidation, "Invalid file type. Only PDF, Word documents and JPEG/PNG images are allowed")
	}

	object := fmt.Sprintf("documents/%d/%s/%s-%s", userID, in.DocType, id.NewID32(), SanitizeFileName(in.FileName))
	path, err := u.store.Put(ctx, object, ct, io.LimitReader(in.Body, MaxFileSize))
	if err != nil {
		u.log.Error("document upload failed", zap.Uint64("user_id", userID), zap.String("object", object), zap.Error(err))
		return nil, fmt.Errorf("store document: %w", err)
	}

	d := &domainDocument.Document{
		UserID:   userID,
		FileName: in.FileName,
		FilePath: path,
		FileType: ct,
		DocType:  in.DocType,
	}
	if err := u.repo.Create(ctx, d); err != nil {
		if derr := u.store.Delete(ctx, object); derr != nil {
			u.log.Warn("orphaned document object", zap.String("object", object), zap.Error(derr))
		}
		return nil, err
	}
	u.log.Info("document uploaded", zap.Uint64("user_id", userID), zap.String("doc_type", d.DocType), zap.Uint64("document_id", d.ID))
	return d, nil
}

func (u *Usecase) List(ctx context.Context, userID uint64) ([]domainDocument.Document, error) {
	return u.repo.ListByUserID(ctx, userID)
}

func normalizeContentType(ct string) string {
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	return strings.ToLower(strings.TrimSpace(ct))
}

// SanitizeFileName keeps [A-Za-z0-9._-] and caps the length at 100.
func SanitizeFileName(name string) string {
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	out := strings.Trim(b.String(), "._")
	if len(out) > 100 {
		out = out[len(out)-100:]
	}
	if out == "" {
		return "file"
	}
	return out
}
