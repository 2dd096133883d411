package loan

import (
	"context"
	"errors"

	"loan-marketplace/internal/domain/uow"

	"gorm.io/gorm"
)

// Dashboard reads the customer overview inside one transaction so the parts
// agree with each other.
func (u *Usecase) Dashboard(ctx context.Context, userID uint64) (*Dashboard, error) {
	out := &Dashboard{Documents: map[string]bool{}}
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		usr, err := r.Users.GetByID(ctx, userID)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
		case err != nil:
			return err
		default:
			out.User = usr
		}

		prof, err := r.Profiles.GetByUserID(ctx, userID)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
		case err != nil:
			return err
		default:
			out.Profile = prof
		}

		apps, err := r.Loans.ListByUserID(ctx, userID)
		if err != nil {
			return err
		}
		if len(apps) > 0 {
			latest := ToDTO(&apps[0])
			out.Loan = &latest
		}

		docs, err := r.Documents.ListByUserID(ctx, userID)
		if err != nil {
			return err
		}
		out.Uploaded = docs
		for _, t := range u.policy.RequiredDocTypes() {
			out.Documents[t] = false
		}
		for _, d := range docs {
			if _, required := out.Documents[d.DocType]; required {
				out.Documents[d.DocType] = true
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
