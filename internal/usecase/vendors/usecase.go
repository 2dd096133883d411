package vendors

import (
	"context"
	"errors"
	"fmt"

	domainLoan "loan-marketplace/internal/domain/loan"
	"loan-marketplace/internal/domain/uow"
	domainVendor "loan-marketplace/internal/domain/vendors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ReviewDTO struct {
	VendorID uint64 `json:"vendor_id"`
	Status   string `json:"status"`
	Message  string `json:"message"`
}

type Usecase struct {
	uow   uow.UnitOfWork
	reads domainVendor.Repository
	log   *zap.Logger
}

func NewUsecase(tx uow.UnitOfWork, reads domainVendor.Repository, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{uow: tx, reads: reads, log: log}
}

// List returns vendors newest first with the owner's name; an empty status
// lists all.
func (u *Usecase) List(ctx context.Context, status domainVendor.Status) ([]domainVendor.Listing, error) {
	if status != "" && !status.Valid() {
		return nil, domainLoan.NewRuleError(domainLoan.ErrValidation, "Invalid status filter %q", status)
	}
	return u.reads.List(ctx, status)
}

// Review sets the onboarding status. A decided vendor may be decided again,
// so an approval can be withdrawn.
func (u *Usecase) Review(ctx context.Context, adminID, vendorID uint64, status domainVendor.Status) (*ReviewDTO, error) {
	if vendorID == 0 || status == "" {
		return nil, domainLoan.NewRuleError(domainLoan.ErrValidation, "Missing required fields")
	}
	if !status.Decision() {
		return nil, domainLoan.NewRuleError(domainLoan.ErrValidation, "Invalid status")
	}

	var previous domainVendor.Status
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		v, err := r.Vendors.GetByIDForUpdate(ctx, vendorID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainLoan.NewRuleError(domainLoan.ErrNotFound, "Vendor not found")
			}
			return err
		}
		previous = v.Status
		return r.Vendors.UpdateStatus(ctx, v.ID, status)
	})
	if err != nil {
		var re *domainLoan.RuleError
		if errors.As(err, &re) {
			return nil, err
		}
		return nil, fmt.Errorf("review vendor %d: %w", vendorID, err)
	}

	u.log.Info("vendor reviewed",
		zap.Uint64("admin_id", adminID),
		zap.Uint64("vendor_id", vendorID),
		zap.String("from", string(previous)),
		zap.String("to", string(status)),
	)
	return &ReviewDTO{
		VendorID: vendorID,
		Status:   string(status),
		Message:  fmt.Sprintf("Vendor %s successfully", status),
	}, nil
}
