package profile

import (
	"context"
	"errors"
	"strings"

	domainLoan "loan-marketplace/internal/domain/loan"
	domainProfile "loan-marketplace/internal/domain/profile"
	"loan-marketplace/internal/domain/uow"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SaveInput struct {
	PhoneNumber        string          `json:"phone_number"`
	NationalID         string          `json:"national_id"`
	ResidentialAddress string          `json:"residential_address"`
	EmploymentStatus   string          `json:"employment_status"`
	MonthlyIncome      decimal.Decimal `json:"monthly_income"`
}

type ProfileDTO struct {
	*domainProfile.CustomerProfile
	Complete      bool     `json:"complete"`
	MissingFields []string `json:"missing_fields"`
}

type Usecase struct {
	uow   uow.UnitOfWork
	reads domainProfile.Repository
}

func NewUsecase(tx uow.UnitOfWork, reads domainProfile.Repository) *Usecase {
	return &Usecase{uow: tx, reads: reads}
}

// Get never fails on a missing row; a customer without a profile gets an empty one.
func (u *Usecase) Get(ctx context.Context, userID uint64) (*ProfileDTO, error) {
	p, err := u.reads.GetByUserID(ctx, userID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		p = &domainProfile.CustomerProfile{UserID: userID}
	case err != nil:
		return nil, err
	}
	return toDTO(p), nil
}

// Save fetches-or-creates the row under lock and replaces all five fields.
func (u *Usecase) Save(ctx context.Context, userID uint64, in SaveInput) (*ProfileDTO, error) {
	if in.MonthlyIncome.IsNegative() {
		return nil, domainLoan.NewRuleError(domainLoan.ErrValidation, "Monthly income must not be negative")
	}

	var out *domainProfile.CustomerProfile
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Profiles.GetByUserIDForUpdate(ctx, userID)
		create := false
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			p = &domainProfile.CustomerProfile{UserID: userID}
			create = true
		case err != nil:
			return err
		}

		p.PhoneNumber = strings.TrimSpace(in.PhoneNumber)
		p.NationalID = strings.TrimSpace(in.NationalID)
		p.ResidentialAddress = strings.TrimSpace(in.ResidentialAddress)
		p.EmploymentStatus = strings.TrimSpace(in.EmploymentStatus)
		p.MonthlyIncome = in.MonthlyIncome

		if create {
			err = r.Profiles.Create(ctx, p)
		} else {
			err = r.Profiles.Save(ctx, p)
		}
		if err != nil {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toDTO(out), nil
}

func toDTO(p *domainProfile.CustomerProfile) *ProfileDTO {
	missing := p.MissingFields()
	if missing == nil {
		missing = []string{}
	}
	return &ProfileDTO{CustomerProfile: p, Complete: len(missing) == 0, MissingFields: missing}
}
