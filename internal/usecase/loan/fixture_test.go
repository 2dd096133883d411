package loan

import (
	"context"
	"errors"

	documentDomain "loan-marketplace/internal/domain/document"
	loanDomain "loan-marketplace/internal/domain/loan"
	productDomain "loan-marketplace/internal/domain/product"
	profileDomain "loan-marketplace/internal/domain/profile"
	"loan-marketplace/internal/domain/uow"
	"loan-marketplace/internal/testutil/documentmock"
	"loan-marketplace/internal/testutil/loanmock"
	"loan-marketplace/internal/testutil/productmock"
	"loan-marketplace/internal/testutil/profilemock"
	"loan-marketplace/internal/testutil/uowmock"
	"loan-marketplace/internal/testutil/usermock"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// fixture starts from a customer who passes every check; tests break one thing at a time.
type fixture struct {
	profile  *profileDomain.CustomerProfile
	docTypes []string
	active   []loanDomain.Application
	product  *productDomain.Product

	profileErr error
	docErr     error
	activeErr  error
	createErr  error

	// locking reads and writes, in order
	calls    []string
	docReads int
	created  []*loanDomain.Application
}

func newFixture() *fixture {
	return &fixture{
		profile:  completeProfile(1),
		docTypes: []string{"id", "payslip"},
	}
}

func completeProfile(userID uint64) *profileDomain.CustomerProfile {
	return &profileDomain.CustomerProfile{
		UserID:             userID,
		PhoneNumber:        "0977000000",
		NationalID:         "123456/78/9",
		ResidentialAddress: "Plot 1, Lusaka",
		EmploymentStatus:   "employed",
		MonthlyIncome:      decimal.NewFromInt(8000),
	}
}

func (f *fixture) repos() uow.Repos {
	return uow.Repos{
		Products: &productmock.Repo{
			GetActiveByIDForUpdateFn: func(_ context.Context, id uint64) (*productDomain.Product, error) {
				f.calls = append(f.calls, "product")
				if f.product == nil || f.product.ID != id || !f.product.IsActive {
					return &productDomain.Product{}, gorm.ErrRecordNotFound
				}
				return f.product, nil
			},
		},
		Profiles: &profilemock.Repo{
			GetByUserIDForUpdateFn: func(_ context.Context, _ uint64) (*profileDomain.CustomerProfile, error) {
				f.calls = append(f.calls, "profile")
				return f.getProfile()
			},
			GetByUserIDFn: func(_ context.Context, _ uint64) (*profileDomain.CustomerProfile, error) {
				return f.getProfile()
			},
		},
		Documents: &documentmock.Repo{
			ListDocTypesFn: func(_ context.Context, _ uint64) ([]string, error) {
				f.docReads++
				return f.docTypes, f.docErr
			},
			ListByUserIDFn: func(_ context.Context, userID uint64) ([]documentDomain.Document, error) {
				out := make([]documentDomain.Document, 0, len(f.docTypes))
				for _, t := range f.docTypes {
					out = append(out, documentDomain.Document{UserID: userID, DocType: t})
				}
				return out, f.docErr
			},
		},
		Loans: &loanmock.Repo{
			ListActiveByUserIDForUpdateFn: func(_ context.Context, _ uint64) ([]loanDomain.Application, error) {
				f.calls = append(f.calls, "active")
				return f.active, f.activeErr
			},
			ListActiveByUserIDFn: func(_ context.Context, _ uint64) ([]loanDomain.Application, error) {
				return f.active, f.activeErr
			},
			ListByUserIDFn: func(_ context.Context, _ uint64) ([]loanDomain.Application, error) {
				return f.active, f.activeErr
			},
			CreateFn: func(_ context.Context, a *loanDomain.Application) error {
				f.calls = append(f.calls, "create")
				if f.createErr != nil {
					return f.createErr
				}
				a.ID = uint64(len(f.created) + 1)
				f.created = append(f.created, a)
				return nil
			},
		},
		Users: &usermock.Repo{},
	}
}

func (f *fixture) getProfile() (*profileDomain.CustomerProfile, error) {
	if f.profileErr != nil {
		return &profileDomain.CustomerProfile{}, f.profileErr
	}
	if f.profile == nil {
		return &profileDomain.CustomerProfile{}, gorm.ErrRecordNotFound
	}
	return f.profile, nil
}

func (f *fixture) usecase() *Usecase {
	r := f.repos()
	return NewUsecase(uowUnder(r), r, DefaultPolicy(), nil, nil)
}

func uowUnder(r uow.Repos) *uowmock.UoW { return uowmock.Passthrough(r) }

func validInput() SubmitInput {
	return SubmitInput{
		Amount:                   decimal.NewFromInt(5000),
		Purpose:                  "school fees",
		RepaymentPeriodMonths:    12,
		DeclaredEmploymentStatus: "employed",
		DeclaredMonthlyIncome:    decimal.NewFromInt(8000),
		TermsAccepted:            true,
	}
}

func ptr[T any](v T) *T { return &v }

var errBoom = errors.New("boom")
