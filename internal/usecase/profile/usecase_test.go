package profile

import (
	"context"
	"errors"
	"testing"

	domainLoan "loan-marketplace/internal/domain/loan"
	domainProfile "loan-marketplace/internal/domain/profile"
	"loan-marketplace/internal/domain/uow"
	"loan-marketplace/internal/testutil/profilemock"
	"loan-marketplace/internal/testutil/uowmock"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func fullInput() SaveInput {
	return SaveInput{
		PhoneNumber:        " 0977000000 ",
		NationalID:         "123456/78/9",
		ResidentialAddress: "Plot 1, Lusaka",
		EmploymentStatus:   "employed",
		MonthlyIncome:      decimal.NewFromInt(6000),
	}
}

func TestGet_MissingRowIsEmptyProfile(t *testing.T) {
	repo := &profilemock.Repo{
		GetByUserIDFn: func(context.Context, uint64) (*domainProfile.CustomerProfile, error) {
			return &domainProfile.CustomerProfile{}, gorm.ErrRecordNotFound
		},
	}
	got, err := NewUsecase(uowmock.New(), repo).Get(context.Background(), 4)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.UserID != 4 || got.Complete || len(got.MissingFields) != 5 {
		t.Fatalf("unexpected: %+v", got)
	}
}

func TestSave(t *testing.T) {
	tests := []struct {
		name       string
		existing   *domainProfile.CustomerProfile
		wantCreate bool
	}{
		{name: "creates when missing", wantCreate: true},
		{name: "replaces existing", existing: &domainProfile.CustomerProfile{UserID: 4, PhoneNumber: "old", NationalID: "old"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var created, saved *domainProfile.CustomerProfile
			repo := &profilemock.Repo{
				GetByUserIDForUpdateFn: func(context.Context, uint64) (*domainProfile.CustomerProfile, error) {
					if tt.existing == nil {
						return &domainProfile.CustomerProfile{}, gorm.ErrRecordNotFound
					}
					return tt.existing, nil
				},
				CreateFn: func(_ context.Context, p *domainProfile.CustomerProfile) error { created = p; return nil },
				SaveFn:   func(_ context.Context, p *domainProfile.CustomerProfile) error { saved = p; return nil },
			}
			uc := NewUsecase(uowmock.Passthrough(uow.Repos{Profiles: repo}), repo)

			got, err := uc.Save(context.Background(), 4, fullInput())
			if err != nil {
				t.Fatalf("Save: %v", err)
			}
			if tt.wantCreate && (created == nil || saved != nil) {
				t.Fatalf("expected create only, created=%v saved=%v", created, saved)
			}
			if !tt.wantCreate && (saved == nil || created != nil) {
				t.Fatalf("expected save only, created=%v saved=%v", created, saved)
			}
			if got.PhoneNumber != "0977000000" || got.NationalID != "123456/78/9" || !got.Complete {
				t.Fatalf("fields not replaced: %+v", got)
			}
		})
	}
}

func TestSave_NegativeIncome(t *testing.T) {
	in := fullInput()
	in.MonthlyIncome = decimal.NewFromInt(-1)
	_, err := NewUsecase(uowmock.New(), &profilemock.Repo{}).Save(context.Background(), 4, in)
	if !errors.Is(err, domainLoan.ErrValidation) {
		t.Fatalf("want ErrValidation, got %v", err)
	}
}

func TestSave_ZeroIncomeAllowedButIncomplete(t *testing.T) {
	repo := &profilemock.Repo{
		GetByUserIDForUpdateFn: func(context.Context, uint64) (*domainProfile.CustomerProfile, error) {
			return &domainProfile.CustomerProfile{}, gorm.ErrRecordNotFound
		},
	}
	in := fullInput()
	in.MonthlyIncome = decimal.Zero

	got, err := NewUsecase(uowmock.Passthrough(uow.Repos{Profiles: repo}), repo).Save(context.Background(), 4, in)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got.Complete || len(got.MissingFields) != 1 || got.MissingFields[0] != "monthly_income" {
		t.Fatalf("unexpected: %+v", got)
	}
}
