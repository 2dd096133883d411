package loan

import (
	"time"

	"loan-marketplace/internal/domain/document"
	"loan-marketplace/internal/domain/loan"
	"loan-marketplace/internal/domain/profile"
	"loan-marketplace/internal/domain/user"

	"github.com/shopspring/decimal"
)

type SubmitInput struct {
	Amount                   decimal.Decimal `json:"amount"`
	Purpose                  string          `json:"purpose"`
	RepaymentPeriodMonths    int             `json:"repayment_period_months"`
	DeclaredEmploymentStatus string          `json:"declared_employment_status"`
	DeclaredMonthlyIncome    decimal.Decimal `json:"declared_monthly_income"`
	TermsAccepted            bool            `json:"terms_accepted"`
	VendorID                 *uint64         `json:"vendor_id,omitempty"`
	LoanProductID            *uint64         `json:"loan_product_id,omitempty"`
}

type ApplicationDTO struct {
	ID                       uint64          `json:"id"`
	UserID                   uint64          `json:"user_id"`
	VendorID                 *uint64         `json:"vendor_id,omitempty"`
	LoanProductID            *uint64         `json:"loan_product_id,omitempty"`
	LoanAmount               decimal.Decimal `json:"loan_amount"`
	LoanPurpose              string          `json:"loan_purpose"`
	RepaymentPeriodMonths    int             `json:"repayment_period_months"`
	DeclaredEmploymentStatus string          `json:"declared_employment_status"`
	DeclaredMonthlyIncome    decimal.Decimal `json:"declared_monthly_income"`
	AffordabilityRatio       decimal.Decimal `json:"affordability_ratio"`
	MaxAffordableAmount      decimal.Decimal `json:"max_affordable_amount"`
	Status                   string          `json:"status"`
	AppliedAt                time.Time       `json:"applied_at"`
	ReviewedAt               *time.Time      `json:"reviewed_at,omitempty"`
}

func ToDTO(a *loan.Application) ApplicationDTO {
	return ApplicationDTO{
		ID:                       a.ID,
		UserID:                   a.UserID,
		VendorID:                 a.VendorID,
		LoanProductID:            a.LoanProductID,
		LoanAmount:               a.LoanAmount,
		LoanPurpose:              a.LoanPurpose,
		RepaymentPeriodMonths:    a.RepaymentPeriodMonths,
		DeclaredEmploymentStatus: a.DeclaredEmploymentStatus,
		DeclaredMonthlyIncome:    a.DeclaredMonthlyIncome,
		AffordabilityRatio:       a.AffordabilityRatio,
		MaxAffordableAmount:      a.MaxAffordableAmount,
		Status:                   string(a.Status),
		AppliedAt:                a.AppliedAt,
		ReviewedAt:               a.ReviewedAt,
	}
}

type Check struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

type Limits struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

type Eligibility struct {
	Eligible bool    `json:"eligible"`
	Checks   []Check `json:"checks"`
	Limits   Limits  `json:"limits"`
}

type Dashboard struct {
	User      *user.User               `json:"user"`
	Profile   *profile.CustomerProfile `json:"profile"`
	Loan      *ApplicationDTO          `json:"loan"`
	Documents map[string]bool          `json:"documents"`
	Uploaded  []document.Document      `json:"uploaded"`
}
