package loan

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// ActiveStatuses are the statuses that block a new application for the same user.
var ActiveStatuses = []Status{StatusPending, StatusApproved}

// Terminal reports whether no further transition is allowed out of s.
func (s Status) Terminal() bool { return s == StatusApproved || s == StatusRejected }

type Application struct {
	ID                       uint64          `gorm:"primaryKey;column:id" json:"id"`
	UserID                   uint64          `gorm:"column:user_id;not null;index:idx_loan_user_status" json:"user_id"`
	VendorID                 *uint64         `gorm:"column:vendor_id" json:"vendor_id,omitempty"`
	LoanProductID            *uint64         `gorm:"column:loan_product_id" json:"loan_product_id,omitempty"`
	LoanAmount               decimal.Decimal `gorm:"column:loan_amount;type:decimal(12,2);not null" json:"loan_amount"`
	LoanPurpose              string          `gorm:"column:loan_purpose;type:text;not null" json:"loan_purpose"`
	RepaymentPeriodMonths    int             `gorm:"column:repayment_period_months;not null" json:"repayment_period_months"`
	DeclaredEmploymentStatus string          `gorm:"column:declared_employment_status;size:50" json:"declared_employment_status"`
	DeclaredMonthlyIncome    decimal.Decimal `gorm:"column:declared_monthly_income;type:decimal(12,2)" json:"declared_monthly_income"`
	TermsAccepted            bool            `gorm:"column:terms_accepted" json:"terms_accepted"`
	AffordabilityRatio       decimal.Decimal `gorm:"column:affordability_ratio;type:decimal(5,2)" json:"affordability_ratio"`
	MaxAffordableAmount      decimal.Decimal `gorm:"column:max_affordable_amount;type:decimal(12,2)" json:"max_affordable_amount"`
	Status                   Status          `gorm:"column:status;size:16;not null;default:pending;index:idx_loan_user_status" json:"status"`
	AppliedAt                time.Time       `gorm:"column:applied_at;autoCreateTime" json:"applied_at"`
	ReviewedAt               *time.Time      `gorm:"column:reviewed_at" json:"reviewed_at,omitempty"`
}

func (Application) TableName() string { return "loan_applications" }
