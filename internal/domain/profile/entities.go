package profile

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerProfile holds the KYC fields of one customer (one row per user).
type CustomerProfile struct {
	UserID             uint64          `gorm:"column:user_id;primaryKey;autoIncrement:false" json:"user_id"`
	PhoneNumber        string          `gorm:"column:phone_number;size:30" json:"phone_number"`
	NationalID         string          `gorm:"column:national_id;size:50" json:"national_id"`
	ResidentialAddress string          `gorm:"column:residential_address;type:text" json:"residential_address"`
	EmploymentStatus   string          `gorm:"column:employment_status;size:50" json:"employment_status"`
	MonthlyIncome      decimal.Decimal `gorm:"column:monthly_income;type:decimal(12,2)" json:"monthly_income"`
	CreatedAt          time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (CustomerProfile) TableName() string { return "customer_profiles" }

// MissingFields lists the KYC fields that are empty (or zero, for income).
func (p *CustomerProfile) MissingFields() []string {
	if p == nil {
		return []string{"phone_number", "national_id", "residential_address", "employment_status", "monthly_income"}
	}
	var out []string
	if p.PhoneNumber == "" {
		out = append(out, "phone_number")
	}
	if p.NationalID == "" {
		out = append(out, "national_id")
	}
	if p.ResidentialAddress == "" {
		out = append(out, "residential_address")
	}
	if p.EmploymentStatus == "" {
		out = append(out, "employment_status")
	}
	if !p.MonthlyIncome.IsPositive() {
		out = append(out, "monthly_income")
	}
	return out
}

func (p *CustomerProfile) Complete() bool { return len(p.MissingFields()) == 0 }
