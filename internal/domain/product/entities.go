package product

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a vendor-defined loan product. Its lifecycle belongs to the vendor
// side; the application engine only reads it.
type Product struct {
	ID                   uint64           `gorm:"column:id;primaryKey" json:"id"`
	VendorID             uint64           `gorm:"column:vendor_id;not null;index" json:"vendor_id"`
	Name                 string           `gorm:"column:name;size:150;not null" json:"name"`
	MinAmount            decimal.Decimal  `gorm:"column:min_amount;type:decimal(12,2);not null" json:"min_amount"`
	MaxAmount            decimal.Decimal  `gorm:"column:max_amount;type:decimal(12,2);not null" json:"max_amount"`
	MinTenureMonths      int              `gorm:"column:min_tenure_months;not null" json:"min_tenure_months"`
	MaxTenureMonths      int              `gorm:"column:max_tenure_months;not null" json:"max_tenure_months"`
	MinIncomeRequirement *decimal.Decimal `gorm:"column:min_income_requirement;type:decimal(12,2)" json:"min_income_requirement,omitempty"`
	IsActive             bool             `gorm:"column:is_active;not null" json:"is_active"`
	CreatedAt            time.Time        `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time        `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Product) TableName() string { return "loan_products" }
