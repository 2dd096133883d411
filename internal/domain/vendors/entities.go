package vendors

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Decision reports whether s is something an administrator can set.
func (s Status) Decision() bool { return s == StatusApproved || s == StatusRejected }

// Vendor is a lender onboarded by a vendor admin. Profile editing belongs to
// the vendor side; this service only reads it and sets the onboarding status.
type Vendor struct {
	ID               uint64    `gorm:"column:id;primaryKey" json:"id"`
	UserID           uint64    `gorm:"column:user_id;not null;index" json:"user_id"`
	Name             string    `gorm:"column:name;size:150;not null" json:"name"`
	Description      string    `gorm:"column:description;type:text" json:"description"`
	LogoURL          string    `gorm:"column:logo_url;size:500" json:"logo_url"`
	PacraNumber      string    `gorm:"column:pacra_number;size:50" json:"pacra_number"`
	BozLicenseNumber string    `gorm:"column:boz_license_number;size:50" json:"boz_license_number"`
	Address          string    `gorm:"column:address;type:text" json:"address"`
	ContactEmail     string    `gorm:"column:contact_email;size:100" json:"contact_email"`
	ContactPhone     string    `gorm:"column:contact_phone;size:30" json:"contact_phone"`
	WebsiteURL       string    `gorm:"column:website_url;size:500" json:"website_url"`
	Category         string    `gorm:"column:category;size:50" json:"category"`
	Status           Status    `gorm:"column:status;size:16;not null;default:pending;index" json:"status"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Vendor) TableName() string { return "vendors" }

// Listing is a vendor row with its owner's name.
type Listing struct {
	Vendor
	OwnerName string `gorm:"column:owner_name" json:"owner_name"`
}
