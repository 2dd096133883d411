package user

import "time"

type Role string

const (
	RoleCustomer    Role = "customer"
	RoleAdmin       Role = "admin"
	RoleVendorAdmin Role = "vendor_admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleAdmin, RoleVendorAdmin:
		return true
	}
	return false
}

// User is owned by the identity service; the table is declared here so that
// profile, document and application rows have something to reference.
type User struct {
	ID        uint64    `gorm:"column:id;primaryKey" json:"id"`
	FullName  string    `gorm:"column:full_name;size:100;not null" json:"full_name"`
	Email     string    `gorm:"column:email;size:100;uniqueIndex;not null" json:"email"`
	Role      Role      `gorm:"column:role;size:16;not null;default:customer" json:"role"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string { return "users" }
