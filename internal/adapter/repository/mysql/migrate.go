package mysql

import (
	documentDomain "loan-marketplace/internal/domain/document"
	loanDomain "loan-marketplace/internal/domain/loan"
	productDomain "loan-marketplace/internal/domain/product"
	profileDomain "loan-marketplace/internal/domain/profile"
	reviewDomain "loan-marketplace/internal/domain/review"
	userDomain "loan-marketplace/internal/domain/user"
	vendorDomain "loan-marketplace/internal/domain/vendors"

	"gorm.io/gorm"
)

// AutoMigrate creates or alters every table the service owns or reads.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userDomain.User{},
		&vendorDomain.Vendor{},
		&profileDomain.CustomerProfile{},
		&documentDomain.Document{},
		&productDomain.Product{},
		&loanDomain.Application{},
		&reviewDomain.AdminAction{},
	)
}
