package mysql

import (
	"testing"
	"time"

	loanDomain "loan-marketplace/internal/domain/loan"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB creates an in-memory sqlite DB with every table migrated.
// One connection only: each new :memory: connection would be a fresh, empty DB.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := AutoMigrate(db); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeApplication(userID uint64, status loanDomain.Status) *loanDomain.Application {
	return &loanDomain.Application{
		UserID:                   userID,
		LoanAmount:               decimal.NewFromInt(5000),
		LoanPurpose:              "school fees",
		RepaymentPeriodMonths:    12,
		DeclaredEmploymentStatus: "employed",
		DeclaredMonthlyIncome:    decimal.NewFromInt(8000),
		TermsAccepted:            true,
		AffordabilityRatio:       decimal.RequireFromString("0.50"),
		MaxAffordableAmount:      decimal.NewFromInt(48000),
		Status:                   status,
	}
}

func seedApplication(t *testing.T, db *gorm.DB, userID uint64, status loanDomain.Status, appliedAt time.Time) *loanDomain.Application {
	t.Helper()
	a := makeApplication(userID, status)
	a.AppliedAt = appliedAt
	if err := db.Create(a).Error; err != nil {
		t.Fatalf("seed application: %v", err)
	}
	return a
}
