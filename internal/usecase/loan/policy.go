package loan

import (
	"time"

	"github.com/shopspring/decimal"
)

// Policy carries the deployment-specific knobs of the qualification checks.
type Policy struct {
	IncomeDocType      string
	IDDocType          string
	MinAmount          decimal.Decimal
	MaxAmount          decimal.Decimal
	AffordabilityRatio decimal.Decimal
	// Preview reports affordability over this many months.
	PreviewMonths int
	TxTimeout     time.Duration
}

func DefaultPolicy() Policy {
	return Policy{
		IncomeDocType:      "payslip",
		IDDocType:          "id",
		MinAmount:          decimal.NewFromInt(500),
		MaxAmount:          decimal.NewFromInt(50000),
		AffordabilityRatio: decimal.RequireFromString("0.5"),
		PreviewMonths:      12,
		TxTimeout:          10 * time.Second,
	}
}

// MaxAffordable is income * months * ratio.
func (p Policy) MaxAffordable(income decimal.Decimal, months int) decimal.Decimal {
	return income.Mul(decimal.NewFromInt(int64(months))).Mul(p.AffordabilityRatio)
}

func (p Policy) RequiredDocTypes() []string {
	return []string{p.IncomeDocType, p.IDDocType}
}

var docLabels = map[string]string{
	"payslip":        "Payslip",
	"id":             "National ID",
	"cv":             "CV",
	"bank_statement": "Bank Statement",
}

// DocLabel is the human name of a doc type used in user-facing messages.
func DocLabel(docType string) string {
	if l, ok := docLabels[docType]; ok {
		return l
	}
	return docType
}
