package loan

import (
	"errors"
	"fmt"
)

// Rule outcomes of the application engine and the review workflow.
// Each is returned wrapped in a *RuleError carrying the user-facing message.
var (
	ErrValidation            = errors.New("validation error")
	ErrInvalidProduct        = errors.New("invalid product")
	ErrProductConstraint     = errors.New("product constraint violated")
	ErrGlobalRange           = errors.New("amount outside global range")
	ErrIncompleteProfile     = errors.New("incomplete profile")
	ErrMissingDocuments      = errors.New("missing documents")
	ErrDuplicateApplication  = errors.New("duplicate application")
	ErrEmploymentRule        = errors.New("employment rule violated")
	ErrAffordabilityExceeded = errors.New("affordability exceeded")

	ErrNotFound         = errors.New("loan application not found")
	ErrAlreadyProcessed = errors.New("loan application already processed")
)

// RuleError is an expected business outcome, never an infrastructure failure.
type RuleError struct {
	Kind error
	Msg  string
}

func (e *RuleError) Error() string { return e.Msg }
func (e *RuleError) Unwrap() error { return e.Kind }

func NewRuleError(kind error, format string, args ...any) *RuleError {
	return &RuleError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Code is the stable identifier sent to clients next to the message.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return "validation_error"
	case errors.Is(err, ErrInvalidProduct):
		return "invalid_product"
	case errors.Is(err, ErrProductConstraint):
		return "product_constraint"
	case errors.Is(err, ErrGlobalRange):
		return "global_range"
	case errors.Is(err, ErrIncompleteProfile):
		return "incomplete_profile"
	case errors.Is(err, ErrMissingDocuments):
		return "missing_documents"
	case errors.Is(err, ErrDuplicateApplication):
		return "duplicate_application"
	case errors.Is(err, ErrEmploymentRule):
		return "employment_rule"
	case errors.Is(err, ErrAffordabilityExceeded):
		return "affordability_exceeded"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrAlreadyProcessed):
		return "already_processed"
	default:
		return "internal_error"
	}
}
