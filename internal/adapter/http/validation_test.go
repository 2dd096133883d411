package http

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

func TestDec2Validation_Decimal(t *testing.T) {
	type P struct {
		Amount decimal.Decimal `validate:"dec2"`
	}
	cv := NewValidator()

	for _, v := range []string{"5000", "1.29", "2.00", "0.9", "49999.99"} {
		if err := cv.Validate(P{Amount: decimal.RequireFromString(v)}); err != nil {
			t.Fatalf("expected dec2 OK for %v, got %v", v, err)
		}
	}
	for _, v := range []string{"1.234", "2.9999", "5000.001"} {
		err := cv.Validate(P{Amount: decimal.RequireFromString(v)})
		if err == nil {
			t.Fatalf("expected dec2 error for %v", v)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "Amount", "at most 2 decimal places") {
			t.Fatalf("expected 'at most 2 decimal places' for %v, got %+v", v, fe)
		}
	}
}

func TestDecNonNegValidation(t *testing.T) {
	type P struct {
		Income decimal.Decimal `validate:"decnonneg"`
	}
	cv := NewValidator()

	for _, v := range []string{"0", "0.01", "8000"} {
		if err := cv.Validate(P{Income: decimal.RequireFromString(v)}); err != nil {
			t.Fatalf("expected decnonneg OK for %v, got %v", v, err)
		}
	}
	err := cv.Validate(P{Income: decimal.RequireFromString("-1")})
	if err == nil {
		t.Fatal("expected decnonneg error for -1")
	}
	if fe := ToFieldErrors(err); !containsFieldMsg(fe, "Income", "must not be negative") {
		t.Fatalf("unexpected mapping: %+v", fe)
	}
}

func TestRequiredAndBoundsMapping(t *testing.T) {
	type P struct {
		Name    string          `validate:"required"`
		Min     int             `validate:"gte=10"`
		Max     int             `validate:"lte=5"`
		Purpose string          `validate:"max=3"`
		Action  string          `validate:"oneof=approved rejected"`
		Amount  decimal.Decimal `validate:"dec2,lte=50000"`
	}
	cv := NewValidator()

	err := cv.Validate(P{
		Name:    "",
		Min:     9,
		Max:     6,
		Purpose: "school fees",
		Action:  "maybe",
		Amount:  decimal.RequireFromString("1.333"),
	})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	fe := ToFieldErrors(err)

	checks := []struct{ field, msg string }{
		{"Name", "is required"},
		{"Min", "greater than or equal to 10"},
		{"Max", "less than or equal to 5"},
		{"Purpose", "at most 3 characters"},
		{"Action", "one of: approved rejected"},
		{"Amount", "at most 2 decimal places"},
	}
	for _, c := range checks {
		if !containsFieldMsg(fe, c.field, c.msg) {
			t.Fatalf("missing %q for %s: %+v", c.msg, c.field, fe)
		}
	}
}

func TestToFieldErrors_NonValidation(t *testing.T) {
	err := errors.New("boom")
	fe := ToFieldErrors(err)
	if len(fe) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(fe))
	}
	if fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("unexpected mapping: %+v", fe[0])
	}
}
