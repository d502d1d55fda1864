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

func TestHex32Validation(t *testing.T) {
	type P struct {
		UserID string `validate:"hex32"`
	}
	cv := NewValidator()

	if err := cv.Validate(P{UserID: strings.Repeat("a", 32)}); err != nil {
		t.Fatalf("expected valid hex32, got err: %v", err)
	}

	for _, s := range []string{
		"",
		strings.Repeat("A", 32),
		"deadbeef",
		strings.Repeat("g", 32),
		"3f9a6a1b3d544fbe8b3a6b3e8d6b2c8",
		"3f9a6a1b3d544fbe8b3a6b3e8d6b2c88x",
	} {
		err := cv.Validate(P{UserID: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		if fe := ToFieldErrors(err); !containsFieldMsg(fe, "UserID", "32-char lowercase hex") {
			t.Fatalf("expected hex32 message for %q, got: %+v", s, fe)
		}
	}
}

func TestDecimalFields(t *testing.T) {
	type P struct {
		Amount  decimal.Decimal  `validate:"gt=0,dec2"`
		Balance *decimal.Decimal `validate:"omitempty,gte=0,dec2"`
	}
	cv := NewValidator()

	bal := decimal.RequireFromString("0")
	for _, p := range []P{
		{Amount: decimal.RequireFromString("1.29")},
		{Amount: decimal.RequireFromString("5000000"), Balance: &bal},
		{Amount: decimal.RequireFromString("0.01")},
	} {
		if err := cv.Validate(p); err != nil {
			t.Fatalf("expected OK for %+v, got %v", p, err)
		}
	}

	err := cv.Validate(P{Amount: decimal.Zero})
	if err == nil || !containsFieldMsg(ToFieldErrors(err), "Amount", "greater than 0") {
		t.Fatalf("zero amount should fail gt=0, got %v", err)
	}

	err = cv.Validate(P{Amount: decimal.RequireFromString("1.234")})
	if err == nil || !containsFieldMsg(ToFieldErrors(err), "Amount", "at most 2 decimal places") {
		t.Fatalf("three decimals should fail dec2, got %v", err)
	}

	neg := decimal.RequireFromString("-5")
	err = cv.Validate(P{Amount: decimal.NewFromInt(1), Balance: &neg})
	if err == nil || !containsFieldMsg(ToFieldErrors(err), "Balance", "greater than or equal to 0") {
		t.Fatalf("negative balance should fail gte=0, got %v", err)
	}
}

func TestDecimalFields_LargeAmounts(t *testing.T) {
	type P struct {
		Amount  decimal.Decimal  `validate:"gt=0,dec2"`
		Balance *decimal.Decimal `validate:"omitempty,gte=0,dec2"`
	}
	cv := NewValidator()

	tests := []struct {
		name   string
		amount string
		ok     bool
	}{
		{"max decimal(15,2)", "9999999999999.99", true},
		{"large one place", "1234567890123.5", true},
		{"trailing zero scale", "12.500", true},
		{"large three places", "1234567890123.456", false},
		{"large with cent fraction", "9999999999999.991", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cv.Validate(P{Amount: decimal.RequireFromString(tt.amount)})
			if tt.ok && err != nil {
				t.Fatalf("%s rejected: %v", tt.amount, err)
			}
			if !tt.ok && (err == nil || !containsFieldMsg(ToFieldErrors(err), "Amount", "at most 2 decimal places")) {
				t.Fatalf("%s should fail dec2, got %v", tt.amount, err)
			}
		})
	}

	bal := decimal.RequireFromString("1234567890123.456")
	err := cv.Validate(P{Amount: decimal.NewFromInt(1), Balance: &bal})
	if err == nil || !containsFieldMsg(ToFieldErrors(err), "Balance", "at most 2 decimal places") {
		t.Fatalf("pointer balance with three places should fail dec2, got %v", err)
	}
}

func TestDateValidation(t *testing.T) {
	type P struct {
		Date string `validate:"omitempty,datetime=2006-01-02"`
	}
	cv := NewValidator()

	for _, s := range []string{"", "2025-09-06", "2024-02-29"} {
		if err := cv.Validate(P{Date: s}); err != nil {
			t.Fatalf("expected OK for %q, got %v", s, err)
		}
	}
	for _, s := range []string{"06-09-2025", "2025-13-01", "2025-09-06T00:00:00Z"} {
		err := cv.Validate(P{Date: s})
		if err == nil || !containsFieldMsg(ToFieldErrors(err), "Date", "YYYY-MM-DD") {
			t.Fatalf("expected date error for %q, got %v", s, err)
		}
	}
}

func TestRequiredAndBoundsMapping(t *testing.T) {
	type P struct {
		Name     string  `validate:"required"`
		Min      int     `validate:"gte=10"`
		Max      int     `validate:"lte=5"`
		Rate     float64 `validate:"dec2,gte=0,lte=100"`
		Currency string  `validate:"len=3"`
		Mode     string  `validate:"max=4"`
	}
	cv := NewValidator()

	err := cv.Validate(P{Min: 9, Max: 6, Rate: 1.333, Currency: "RUPEE", Mode: "credit card"})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	fe := ToFieldErrors(err)

	checks := []struct{ field, msg string }{
		{"Name", "is required"},
		{"Min", "greater than or equal to 10"},
		{"Max", "less than or equal to 5"},
		{"Rate", "at most 2 decimal places"},
		{"Currency", "exactly 3 characters"},
		{"Mode", "at most 4 characters"},
	}
	for _, c := range checks {
		if !containsFieldMsg(fe, c.field, c.msg) {
			t.Fatalf("missing %q for %s: %+v", c.msg, c.field, fe)
		}
	}
}

func TestToFieldErrors_NonValidation(t *testing.T) {
	fe := ToFieldErrors(errors.New("boom"))
	if len(fe) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(fe))
	}
	if fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("unexpected mapping: %+v", fe[0])
	}
}
