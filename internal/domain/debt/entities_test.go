package debt

import (
	"errors"
	"testing"
)

func TestDebtValidate(t *testing.T) {
	good := mkDebt("a", "12", "500")
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	retired := mkDebt("r", "12", "0")
	if err := retired.Validate(); err != nil {
		t.Fatalf("zero balance must be valid, got %v", err)
	}

	unnamed := mkDebt("n", "12", "1")
	unnamed.Name = ""
	if err := unnamed.Validate(); err != nil {
		t.Fatalf("name is not a ranking invariant, got %v", err)
	}

	negMin := mkDebt("m", "12", "1")
	negMin.MinimumPayment = d("-5")
	negOrig := mkDebt("o", "12", "0")
	negOrig.OriginalAmount = d("-1")

	for i, bad := range []Debt{negMin, negOrig} {
		if err := bad.Validate(); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d: want ErrInvalidInput, got %v", i, err)
		}
	}
}

func TestApplyPayment(t *testing.T) {
	debt := mkDebt("a", "10", "1000")

	if over := debt.ApplyPayment(d("250.50")); over {
		t.Fatalf("partial payment reported as overpaid")
	}
	if !debt.CurrentBalance.Equal(d("749.50")) {
		t.Fatalf("balance = %s, want 749.50", debt.CurrentBalance)
	}
	if !debt.Active() {
		t.Fatalf("debt should still be active")
	}

	if over := debt.ApplyPayment(d("749.50")); over {
		t.Fatalf("exact payoff reported as overpaid")
	}
	if !debt.CurrentBalance.IsZero() || debt.Active() {
		t.Fatalf("debt should be retired, balance = %s", debt.CurrentBalance)
	}

	debt = mkDebt("b", "10", "100")
	if over := debt.ApplyPayment(d("150")); !over {
		t.Fatalf("overpayment not reported")
	}
	if !debt.CurrentBalance.IsZero() {
		t.Fatalf("balance must floor at 0, got %s", debt.CurrentBalance)
	}
}

func TestEnumValid(t *testing.T) {
	if !InterestCompound.Valid() || InterestType("flat").Valid() {
		t.Fatal("InterestType.Valid mismatch")
	}
	if !FrequencyWeekly.Valid() || Frequency("yearly").Valid() {
		t.Fatal("Frequency.Valid mismatch")
	}
	if !PriorityLow.Valid() || Priority("urgent").Valid() {
		t.Fatal("Priority.Valid mismatch")
	}
	if !PaymentLumpSum.Valid() || PaymentType("Lump Sum").Valid() {
		t.Fatal("PaymentType.Valid mismatch")
	}
}
