package accounting

import (
	"testing"

	"github.com/collet-david-pro/Voyages/internal/models"
)

func TestCompute(t *testing.T) {
	t.Run("clamping example", func(t *testing.T) {
		// initial 500, discount 200, paid 300: owed 300, nothing remaining.
		b := Compute(50000, 20000, 30000, models.StatusEnrolled, false)
		if b.Owed != 30000 {
			t.Errorf("Owed = %d", b.Owed)
		}
		if b.Remaining != 0 {
			t.Errorf("Remaining = %d, want 0", b.Remaining)
		}

		// paid only 50: 250 remaining.
		b = Compute(50000, 20000, 5000, models.StatusEnrolled, false)
		if b.Remaining != 25000 {
			t.Errorf("Remaining = %d, want 25000", b.Remaining)
		}
	})

	t.Run("overpayment never goes negative", func(t *testing.T) {
		b := Compute(30000, 0, 45000, models.StatusEnrolled, false)
		if b.Remaining != 0 {
			t.Errorf("Remaining = %d, want 0", b.Remaining)
		}
	})

	t.Run("refundable only while awaiting refund", func(t *testing.T) {
		b := Compute(62000, 0, 35000, models.StatusToRefund, false)
		if b.Refundable != 35000 {
			t.Errorf("Refundable = %d, want 35000", b.Refundable)
		}
		b = Compute(62000, 0, 35000, models.StatusToRefund, true)
		if b.Refundable != 0 {
			t.Errorf("validated refund: Refundable = %d, want 0", b.Refundable)
		}
		b = Compute(62000, 0, 35000, models.StatusEnrolled, false)
		if b.Refundable != 0 {
			t.Errorf("enrolled: Refundable = %d, want 0", b.Refundable)
		}
		b = Compute(62000, 0, 0, models.StatusToRefund, false)
		if b.Refundable != 0 {
			t.Errorf("nothing paid: Refundable = %d, want 0", b.Refundable)
		}
	})
}

func TestRefundCertificateAmount(t *testing.T) {
	payments := []models.Payment{
		{Amount: 20000, Reference: "Chèque n°1"},
		{Amount: 15000},
	}
	if got := RefundCertificateAmount(payments); got != 35000 {
		t.Errorf("before refund: got %d, want 35000", got)
	}

	payments = append(payments, models.Payment{Amount: -35000, Reference: "Remboursement suite annulation"})
	if got := RefundCertificateAmount(payments); got != 35000 {
		t.Errorf("after refund: got %d, want 35000", got)
	}

	if got := RefundCertificateAmount(nil); got != 0 {
		t.Errorf("no payments: got %d, want 0", got)
	}
}

func TestSumBudget(t *testing.T) {
	items := []models.BudgetItem{
		{Kind: models.BudgetRevenue, Amount: 500000},
		{Kind: models.BudgetExpense, Amount: 320000},
		{Kind: models.BudgetExpense, Amount: 110000},
	}
	totals := SumBudget(items)
	if totals.Revenues != 500000 || totals.Expenses != 430000 {
		t.Errorf("totals = %+v", totals)
	}
	if totals.Balance != 70000 {
		t.Errorf("Balance = %d, want 70000", totals.Balance)
	}
}

func TestIndicators(t *testing.T) {
	ind := Indicators(600000, 30, 4)
	if ind.PerStudent != 20000 {
		t.Errorf("PerStudent = %d", ind.PerStudent)
	}
	if ind.PerChaperone != 0 {
		t.Errorf("PerChaperone = %d, chaperones travel free", ind.PerChaperone)
	}
	if ind.PerParticipant != 20000 {
		t.Errorf("PerParticipant = %d", ind.PerParticipant)
	}
	if ind.PerNightPerStudent != 5000 {
		t.Errorf("PerNightPerStudent = %d", ind.PerNightPerStudent)
	}

	if ind := Indicators(600000, 0, 4); ind != (BudgetIndicators{}) {
		t.Errorf("zero students must yield zero indicators, got %+v", ind)
	}
}

func TestInstallments(t *testing.T) {
	t.Run("by count sums to the total", func(t *testing.T) {
		parts, err := InstallmentsByCount(62000, 3)
		if err != nil {
			t.Fatal(err)
		}
		if len(parts) != 3 {
			t.Fatalf("len = %d", len(parts))
		}
		var sum int64
		for _, p := range parts {
			sum += p
		}
		if sum != 62000 {
			t.Errorf("sum = %d, want 62000", sum)
		}
		if parts[2] != 62000-2*(62000/3) {
			t.Errorf("last installment = %d", parts[2])
		}

		if _, err := InstallmentsByCount(62000, 0); err == nil {
			t.Error("zero count must fail")
		}
	})

	t.Run("by amount puts the remainder last", func(t *testing.T) {
		parts, err := InstallmentsByAmount(62000, 25000)
		if err != nil {
			t.Fatal(err)
		}
		want := []int64{25000, 25000, 12000}
		if len(parts) != len(want) {
			t.Fatalf("len = %d", len(parts))
		}
		for i := range want {
			if parts[i] != want[i] {
				t.Errorf("parts[%d] = %d, want %d", i, parts[i], want[i])
			}
		}

		if parts, _ := InstallmentsByAmount(0, 25000); parts != nil {
			t.Errorf("zero total: got %v", parts)
		}
		if _, err := InstallmentsByAmount(62000, 0); err == nil {
			t.Error("zero amount must fail")
		}
	})
}

func TestEuros(t *testing.T) {
	cases := map[int64]string{
		62000:  "620.00",
		5:      "0.05",
		-12050: "-120.50",
		0:      "0.00",
	}
	for cents, want := range cases {
		if got := Euros(cents); got != want {
			t.Errorf("Euros(%d) = %q, want %q", cents, got, want)
		}
	}
}
