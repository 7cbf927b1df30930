package accounting

import "github.com/collet-david-pro/Voyages/internal/models"

// BudgetTotals aggregates a trip's budget lines.
type BudgetTotals struct {
	Expenses int64
	Revenues int64

	// Balance = Revenues - Expenses.
	Balance int64
}

// SumBudget totals the expense and revenue lines of a budget.
func SumBudget(items []models.BudgetItem) BudgetTotals {
	var t BudgetTotals
	for _, it := range items {
		switch it.Kind {
		case models.BudgetExpense:
			t.Expenses += it.Amount
		case models.BudgetRevenue:
			t.Revenues += it.Amount
		}
	}
	t.Balance = t.Revenues - t.Expenses
	return t
}

// BudgetIndicators are the per-head cost figures printed on the budget
// report. Accompanying adults travel for free, so the whole expense total is
// carried by the expected students.
type BudgetIndicators struct {
	PerStudent         int64
	PerChaperone       int64
	PerParticipant     int64
	PerNightPerStudent int64
}

// Indicators divides the expense total over the expected students and nights.
// Zero students or nights yield zero indicators rather than a division error.
func Indicators(expenses int64, students, nights int) BudgetIndicators {
	var ind BudgetIndicators
	if students <= 0 {
		return ind
	}
	ind.PerStudent = expenses / int64(students)
	// Chaperones are free; the per-participant average equals the per-student
	// cost by construction.
	ind.PerParticipant = ind.PerStudent
	if nights > 0 {
		ind.PerNightPerStudent = expenses / int64(nights) / int64(students)
	}
	return ind
}
