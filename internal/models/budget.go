package models

// BudgetKind classifies a budget line as planned spending or income.
type BudgetKind string

const (
	BudgetExpense BudgetKind = "expense"
	BudgetRevenue BudgetKind = "revenue"
)

// Valid reports whether k is a known budget line kind.
func (k BudgetKind) Valid() bool {
	return k == BudgetExpense || k == BudgetRevenue
}

// BudgetCategory tags budget lines (transport, lodging, grants, ...). Names
// are unique.
type BudgetCategory struct {
	ID   int64
	Name string
}

// BudgetItem is one planned expense or revenue line of a trip's budget.
type BudgetItem struct {
	ID         int64
	TripID     int64
	Kind       BudgetKind
	CategoryID int64

	// CategoryName is filled on reads that join budget_categories.
	CategoryName string

	Description string

	// Amount in cents, always positive; Kind carries the sign.
	Amount int64
}
