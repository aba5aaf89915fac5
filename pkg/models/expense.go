package models

import "github.com/shopspring/decimal"

// Expense is a shop running cost.
type Expense struct {
	ID     ID              `json:"id"`
	Title  string          `json:"title"`
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date"`
}

// Identity implements store.Identified.
func (e Expense) Identity() ID { return e.ID }

// NewExpense holds the fields needed to record an expense.
type NewExpense struct {
	Title  string          `validate:"required"`
	Amount decimal.Decimal `validate:"gte=0"`
	Date   string          `validate:"omitempty,ddmmyyyy"`
}

// ExpensePatch is a partial update. Nil fields are left unchanged.
type ExpensePatch struct {
	Title  *string
	Amount *decimal.Decimal `validate:"omitempty,gte=0"`
	Date   *string          `validate:"omitempty,ddmmyyyy"`
}

// Apply returns e with the patch fields set.
func (p ExpensePatch) Apply(e Expense) Expense {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Amount != nil {
		e.Amount = *p.Amount
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	return e
}
