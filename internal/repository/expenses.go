package repository

import (
	"context"
	"fmt"
	"strings"

	"electroledger/internal/store"
	"electroledger/internal/validation"
	"electroledger/pkg/models"
)

// Expenses is the expense collection.
type Expenses struct {
	c   collection[models.Expense]
	now Clock
}

// NewExpenses opens the expense collection on s.
func NewExpenses(s *store.Store, now Clock) *Expenses {
	return &Expenses{c: newCollection[models.Expense](s, store.KeyExpenses), now: now}
}

// List returns every expense in insertion order.
func (r *Expenses) List(ctx context.Context) ([]models.Expense, error) {
	return r.c.list(ctx)
}

// Get returns the expense with the given id.
func (r *Expenses) Get(ctx context.Context, id models.ID) (models.Expense, bool, error) {
	return r.c.get(ctx, id)
}

// Add records an expense dated today unless a date is given.
func (r *Expenses) Add(ctx context.Context, in models.NewExpense) (models.Expense, error) {
	const op = "repository.Expenses.Add"

	in.Title = strings.TrimSpace(in.Title)
	in.Date = strings.TrimSpace(in.Date)
	if err := validation.Struct(in); err != nil {
		return models.Expense{}, fmt.Errorf("%s: %w", op, err)
	}
	if in.Date == "" {
		in.Date = models.FormatDate(r.now())
	}
	return r.c.add(ctx, func(id models.ID) models.Expense {
		return models.Expense{ID: id, Title: in.Title, Amount: in.Amount, Date: in.Date}
	})
}

// Update applies patch to the expense with the given id.
func (r *Expenses) Update(ctx context.Context, id models.ID, patch models.ExpensePatch) (bool, error) {
	const op = "repository.Expenses.Update"

	if err := validation.Required("ExpensePatch.Title", patch.Title); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	if err := validation.Struct(patch); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return r.c.update(ctx, id, patch.Apply)
}

// Remove deletes the expense with the given id.
func (r *Expenses) Remove(ctx context.Context, id models.ID) (bool, error) {
	return r.c.remove(ctx, id)
}
