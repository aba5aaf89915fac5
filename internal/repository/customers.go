package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"electroledger/internal/store"
	"electroledger/internal/validation"
	"electroledger/pkg/models"
)

// ErrInvalidAmount is returned when an advance increment is not positive.
var ErrInvalidAmount = errors.New("amount must be greater than zero")

// Customers is the customer collection.
type Customers struct {
	c   collection[models.Customer]
	now Clock
}

// NewCustomers opens the customer collection on s.
func NewCustomers(s *store.Store, now Clock) *Customers {
	return &Customers{c: newCollection[models.Customer](s, store.KeyCustomers), now: now}
}

// List returns every customer in insertion order.
func (r *Customers) List(ctx context.Context) ([]models.Customer, error) {
	return r.c.list(ctx)
}

// Get returns the customer with the given id.
func (r *Customers) Get(ctx context.Context, id models.ID) (models.Customer, bool, error) {
	return r.c.get(ctx, id)
}

// Add creates a customer. The advance date is set only when the advance is
// positive.
func (r *Customers) Add(ctx context.Context, in models.NewCustomer) (models.Customer, error) {
	const op = "repository.Customers.Add"

	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)
	if err := validation.Struct(in); err != nil {
		return models.Customer{}, fmt.Errorf("%s: %w", op, err)
	}

	return r.c.add(ctx, func(id models.ID) models.Customer {
		return models.Customer{
			ID:          id,
			Name:        in.Name,
			Phone:       in.Phone,
			Advance:     in.Advance,
			AdvanceDate: r.advanceDate(in.Advance),
			Notes:       in.Notes,
		}
	})
}

// Update applies patch to the customer with the given id. The advance date
// moves only when the advance amount itself changes.
func (r *Customers) Update(ctx context.Context, id models.ID, patch models.CustomerPatch) (bool, error) {
	const op = "repository.Customers.Update"

	if err := validation.Required("CustomerPatch.Name", patch.Name); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	if err := validation.Struct(patch); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		patch.Name = &name
	}

	return r.c.update(ctx, id, func(c models.Customer) models.Customer {
		before := c.Advance
		c = patch.Apply(c)
		if !c.Advance.Equal(before) {
			c.AdvanceDate = r.advanceDate(c.Advance)
		}
		return c
	})
}

// AddAdvance increases the customer's advance by amount.
func (r *Customers) AddAdvance(ctx context.Context, id models.ID, amount decimal.Decimal) (bool, error) {
	const op = "repository.Customers.AddAdvance"

	if !amount.IsPositive() {
		return false, fmt.Errorf("%s: %w", op, ErrInvalidAmount)
	}
	return r.c.update(ctx, id, func(c models.Customer) models.Customer {
		c.Advance = c.Advance.Add(amount)
		c.AdvanceDate = r.advanceDate(c.Advance)
		return c
	})
}

// Remove deletes the customer. Purchases referring to it are not touched.
func (r *Customers) Remove(ctx context.Context, id models.ID) (bool, error) {
	return r.c.remove(ctx, id)
}

func (r *Customers) advanceDate(advance decimal.Decimal) *time.Time {
	if !advance.IsPositive() {
		return nil
	}
	t := r.now().UTC()
	return &t
}
