package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"electroledger/internal/logger"
	"electroledger/internal/store"
	"electroledger/pkg/models"
)

// DefaultEmployees are the workers seeded into an empty employee list.
var DefaultEmployees = []string{"عبد الرحيم", "محفوظ", "عمران"}

// Books groups every repository over one store.
type Books struct {
	Customers *Customers
	Purchases *Purchases
	Employees *Employees
	Expenses  *Expenses

	now Clock
	log zerolog.Logger
}

// Option configures Books.
type Option func(*Books)

// WithClock replaces time.Now for date stamping.
func WithClock(now Clock) Option {
	return func(b *Books) {
		b.now = now
	}
}

// New opens all repositories on s.
func New(s *store.Store, opts ...Option) *Books {
	b := &Books{
		now: time.Now,
		log: logger.WithComponent("books"),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.Customers = NewCustomers(s, b.now)
	b.Purchases = NewPurchases(s, b.now)
	b.Employees = NewEmployees(s)
	b.Expenses = NewExpenses(s, b.now)
	return b
}

// Now returns the current time from the configured clock.
func (b *Books) Now() time.Time {
	return b.now()
}

// RemoveCustomer deletes a customer. With cascade set its purchases are
// deleted too; otherwise they are left orphaned. It returns whether the
// customer existed and how many purchases were removed.
func (b *Books) RemoveCustomer(ctx context.Context, id models.ID, cascade bool) (bool, int, error) {
	const op = "repository.Books.RemoveCustomer"

	ok, err := b.Customers.Remove(ctx, id)
	if err != nil {
		return false, 0, fmt.Errorf("%s: %w", op, err)
	}
	if !ok || !cascade {
		return ok, 0, nil
	}
	n, err := b.Purchases.RemoveByCustomer(ctx, id)
	if err != nil {
		return true, 0, fmt.Errorf("%s: purchases: %w", op, err)
	}
	b.log.Info().Str("customer", id.String()).Int("purchases", n).Msg("Customer removed with purchases")
	return true, n, nil
}

// SeedDefaultEmployees hires the named workers at wage when no employee
// exists yet. It returns the employees added.
func (b *Books) SeedDefaultEmployees(ctx context.Context, names []string, wage decimal.Decimal) ([]models.Employee, error) {
	const op = "repository.Books.SeedDefaultEmployees"

	existing, err := b.Employees.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(existing) > 0 {
		return nil, nil
	}
	added := make([]models.Employee, 0, len(names))
	for _, name := range names {
		e, err := b.Employees.Add(ctx, models.NewEmployee{Name: name, DailyWage: wage})
		if err != nil {
			return added, fmt.Errorf("%s: %w", op, err)
		}
		added = append(added, e)
	}
	b.log.Info().Int("employees", len(added)).Msg("Seeded default employees")
	return added, nil
}
