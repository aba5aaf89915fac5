package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"electroledger/internal/store"
	"electroledger/internal/validation"
	"electroledger/pkg/models"
)

// ErrNegativeDays is returned when work days would be reduced.
var ErrNegativeDays = errors.New("work days must not be negative")

// Employees is the employee collection.
type Employees struct {
	c collection[models.Employee]
}

// NewEmployees opens the employee collection on s.
func NewEmployees(s *store.Store) *Employees {
	return &Employees{c: newCollection[models.Employee](s, store.KeyEmployees)}
}

// List returns every employee in insertion order.
func (r *Employees) List(ctx context.Context) ([]models.Employee, error) {
	return r.c.list(ctx)
}

// Get returns the employee with the given id.
func (r *Employees) Get(ctx context.Context, id models.ID) (models.Employee, bool, error) {
	return r.c.get(ctx, id)
}

// Add hires an employee with no work days and an unpaid status.
func (r *Employees) Add(ctx context.Context, in models.NewEmployee) (models.Employee, error) {
	const op = "repository.Employees.Add"

	in.Name = strings.TrimSpace(in.Name)
	if err := validation.Struct(in); err != nil {
		return models.Employee{}, fmt.Errorf("%s: %w", op, err)
	}
	return r.c.add(ctx, func(id models.ID) models.Employee {
		return models.Employee{ID: id, Name: in.Name, DailyWage: in.DailyWage}
	})
}

// Update applies patch to the employee with the given id.
func (r *Employees) Update(ctx context.Context, id models.ID, patch models.EmployeePatch) (bool, error) {
	const op = "repository.Employees.Update"

	if err := validation.Required("EmployeePatch.Name", patch.Name); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	if err := validation.Struct(patch); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return r.c.update(ctx, id, patch.Apply)
}

// AddWorkDays accrues n more work days.
func (r *Employees) AddWorkDays(ctx context.Context, id models.ID, n int) (bool, error) {
	const op = "repository.Employees.AddWorkDays"

	if n < 0 {
		return false, fmt.Errorf("%s: %w", op, ErrNegativeDays)
	}
	return r.c.update(ctx, id, func(e models.Employee) models.Employee {
		e.WorkDays += models.Count(n)
		return e
	})
}

// MarkPaid settles the employee's wages: the paid flag is set and the
// accrued days are reset to zero.
func (r *Employees) MarkPaid(ctx context.Context, id models.ID) (bool, error) {
	return r.c.update(ctx, id, func(e models.Employee) models.Employee {
		e.IsPaid = true
		e.WorkDays = 0
		return e
	})
}

// MarkUnpaid clears the paid flag and leaves the work days alone.
func (r *Employees) MarkUnpaid(ctx context.Context, id models.ID) (bool, error) {
	return r.c.update(ctx, id, func(e models.Employee) models.Employee {
		e.IsPaid = false
		return e
	})
}

// Remove deletes the employee with the given id.
func (r *Employees) Remove(ctx context.Context, id models.ID) (bool, error) {
	return r.c.remove(ctx, id)
}
