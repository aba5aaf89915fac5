package models

import "github.com/shopspring/decimal"

// Employee is a worker paid by the day.
type Employee struct {
	ID        ID              `json:"id"`
	Name      string          `json:"name"`
	DailyWage decimal.Decimal `json:"dailyWage"`
	WorkDays  Count           `json:"workDays"`
	IsPaid    bool            `json:"isPaid"`
}

// Identity implements store.Identified.
func (e Employee) Identity() ID { return e.ID }

// NewEmployee holds the fields needed to hire an employee.
type NewEmployee struct {
	Name      string          `validate:"required"`
	DailyWage decimal.Decimal `validate:"gte=0"`
}

// EmployeePatch is a partial update. Nil fields are left unchanged.
type EmployeePatch struct {
	Name      *string
	DailyWage *decimal.Decimal `validate:"omitempty,gte=0"`
	WorkDays  *int             `validate:"omitempty,gte=0"`
	IsPaid    *bool
}

// Apply returns e with the patch fields set.
func (p EmployeePatch) Apply(e Employee) Employee {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.DailyWage != nil {
		e.DailyWage = *p.DailyWage
	}
	if p.WorkDays != nil {
		e.WorkDays = Count(*p.WorkDays)
	}
	if p.IsPaid != nil {
		e.IsPaid = *p.IsPaid
	}
	return e
}
