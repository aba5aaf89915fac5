package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is a client of the shop.
type Customer struct {
	ID    ID     `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`

	// Advance is cash the customer paid ahead of future purchases.
	Advance decimal.Decimal `json:"advance"`

	// AdvanceDate is the UTC time of the last change to Advance; nil while
	// Advance is zero.
	AdvanceDate *time.Time `json:"advanceDate"`

	Notes string `json:"notes,omitempty"`
}

// Identity implements store.Identified.
func (c Customer) Identity() ID { return c.ID }

// NewCustomer holds the fields needed to create a customer.
type NewCustomer struct {
	Name    string          `validate:"required"`
	Phone   string          `validate:"omitempty,max=32"`
	Advance decimal.Decimal `validate:"gte=0"`
	Notes   string
}

// CustomerPatch is a partial update. Nil fields are left unchanged.
type CustomerPatch struct {
	Name    *string
	Phone   *string          `validate:"omitempty,max=32"`
	Advance *decimal.Decimal `validate:"omitempty,gte=0"`
	Notes   *string
}

// Apply returns c with the patch fields set.
func (p CustomerPatch) Apply(c Customer) Customer {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Advance != nil {
		c.Advance = *p.Advance
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
	return c
}

// IsEmpty reports whether the patch changes nothing.
func (p CustomerPatch) IsEmpty() bool {
	return p.Name == nil && p.Phone == nil && p.Advance == nil && p.Notes == nil
}
