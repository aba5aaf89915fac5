package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus records who ultimately bears the cost of a purchase.
type PaymentStatus string

const (
	// PaidByCustomer means the customer paid the store directly.
	PaidByCustomer PaymentStatus = "customer"
	// PaidByIssam means the shop owner covered the purchase.
	PaidByIssam PaymentStatus = "issam"
	// OnCredit means the cost is deferred as store credit.
	OnCredit PaymentStatus = "credit"
)

// PaymentStatuses lists the valid statuses.
var PaymentStatuses = []PaymentStatus{PaidByCustomer, PaidByIssam, OnCredit}

// Valid reports whether s is one of the known statuses.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaidByCustomer, PaidByIssam, OnCredit:
		return true
	}
	return false
}

// Purchase is one line item bought on behalf of a customer.
type Purchase struct {
	ID            ID              `json:"id"`
	ClientID      ID              `json:"clientId"`
	ItemName      string          `json:"itemName"`
	Quantity      Count           `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
	StoreName     string          `json:"storeName"`
	Date          string          `json:"date"`
	PaymentStatus PaymentStatus   `json:"paymentStatus"`
}

// Identity implements store.Identified.
func (p Purchase) Identity() ID { return p.ID }

// When parses the purchase date in loc.
func (p Purchase) When(loc *time.Location) (time.Time, error) {
	return ParseDate(p.Date, loc)
}

// NewPurchase holds the fields needed to record a purchase. A zero Quantity
// means 1, an empty PaymentStatus means PaidByCustomer and an empty Date
// means today.
type NewPurchase struct {
	ClientID      ID              `validate:"required"`
	ItemName      string          `validate:"required"`
	Quantity      int             `validate:"gte=0"`
	Price         decimal.Decimal `validate:"gt=0"`
	StoreName     string
	Date          string        `validate:"omitempty,ddmmyyyy"`
	PaymentStatus PaymentStatus `validate:"omitempty,oneof=customer issam credit"`
}

// PurchasePatch is a partial update. Nil fields are left unchanged.
type PurchasePatch struct {
	ClientID      *ID
	ItemName      *string
	Quantity      *int             `validate:"omitempty,min=1"`
	Price         *decimal.Decimal `validate:"omitempty,gt=0"`
	StoreName     *string
	Date          *string        `validate:"omitempty,ddmmyyyy"`
	PaymentStatus *PaymentStatus `validate:"omitempty,oneof=customer issam credit"`
}

// Apply returns p with the patch fields set.
func (pp PurchasePatch) Apply(p Purchase) Purchase {
	if pp.ClientID != nil {
		p.ClientID = *pp.ClientID
	}
	if pp.ItemName != nil {
		p.ItemName = *pp.ItemName
	}
	if pp.Quantity != nil {
		p.Quantity = Count(*pp.Quantity)
	}
	if pp.Price != nil {
		p.Price = *pp.Price
	}
	if pp.StoreName != nil {
		p.StoreName = *pp.StoreName
	}
	if pp.Date != nil {
		p.Date = *pp.Date
	}
	if pp.PaymentStatus != nil {
		p.PaymentStatus = *pp.PaymentStatus
	}
	return p
}
