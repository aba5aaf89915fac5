package repository

import (
	"context"
	"fmt"
	"strings"

	"electroledger/internal/store"
	"electroledger/internal/validation"
	"electroledger/pkg/models"
)

// Purchases is the purchase collection.
type Purchases struct {
	c   collection[models.Purchase]
	now Clock
}

// NewPurchases opens the purchase collection on s.
func NewPurchases(s *store.Store, now Clock) *Purchases {
	return &Purchases{c: newCollection[models.Purchase](s, store.KeyPurchases), now: now}
}

// List returns every purchase in insertion order.
func (r *Purchases) List(ctx context.Context) ([]models.Purchase, error) {
	return r.c.list(ctx)
}

// Get returns the purchase with the given id.
func (r *Purchases) Get(ctx context.Context, id models.ID) (models.Purchase, bool, error) {
	return r.c.get(ctx, id)
}

// ListByCustomer returns the purchases made for one customer.
func (r *Purchases) ListByCustomer(ctx context.Context, customerID models.ID) ([]models.Purchase, error) {
	all, err := r.c.list(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Purchase, 0)
	for _, p := range all {
		if p.ClientID == customerID {
			out = append(out, p)
		}
	}
	return out, nil
}

// Add records a purchase, defaulting the quantity to 1, the payer to the
// customer and the date to today.
func (r *Purchases) Add(ctx context.Context, in models.NewPurchase) (models.Purchase, error) {
	const op = "repository.Purchases.Add"

	in.ItemName = strings.TrimSpace(in.ItemName)
	in.StoreName = strings.TrimSpace(in.StoreName)
	in.Date = strings.TrimSpace(in.Date)
	if err := validation.Struct(in); err != nil {
		return models.Purchase{}, fmt.Errorf("%s: %w", op, err)
	}

	if in.Quantity == 0 {
		in.Quantity = 1
	}
	if in.PaymentStatus == "" {
		in.PaymentStatus = models.PaidByCustomer
	}
	if in.Date == "" {
		in.Date = models.FormatDate(r.now())
	}

	return r.c.add(ctx, func(id models.ID) models.Purchase {
		return models.Purchase{
			ID:            id,
			ClientID:      in.ClientID,
			ItemName:      in.ItemName,
			Quantity:      models.Count(in.Quantity),
			Price:         in.Price,
			StoreName:     in.StoreName,
			Date:          in.Date,
			PaymentStatus: in.PaymentStatus,
		}
	})
}

// Update applies patch to the purchase with the given id.
func (r *Purchases) Update(ctx context.Context, id models.ID, patch models.PurchasePatch) (bool, error) {
	const op = "repository.Purchases.Update"

	if err := validation.Required("PurchasePatch.ItemName", patch.ItemName); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	if err := validation.Positive("PurchasePatch.Price", patch.Price); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	if err := validation.Struct(patch); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return r.c.update(ctx, id, patch.Apply)
}

// Remove deletes the purchase with the given id.
func (r *Purchases) Remove(ctx context.Context, id models.ID) (bool, error) {
	return r.c.remove(ctx, id)
}

// RemoveByCustomer deletes every purchase of one customer and returns how
// many were removed.
func (r *Purchases) RemoveByCustomer(ctx context.Context, customerID models.ID) (int, error) {
	return r.c.removeWhere(ctx, func(p models.Purchase) bool { return p.ClientID == customerID })
}
