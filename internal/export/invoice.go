// Package export renders a customer's purchases as a French invoice (Excel
// or PDF) or an Arabic WhatsApp summary.
package export

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"electroledger/internal/ledger"
	"electroledger/internal/translate"
	"electroledger/pkg/models"
)

// ErrNoPurchases is returned when an invoice would have no lines.
var ErrNoPurchases = errors.New("customer has no purchases")

const (
	invoiceTitle     = "Facture Issam Électrique"
	defaultSignature = "Issam Électrique"
	defaultFooter    = "Merci pour votre confiance"
)

// Invoice is one customer's bill.
type Invoice struct {
	Customer  models.Customer
	Purchases []models.Purchase
	Date      time.Time

	// Signature and Footer are free text printed at the bottom.
	Signature string
	Footer    string

	// FontFile is a TrueType font used for the PDF. Without one the PDF uses
	// Helvetica, which covers cp1252 only; other characters print as "?".
	FontFile string
}

// Line is one translated invoice row.
type Line struct {
	Product   string
	Quantity  int
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
	Store     string
	PaidBy    string
}

// Totals are the sums printed under the lines.
type Totals struct {
	Grand       decimal.Decimal
	PaidByIssam decimal.Decimal
	Credit      decimal.Decimal
}

func (inv Invoice) check() error {
	if len(inv.Purchases) == 0 {
		return ErrNoPurchases
	}
	return nil
}

// Lines returns the purchases as French invoice rows.
func (inv Invoice) Lines() []Line {
	lines := make([]Line, 0, len(inv.Purchases))
	for _, p := range inv.Purchases {
		q := p.Quantity.Int()
		if q < 1 {
			q = 1
		}
		lines = append(lines, Line{
			Product:   translate.French(p.ItemName),
			Quantity:  q,
			UnitPrice: p.Price,
			Total:     ledger.PurchaseLineTotal(p),
			Store:     translate.French(p.StoreName),
			PaidBy:    frenchPayer(p.PaymentStatus),
		})
	}
	return lines
}

// Totals sums the invoice.
func (inv Invoice) Totals() Totals {
	return Totals{
		Grand:       ledger.CustomerTotal(inv.Purchases),
		PaidByIssam: ledger.PaidByIssamTotal(inv.Purchases),
		Credit:      ledger.CreditTotal(inv.Purchases),
	}
}

func (inv Invoice) signature() string {
	if inv.Signature == "" {
		return defaultSignature
	}
	return inv.Signature
}

func (inv Invoice) footer() string {
	if inv.Footer == "" {
		return defaultFooter
	}
	return inv.Footer
}

// Filename is the suggested file name for the invoice with the given
// extension, e.g. "Facture_Ahmed_15-06-2024.xlsx".
func (inv Invoice) Filename(ext string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '-'
		case ' ':
			return '_'
		}
		return r
	}, strings.TrimSpace(inv.Customer.Name))
	return fmt.Sprintf("Facture_%s_%s.%s", name, inv.Date.Format("02-01-2006"), strings.TrimPrefix(ext, "."))
}

func frenchPayer(s models.PaymentStatus) string {
	switch s {
	case models.PaidByIssam:
		return "Issam"
	case models.OnCredit:
		return "Crédit"
	default:
		return "Client"
	}
}

var frenchDigits = strings.NewReplacer(",", " ", ".", ",")

// frenchAmount formats d with French separators: "1 234,50 DA".
func frenchAmount(d decimal.Decimal) string {
	return frenchDigits.Replace(models.FormatAmount(d))
}
