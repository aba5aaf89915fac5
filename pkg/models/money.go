package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned when a typed amount cannot be read as a number.
var ErrInvalidAmount = errors.New("invalid amount")

func init() {
	// Amounts are stored as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// ParseAmount reads a user-typed amount. It accepts values such as "5000",
// "35,000", "35 000 DA" and "-120.50".
func ParseAmount(s string) (decimal.Decimal, error) {
	clean := strings.TrimSpace(s)
	clean = strings.ReplaceAll(clean, ",", "")
	clean = strings.ReplaceAll(clean, " ", "")
	clean = strings.ReplaceAll(clean, "\u00a0", "")
	clean = strings.TrimSuffix(strings.TrimSuffix(clean, "DA"), "da")
	clean = strings.TrimSuffix(clean, "دج")
	clean = strings.TrimSpace(clean)
	if clean == "" {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return d, nil
}

// FormatAmount renders an amount the way invoices and messages show it,
// for example "35,000 DA".
func FormatAmount(d decimal.Decimal) string {
	neg := d.IsNegative()
	s := d.Abs().StringFixed(2)
	s = strings.TrimSuffix(strings.TrimSuffix(s, "00"), ".")
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	b.WriteString(" DA")
	return b.String()
}
