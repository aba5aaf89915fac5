package export

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/ttacon/libphonenumber"

	"electroledger/internal/ledger"
	"electroledger/pkg/models"
)

// DefaultRegion is used for phone numbers written without a country code.
const DefaultRegion = "DZ"

// WhatsAppMessage is the Arabic summary of a customer's purchases.
func WhatsAppMessage(c models.Customer, purchases []models.Purchase) string {
	var b strings.Builder

	name := c.Name
	if name == "" {
		name = "-"
	}
	fmt.Fprintf(&b, "الزبون: %s", name)
	if c.Phone != "" {
		fmt.Fprintf(&b, "\nالهاتف: %s", c.Phone)
	}
	if c.Notes != "" {
		fmt.Fprintf(&b, "\nملاحظات: %s", c.Notes)
	}
	b.WriteString("\n\nالمشتريات:")

	for i, p := range purchases {
		q := p.Quantity.Int()
		if q < 1 {
			q = 1
		}
		fmt.Fprintf(&b, "\n%d. %s x%d - %s DA (%s)%s", i+1, p.ItemName, q, p.Price.String(), p.StoreName, arabicPayer(p.PaymentStatus))
	}

	fmt.Fprintf(&b, "\n\nالمجموع: %s DA", ledger.CustomerTotal(purchases).String())
	if issam := ledger.PaidByIssamTotal(purchases); issam.IsPositive() {
		fmt.Fprintf(&b, "\nمدفوع من طرف عصام: %s DA", issam.String())
	}
	if credit := ledger.CreditTotal(purchases); credit.IsPositive() {
		fmt.Fprintf(&b, "\nكريدي: %s DA", credit.String())
	}
	if c.Advance.IsPositive() {
		fmt.Fprintf(&b, "\nالتسبيق: %s DA", c.Advance.String())
	}
	return b.String()
}

func arabicPayer(s models.PaymentStatus) string {
	switch s {
	case models.PaidByIssam:
		return " (مدفوع من طرف عصام)"
	case models.OnCredit:
		return " (كريدي)"
	}
	return ""
}

// WhatsAppNumber returns phone in international form without the leading
// plus, as wa.me expects. Numbers that do not parse keep only their digits.
func WhatsAppNumber(phone, region string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}
	if region == "" {
		region = DefaultRegion
	}
	if num, err := libphonenumber.Parse(phone, region); err == nil {
		return strings.TrimPrefix(libphonenumber.Format(num, libphonenumber.E164), "+")
	}
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
}

// WhatsAppLink builds a wa.me link carrying message. Without a phone number
// the link lets the sender pick the recipient.
func WhatsAppLink(phone, region, message string) string {
	text := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return "https://wa.me/" + WhatsAppNumber(phone, region) + "?text=" + text
}
