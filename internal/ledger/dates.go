package ledger

import (
	"fmt"
	"sort"
	"time"

	"electroledger/pkg/models"
)

// DefaultOverdueDays is how old an unpaid purchase may get before the
// customer is flagged.
const DefaultOverdueDays = 7

// DateScan is a purchase count along with the purchases whose dates could
// not be read and were left out of it.
type DateScan struct {
	Count     int         `json:"count"`
	Malformed []models.ID `json:"malformed,omitempty"`
}

// MonthlyPurchaseCount counts the purchases dated in the given month of year.
func MonthlyPurchaseCount(purchases []models.Purchase, month time.Month, year int) DateScan {
	var scan DateScan
	for _, p := range purchases {
		d, err := p.When(time.UTC)
		if err != nil {
			scan.Malformed = append(scan.Malformed, p.ID)
			continue
		}
		if d.Month() == month && d.Year() == year {
			scan.Count++
		}
	}
	return scan
}

// MonthGroup holds the purchases of one calendar month.
type MonthGroup struct {
	Key       string            `json:"key"`
	Year      int               `json:"year"`
	Month     time.Month        `json:"month"`
	Purchases []models.Purchase `json:"purchases"`
}

// GroupByMonth buckets purchases by month, oldest month first. Purchases
// with unreadable dates are returned separately by id.
func GroupByMonth(purchases []models.Purchase) ([]MonthGroup, []models.ID) {
	index := make(map[string]int)
	var (
		groups    []MonthGroup
		malformed []models.ID
	)
	for _, p := range purchases {
		d, err := p.When(time.UTC)
		if err != nil {
			malformed = append(malformed, p.ID)
			continue
		}
		key := fmt.Sprintf("%04d-%02d", d.Year(), int(d.Month()))
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, MonthGroup{Key: key, Year: d.Year(), Month: d.Month()})
		}
		groups[i].Purchases = append(groups[i].Purchases, p)
	}
	sort.SliceStable(groups, func(a, b int) bool { return groups[a].Key < groups[b].Key })
	return groups, malformed
}

// OverdueUnpaid reports whether any purchase the customer still owes on is
// more than thresholdDays old at now. Purchase dates are read in now's
// location. A threshold of zero or less uses DefaultOverdueDays.
func OverdueUnpaid(purchases []models.Purchase, now time.Time, thresholdDays int) bool {
	if thresholdDays <= 0 {
		thresholdDays = DefaultOverdueDays
	}
	limit := time.Duration(thresholdDays) * 24 * time.Hour
	owed := withStatus(models.PaidByCustomer, models.OnCredit)
	for _, p := range purchases {
		if !owed(p) {
			continue
		}
		d, err := p.When(now.Location())
		if err != nil {
			continue
		}
		if now.Sub(d) > limit {
			return true
		}
	}
	return false
}
