// Package ledger derives money figures from entity records. Nothing here
// reads or writes the store; callers pass in what the repositories return.
package ledger

import (
	"github.com/shopspring/decimal"

	"electroledger/pkg/models"
)

// PurchaseLineTotal is price times quantity. A quantity below one counts as
// one.
func PurchaseLineTotal(p models.Purchase) decimal.Decimal {
	q := p.Quantity.Int()
	if q < 1 {
		q = 1
	}
	return p.Price.Mul(decimal.NewFromInt(int64(q)))
}

// sumWhere adds the line totals of the purchases accepted by keep.
func sumWhere(purchases []models.Purchase, keep func(models.Purchase) bool) decimal.Decimal {
	total := decimal.Zero
	for _, p := range purchases {
		if keep(p) {
			total = total.Add(PurchaseLineTotal(p))
		}
	}
	return total
}

func withStatus(statuses ...models.PaymentStatus) func(models.Purchase) bool {
	return func(p models.Purchase) bool {
		for _, s := range statuses {
			if p.PaymentStatus == s {
				return true
			}
		}
		return false
	}
}

// CustomerTotal sums every line of a customer's purchases.
func CustomerTotal(purchases []models.Purchase) decimal.Decimal {
	return sumWhere(purchases, func(models.Purchase) bool { return true })
}

// CustomerUnpaidTotal sums the lines the customer still owes: those paid by
// the customer directly or taken on credit. Lines covered by the owner are
// excluded.
func CustomerUnpaidTotal(purchases []models.Purchase) decimal.Decimal {
	return sumWhere(purchases, withStatus(models.PaidByCustomer, models.OnCredit))
}

// PaidByCustomerTotal sums the lines paid by the customer.
func PaidByCustomerTotal(purchases []models.Purchase) decimal.Decimal {
	return sumWhere(purchases, withStatus(models.PaidByCustomer))
}

// PaidByIssamTotal sums the lines the owner paid for.
func PaidByIssamTotal(purchases []models.Purchase) decimal.Decimal {
	return sumWhere(purchases, withStatus(models.PaidByIssam))
}

// CreditTotal sums the lines taken on credit.
func CreditTotal(purchases []models.Purchase) decimal.Decimal {
	return sumWhere(purchases, withStatus(models.OnCredit))
}

// CustomerRemainingBalance is the customer's total less what the customer
// paid and less the advance. The result is negative when the customer has
// overpaid.
func CustomerRemainingBalance(c models.Customer, purchases []models.Purchase) decimal.Decimal {
	return CustomerTotal(purchases).
		Sub(PaidByCustomerTotal(purchases)).
		Sub(c.Advance)
}

// EmployeeSalary is the daily wage times the accrued work days. Negative
// inputs count as zero.
func EmployeeSalary(e models.Employee) decimal.Decimal {
	days := e.WorkDays.Int()
	if days < 0 || e.DailyWage.IsNegative() {
		return decimal.Zero
	}
	return e.DailyWage.Mul(decimal.NewFromInt(int64(days)))
}

func wagesWhere(employees []models.Employee, keep func(models.Employee) bool) decimal.Decimal {
	total := decimal.Zero
	for _, e := range employees {
		if keep(e) {
			total = total.Add(EmployeeSalary(e))
		}
	}
	return total
}

// TotalWages sums every employee's salary.
func TotalWages(employees []models.Employee) decimal.Decimal {
	return wagesWhere(employees, func(models.Employee) bool { return true })
}

// TotalUnpaidWages sums the salaries of employees not marked paid.
func TotalUnpaidWages(employees []models.Employee) decimal.Decimal {
	return wagesWhere(employees, func(e models.Employee) bool { return !e.IsPaid })
}

// TotalPaidWages sums the salaries of employees marked paid.
func TotalPaidWages(employees []models.Employee) decimal.Decimal {
	return wagesWhere(employees, func(e models.Employee) bool { return e.IsPaid })
}

// ExpenseTotal sums expense amounts.
func ExpenseTotal(expenses []models.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// ByCustomer indexes purchases by customer id, keeping each customer's
// purchases in their original order.
func ByCustomer(purchases []models.Purchase) map[models.ID][]models.Purchase {
	out := make(map[models.ID][]models.Purchase)
	for _, p := range purchases {
		out[p.ClientID] = append(out[p.ClientID], p)
	}
	return out
}
