package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"electroledger/pkg/models"
)

// Statement is the account of one customer.
type Statement struct {
	Customer       models.Customer   `json:"customer"`
	Purchases      []models.Purchase `json:"purchases"`
	Total          decimal.Decimal   `json:"total"`
	Unpaid         decimal.Decimal   `json:"unpaid"`
	PaidByCustomer decimal.Decimal   `json:"paidByCustomer"`
	PaidByIssam    decimal.Decimal   `json:"paidByIssam"`
	Credit         decimal.Decimal   `json:"credit"`
	Remaining      decimal.Decimal   `json:"remaining"`
	Overdue        bool              `json:"overdue"`
}

// CustomerStatement computes the account of c from its purchases.
func CustomerStatement(c models.Customer, purchases []models.Purchase, now time.Time, overdueDays int) Statement {
	return Statement{
		Customer:       c,
		Purchases:      purchases,
		Total:          CustomerTotal(purchases),
		Unpaid:         CustomerUnpaidTotal(purchases),
		PaidByCustomer: PaidByCustomerTotal(purchases),
		PaidByIssam:    PaidByIssamTotal(purchases),
		Credit:         CreditTotal(purchases),
		Remaining:      CustomerRemainingBalance(c, purchases),
		Overdue:        OverdueUnpaid(purchases, now, overdueDays),
	}
}

// Snapshot is every collection as read at one moment.
type Snapshot struct {
	Customers []models.Customer
	Purchases []models.Purchase
	Employees []models.Employee
	Expenses  []models.Expense
}

// Dashboard holds the shop-wide figures.
type Dashboard struct {
	ClientsServed      int             `json:"clientsServed"`
	UnpaidBalances     decimal.Decimal `json:"unpaidBalances"`
	PurchasesThisMonth int             `json:"purchasesThisMonth"`
	PaidByIssam        decimal.Decimal `json:"paidByIssam"`
	TotalWages         decimal.Decimal `json:"totalWages"`
	UnpaidWages        decimal.Decimal `json:"unpaidWages"`
	PaidWages          decimal.Decimal `json:"paidWages"`
	Expenses           decimal.Decimal `json:"expenses"`
	Overdue            []models.ID     `json:"overdue,omitempty"`
	MalformedDates     []models.ID     `json:"malformedDates,omitempty"`
}

// Summarize computes the dashboard at now. Unpaid balances and overdue flags
// cover only purchases whose customer still exists.
func Summarize(s Snapshot, now time.Time, overdueDays int) Dashboard {
	byCustomer := ByCustomer(s.Purchases)
	month := MonthlyPurchaseCount(s.Purchases, now.Month(), now.Year())

	d := Dashboard{
		ClientsServed:      len(s.Customers),
		UnpaidBalances:     decimal.Zero,
		PurchasesThisMonth: month.Count,
		PaidByIssam:        PaidByIssamTotal(s.Purchases),
		TotalWages:         TotalWages(s.Employees),
		UnpaidWages:        TotalUnpaidWages(s.Employees),
		PaidWages:          TotalPaidWages(s.Employees),
		Expenses:           ExpenseTotal(s.Expenses),
		MalformedDates:     month.Malformed,
	}
	for _, c := range s.Customers {
		purchases := byCustomer[c.ID]
		d.UnpaidBalances = d.UnpaidBalances.Add(CustomerUnpaidTotal(purchases))
		if OverdueUnpaid(purchases, now, overdueDays) {
			d.Overdue = append(d.Overdue, c.ID)
		}
	}
	return d
}
