package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"electroledger/internal/ledger"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Shop-wide and per-customer figures",
}

var reportSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Dashboard: balances, wages, purchases this month",
	Args:  cobra.NoArgs,
	RunE:  runReportSummary,
}

var reportCustomerCmd = &cobra.Command{
	Use:   "customer <id>",
	Short: "A customer's account statement",
	Args:  cobra.ExactArgs(1),
	RunE:  runReportCustomer,
}

var reportMonthlyCmd = &cobra.Command{
	Use:   "monthly",
	Short: "Purchases grouped by month",
	Long: `Purchases grouped by month, oldest first.

With --month and --year only that month's purchase count is printed.`,
	Example: `  electroledger report monthly
  electroledger report monthly --month 6 --year 2024`,
	Args: cobra.NoArgs,
	RunE: runReportMonthly,
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.AddCommand(reportSummaryCmd, reportCustomerCmd, reportMonthlyCmd)

	reportMonthlyCmd.Flags().Int("month", 0, "Month (1-12)")
	reportMonthlyCmd.Flags().Int("year", 0, "Year")
}

func snapshot(cmd *cobra.Command) (ledger.Snapshot, error) {
	ctx := cmd.Context()
	var (
		s   ledger.Snapshot
		err error
	)
	if s.Customers, err = books.Customers.List(ctx); err != nil {
		return s, err
	}
	if s.Purchases, err = books.Purchases.List(ctx); err != nil {
		return s, err
	}
	if s.Employees, err = books.Employees.List(ctx); err != nil {
		return s, err
	}
	if s.Expenses, err = books.Expenses.List(ctx); err != nil {
		return s, err
	}
	return s, nil
}

func runReportSummary(cmd *cobra.Command, args []string) error {
	s, err := snapshot(cmd)
	if err != nil {
		return err
	}
	d := ledger.Summarize(s, books.Now(), cfg.OverdueDays)

	t := &table{headers: []string{"البند", "القيمة"}}
	t.add("الزبائن", fmt.Sprint(d.ClientsServed))
	t.add("الأرصدة غير المدفوعة", money(d.UnpaidBalances))
	t.add("مشتريات هذا الشهر", fmt.Sprint(d.PurchasesThisMonth))
	t.add("مدفوع من طرف عصام", money(d.PaidByIssam))
	t.add("مجموع الأجور", money(d.TotalWages))
	t.add("أجور غير مدفوعة", money(d.UnpaidWages))
	t.add("أجور مدفوعة", money(d.PaidWages))
	t.add("المصاريف", money(d.Expenses))
	t.add("زبائن متأخرون", fmt.Sprint(len(d.Overdue)))
	if len(d.MalformedDates) > 0 {
		t.add("تواريخ غير صالحة", fmt.Sprint(len(d.MalformedDates)))
	}
	return render(cmd, d, t)
}

func runReportCustomer(cmd *cobra.Command, args []string) error {
	return showStatement(cmd, idArg(args))
}

type monthRow struct {
	Key       string `json:"key"`
	Purchases int    `json:"purchases"`
	Total     string `json:"total"`
}

func runReportMonthly(cmd *cobra.Command, args []string) error {
	purchases, err := books.Purchases.List(cmd.Context())
	if err != nil {
		return err
	}

	month, _ := cmd.Flags().GetInt("month")
	year, _ := cmd.Flags().GetInt("year")
	if month != 0 || year != 0 {
		if month < 1 || month > 12 {
			return fmt.Errorf("--month must be between 1 and 12")
		}
		if year == 0 {
			year = books.Now().Year()
		}
		scan := ledger.MonthlyPurchaseCount(purchases, time.Month(month), year)
		t := &table{headers: []string{"الشهر", "المشتريات", "تواريخ غير صالحة"}}
		t.add(fmt.Sprintf("%04d-%02d", year, month), fmt.Sprint(scan.Count), fmt.Sprint(len(scan.Malformed)))
		return render(cmd, scan, t)
	}

	groups, malformed := ledger.GroupByMonth(purchases)
	rows := make([]monthRow, 0, len(groups))
	t := &table{headers: []string{"الشهر", "المشتريات", "المجموع"}}
	for _, g := range groups {
		total := ledger.CustomerTotal(g.Purchases)
		rows = append(rows, monthRow{Key: g.Key, Purchases: len(g.Purchases), Total: total.String()})
		t.add(g.Key, fmt.Sprint(len(g.Purchases)), money(total))
	}
	if len(malformed) > 0 {
		t.footer = []string{"؟", fmt.Sprint(len(malformed)), ""}
	}
	return render(cmd, rows, t)
}
