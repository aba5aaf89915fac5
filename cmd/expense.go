package cmd

import (
	"github.com/spf13/cobra"

	"electroledger/internal/ledger"
	"electroledger/pkg/models"
)

var expenseCmd = &cobra.Command{
	Use:   "expense",
	Short: "Record shop expenses",
}

var expenseAddCmd = &cobra.Command{
	Use:     "add",
	Short:   "Record an expense",
	Example: `  electroledger expense add --title "Loyer" --amount 30000 --date 01/06/2024`,
	Args:    cobra.NoArgs,
	RunE:    runExpenseAdd,
}

var expenseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List expenses",
	Args:  cobra.NoArgs,
	RunE:  runExpenseList,
}

var expenseUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Change an expense",
	Args:  cobra.ExactArgs(1),
	RunE:  runExpenseUpdate,
}

var expenseRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove an expense",
	Args:  cobra.ExactArgs(1),
	RunE:  runExpenseRemove,
}

func init() {
	rootCmd.AddCommand(expenseCmd)
	expenseCmd.AddCommand(expenseAddCmd, expenseListCmd, expenseUpdateCmd, expenseRemoveCmd)

	for _, c := range []*cobra.Command{expenseAddCmd, expenseUpdateCmd} {
		c.Flags().String("title", "", "What the money was spent on")
		c.Flags().String("amount", "", "Amount (DA)")
		c.Flags().String("date", "", "Date, DD/MM/YYYY (default today)")
	}
}

func runExpenseAdd(cmd *cobra.Command, args []string) error {
	amount, err := amountFlag(cmd, "amount")
	if err != nil {
		return err
	}
	title, _ := cmd.Flags().GetString("title")
	date, _ := cmd.Flags().GetString("date")

	e, err := books.Expenses.Add(cmd.Context(), models.NewExpense{Title: title, Amount: amount, Date: date})
	if err != nil {
		return err
	}
	return done(cmd, e, "تمت إضافة المصروف %s (%s): %s", e.Title, e.ID, money(e.Amount))
}

func runExpenseList(cmd *cobra.Command, args []string) error {
	expenses, err := books.Expenses.List(cmd.Context())
	if err != nil {
		return err
	}
	t := &table{headers: []string{"ID", "التاريخ", "العنوان", "المبلغ"}}
	for _, e := range expenses {
		t.add(e.ID.String(), e.Date, e.Title, money(e.Amount))
	}
	t.footer = []string{"", "", "المجموع", money(ledger.ExpenseTotal(expenses))}
	return render(cmd, expenses, t)
}

func runExpenseUpdate(cmd *cobra.Command, args []string) error {
	id := idArg(args)
	amount, err := optAmount(cmd, "amount")
	if err != nil {
		return err
	}
	patch := models.ExpensePatch{
		Title:  optString(cmd, "title"),
		Amount: amount,
		Date:   optString(cmd, "date"),
	}
	ok, err := books.Expenses.Update(cmd.Context(), id, patch)
	if err != nil {
		return err
	}
	if !ok {
		return notFound("expense", id)
	}
	return done(cmd, map[string]interface{}{"id": id, "updated": true}, "تم تحديث المصروف %s", id)
}

func runExpenseRemove(cmd *cobra.Command, args []string) error {
	id := idArg(args)
	ok, err := books.Expenses.Remove(cmd.Context(), id)
	if err != nil {
		return err
	}
	if !ok {
		return notFound("expense", id)
	}
	return done(cmd, map[string]interface{}{"id": id, "removed": true}, "تم حذف المصروف %s", id)
}
