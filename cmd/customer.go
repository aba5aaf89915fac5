package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"electroledger/internal/ledger"
	"electroledger/internal/logger"
	"electroledger/pkg/models"
)

var customerCmd = &cobra.Command{
	Use:   "customer",
	Short: "Manage customers and their advances",
}

var customerAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a customer",
	Example: `  electroledger customer add --name "Ahmed" --phone 0555000000
  electroledger customer add --name "Karim" --advance "5,000 DA"`,
	Args: cobra.NoArgs,
	RunE: runCustomerAdd,
}

var customerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List customers with their balances",
	Args:  cobra.NoArgs,
	RunE:  runCustomerList,
}

var customerShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a customer's account and purchases",
	Args:  cobra.ExactArgs(1),
	RunE:  runCustomerShow,
}

var customerUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Change a customer's details",
	Long: `Change a customer's details. Only the flags given are changed.

The advance date is refreshed only when the advance amount itself changes.`,
	Args: cobra.ExactArgs(1),
	RunE: runCustomerUpdate,
}

var customerRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a customer",
	Long:  `Remove a customer. Their purchases are kept unless --cascade is given.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCustomerRemove,
}

var customerAdvanceCmd = &cobra.Command{
	Use:     "advance <id> <amount>",
	Short:   "Add to a customer's advance",
	Example: `  electroledger customer advance 3 2000`,
	Args:    cobra.ExactArgs(2),
	RunE:    runCustomerAdvance,
}

func init() {
	rootCmd.AddCommand(customerCmd)
	customerCmd.AddCommand(customerAddCmd, customerListCmd, customerShowCmd,
		customerUpdateCmd, customerRemoveCmd, customerAdvanceCmd)

	for _, c := range []*cobra.Command{customerAddCmd, customerUpdateCmd} {
		c.Flags().String("name", "", "Customer name")
		c.Flags().String("phone", "", "Phone number")
		c.Flags().String("advance", "", "Advance paid by the customer (DA)")
		c.Flags().String("notes", "", "Free notes")
	}
	customerRemoveCmd.Flags().Bool("cascade", false, "Also remove the customer's purchases")
}

func runCustomerAdd(cmd *cobra.Command, args []string) error {
	advance, err := amountFlag(cmd, "advance")
	if err != nil {
		return err
	}
	name, _ := cmd.Flags().GetString("name")
	phone, _ := cmd.Flags().GetString("phone")
	notes, _ := cmd.Flags().GetString("notes")

	c, err := books.Customers.Add(cmd.Context(), models.NewCustomer{
		Name:    name,
		Phone:   phone,
		Advance: advance,
		Notes:   notes,
	})
	if err != nil {
		return err
	}
	return done(cmd, c, "تمت إضافة الزبون %s (%s)", c.Name, c.ID)
}

func runCustomerList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	customers, err := books.Customers.List(ctx)
	if err != nil {
		return err
	}
	purchases, err := books.Purchases.List(ctx)
	if err != nil {
		return err
	}

	byCustomer := ledger.ByCustomer(purchases)
	now := books.Now()
	statements := make([]ledger.Statement, 0, len(customers))
	t := &table{headers: []string{"ID", "الاسم", "الهاتف", "التسبيق", "المجموع", "الباقي", "متأخر"}}
	for _, c := range customers {
		st := ledger.CustomerStatement(c, byCustomer[c.ID], now, cfg.OverdueDays)
		statements = append(statements, st)
		t.add(c.ID.String(), c.Name, c.Phone, money(c.Advance), money(st.Total), money(st.Remaining), yesNo(st.Overdue))
	}
	return render(cmd, statements, t)
}

func runCustomerShow(cmd *cobra.Command, args []string) error {
	return showStatement(cmd, idArg(args))
}

func showStatement(cmd *cobra.Command, id models.ID) error {
	ctx := cmd.Context()
	c, ok, err := books.Customers.Get(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return notFound("customer", id)
	}
	purchases, err := books.Purchases.ListByCustomer(ctx, id)
	if err != nil {
		return err
	}
	st := ledger.CustomerStatement(c, purchases, books.Now(), cfg.OverdueDays)

	if !jsonOutput {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "الزبون: %s (%s)\n", c.Name, c.ID)
		if c.Phone != "" {
			fmt.Fprintf(out, "الهاتف: %s\n", c.Phone)
		}
		if c.Notes != "" {
			fmt.Fprintf(out, "ملاحظات: %s\n", c.Notes)
		}
		if c.AdvanceDate != nil {
			fmt.Fprintf(out, "التسبيق: %s (%s)\n", money(c.Advance), c.AdvanceDate.Local().Format("02/01/2006 15:04"))
		}
		fmt.Fprintln(out)
	}

	t := purchaseTable(purchases)
	t.footer = []string{"", "المجموع", "", "", "", money(st.Total), "", ""}
	if err := render(cmd, st, t); err != nil {
		return err
	}
	if jsonOutput {
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nغير مدفوع: %s\n", money(st.Unpaid))
	fmt.Fprintf(out, "مدفوع من طرف عصام: %s\n", money(st.PaidByIssam))
	fmt.Fprintf(out, "كريدي: %s\n", money(st.Credit))
	fmt.Fprintf(out, "الباقي: %s\n", money(st.Remaining))
	if st.Overdue {
		fmt.Fprintf(out, "تنبيه: مشتريات غير مدفوعة منذ أكثر من %d أيام\n", cfg.OverdueDays)
	}
	return nil
}

func runCustomerUpdate(cmd *cobra.Command, args []string) error {
	id := idArg(args)
	advance, err := optAmount(cmd, "advance")
	if err != nil {
		return err
	}
	patch := models.CustomerPatch{
		Name:    optString(cmd, "name"),
		Phone:   optString(cmd, "phone"),
		Advance: advance,
		Notes:   optString(cmd, "notes"),
	}
	if patch.IsEmpty() {
		return fmt.Errorf("nothing to update: pass at least one of --name, --phone, --advance, --notes")
	}

	ok, err := books.Customers.Update(cmd.Context(), id, patch)
	if err != nil {
		return err
	}
	if !ok {
		return notFound("customer", id)
	}
	return done(cmd, map[string]interface{}{"id": id, "updated": true}, "تم تحديث الزبون %s", id)
}

func runCustomerRemove(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("customer")
	id := idArg(args)
	cascade, _ := cmd.Flags().GetBool("cascade")

	ok, removed, err := books.RemoveCustomer(cmd.Context(), id, cascade)
	if err != nil {
		return err
	}
	if !ok {
		return notFound("customer", id)
	}
	log.Info().Str("customer", id.String()).Bool("cascade", cascade).Int("purchases_removed", removed).Msg("Customer removed")
	return done(cmd, map[string]interface{}{"id": id, "removed": true, "purchasesRemoved": removed},
		"تم حذف الزبون %s (%d مشتريات محذوفة)", id, removed)
}

func runCustomerAdvance(cmd *cobra.Command, args []string) error {
	id := idArg(args)
	amount, err := models.ParseAmount(args[1])
	if err != nil {
		return err
	}
	ok, err := books.Customers.AddAdvance(cmd.Context(), id, amount)
	if err != nil {
		return err
	}
	if !ok {
		return notFound("customer", id)
	}
	c, _, err := books.Customers.Get(cmd.Context(), id)
	if err != nil {
		return err
	}
	return done(cmd, c, "التسبيق الجديد للزبون %s: %s", c.Name, money(c.Advance))
}
