package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"electroledger/internal/ledger"
	"electroledger/pkg/models"
)

var purchaseCmd = &cobra.Command{
	Use:   "purchase",
	Short: "Record purchases made for customers",
}

var purchaseAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a purchase",
	Long: `Record a purchase for a customer.

--paid-by says who bears the cost: customer (default), issam or credit.
--date is DD/MM/YYYY and defaults to today.`,
	Example: `  electroledger purchase add --customer 3 --item "كابل 2.5 مم" --qty 2 --price 150 --paid-by issam`,
	Args:    cobra.NoArgs,
	RunE:    runPurchaseAdd,
}

var purchaseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List purchases",
	Args:  cobra.NoArgs,
	RunE:  runPurchaseList,
}

var purchaseUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Change a purchase",
	Args:  cobra.ExactArgs(1),
	RunE:  runPurchaseUpdate,
}

var purchaseRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a purchase",
	Args:  cobra.ExactArgs(1),
	RunE:  runPurchaseRemove,
}

func init() {
	rootCmd.AddCommand(purchaseCmd)
	purchaseCmd.AddCommand(purchaseAddCmd, purchaseListCmd, purchaseUpdateCmd, purchaseRemoveCmd)

	for _, c := range []*cobra.Command{purchaseAddCmd, purchaseUpdateCmd} {
		c.Flags().String("customer", "", "Customer id")
		c.Flags().String("item", "", "Item name")
		c.Flags().Int("qty", 1, "Quantity")
		c.Flags().String("price", "", "Unit price (DA)")
		c.Flags().String("store", "", "Store the item was bought from")
		c.Flags().String("date", "", "Purchase date, DD/MM/YYYY")
		c.Flags().String("paid-by", "", "customer, issam or credit")
	}
	purchaseListCmd.Flags().String("customer", "", "Only this customer's purchases")
}

func purchaseTable(purchases []models.Purchase) *table {
	t := &table{headers: []string{"ID", "التاريخ", "السلعة", "الكمية", "السعر", "المجموع", "المحل", "الدافع"}}
	for _, p := range purchases {
		t.add(p.ID.String(), p.Date, p.ItemName, fmt.Sprint(p.Quantity.Int()), money(p.Price),
			money(ledger.PurchaseLineTotal(p)), p.StoreName, payerLabel(p.PaymentStatus))
	}
	return t
}

func runPurchaseAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	price, err := amountFlag(cmd, "price")
	if err != nil {
		return err
	}
	customer, _ := cmd.Flags().GetString("customer")
	item, _ := cmd.Flags().GetString("item")
	qty, _ := cmd.Flags().GetInt("qty")
	storeName, _ := cmd.Flags().GetString("store")
	date, _ := cmd.Flags().GetString("date")

	in := models.NewPurchase{
		ClientID:  models.ID(customer),
		ItemName:  item,
		Quantity:  qty,
		Price:     price,
		StoreName: storeName,
		Date:      date,
	}
	if s := optStatus(cmd, "paid-by"); s != nil {
		in.PaymentStatus = *s
	}
	if !in.ClientID.IsZero() {
		if _, ok, err := books.Customers.Get(ctx, in.ClientID); err != nil {
			return err
		} else if !ok {
			return notFound("customer", in.ClientID)
		}
	}

	p, err := books.Purchases.Add(ctx, in)
	if err != nil {
		return err
	}
	return done(cmd, p, "تمت إضافة السلعة %s (%s) بمبلغ %s", p.ItemName, p.ID, money(ledger.PurchaseLineTotal(p)))
}

func runPurchaseList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	var (
		purchases []models.Purchase
		err       error
	)
	if customer, _ := cmd.Flags().GetString("customer"); customer != "" {
		purchases, err = books.Purchases.ListByCustomer(ctx, models.ID(customer))
	} else {
		purchases, err = books.Purchases.List(ctx)
	}
	if err != nil {
		return err
	}
	return render(cmd, purchases, purchaseTable(purchases))
}

func runPurchaseUpdate(cmd *cobra.Command, args []string) error {
	id := idArg(args)
	price, err := optAmount(cmd, "price")
	if err != nil {
		return err
	}
	patch := models.PurchasePatch{
		ItemName:      optString(cmd, "item"),
		Quantity:      optInt(cmd, "qty"),
		Price:         price,
		StoreName:     optString(cmd, "store"),
		Date:          optString(cmd, "date"),
		PaymentStatus: optStatus(cmd, "paid-by"),
	}
	if c := optString(cmd, "customer"); c != nil {
		clientID := models.ID(*c)
		patch.ClientID = &clientID
	}

	ok, err := books.Purchases.Update(cmd.Context(), id, patch)
	if err != nil {
		return err
	}
	if !ok {
		return notFound("purchase", id)
	}
	return done(cmd, map[string]interface{}{"id": id, "updated": true}, "تم تحديث السلعة %s", id)
}

func runPurchaseRemove(cmd *cobra.Command, args []string) error {
	id := idArg(args)
	ok, err := books.Purchases.Remove(cmd.Context(), id)
	if err != nil {
		return err
	}
	if !ok {
		return notFound("purchase", id)
	}
	return done(cmd, map[string]interface{}{"id": id, "removed": true}, "تم حذف السلعة %s", id)
}
