package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"electroledger/pkg/models"
)

// table is a plain-text result with a header row.
type table struct {
	headers []string
	rows    [][]string
	footer  []string
}

func (t *table) add(cells ...string) {
	t.rows = append(t.rows, cells)
}

// render prints v as JSON when --json is set and t otherwise.
func render(cmd *cobra.Command, v interface{}, t *table) error {
	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(t.headers, "\t"))
	for _, row := range t.rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	if len(t.footer) > 0 {
		fmt.Fprintln(w, strings.Join(t.footer, "\t"))
	}
	return w.Flush()
}

// done prints a one-line confirmation, or v as JSON.
func done(cmd *cobra.Command, v interface{}, format string, args ...interface{}) error {
	if jsonOutput {
		return render(cmd, v, nil)
	}
	_, err := fmt.Fprintf(cmd.OutOrStdout(), format+"\n", args...)
	return err
}

func money(d decimal.Decimal) string {
	return models.FormatAmount(d)
}

func yesNo(b bool) string {
	if b {
		return "نعم"
	}
	return "لا"
}

func payerLabel(s models.PaymentStatus) string {
	switch s {
	case models.PaidByIssam:
		return "عصام"
	case models.OnCredit:
		return "كريدي"
	default:
		return "الزبون"
	}
}
