package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"electroledger/internal/export"
	"electroledger/internal/logger"
	"electroledger/pkg/models"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Invoices and WhatsApp summaries",
}

var exportExcelCmd = &cobra.Command{
	Use:   "excel <customer-id>",
	Short: "Write a French Excel invoice",
	Args:  cobra.ExactArgs(1),
	RunE:  runExportExcel,
}

var exportPDFCmd = &cobra.Command{
	Use:   "pdf <customer-id>",
	Short: "Write a French PDF invoice",
	Args:  cobra.ExactArgs(1),
	RunE:  runExportPDF,
}

var exportWhatsAppCmd = &cobra.Command{
	Use:   "whatsapp <customer-id>",
	Short: "Print the Arabic purchase summary and its wa.me link",
	Args:  cobra.ExactArgs(1),
	RunE:  runExportWhatsApp,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(exportExcelCmd, exportPDFCmd, exportWhatsAppCmd)

	for _, c := range []*cobra.Command{exportExcelCmd, exportPDFCmd} {
		c.Flags().StringP("out", "o", "", "Output file or directory (default: DATA_DIR/exports)")
	}
}

func loadInvoice(cmd *cobra.Command, id models.ID) (export.Invoice, error) {
	ctx := cmd.Context()
	c, ok, err := books.Customers.Get(ctx, id)
	if err != nil {
		return export.Invoice{}, err
	}
	if !ok {
		return export.Invoice{}, notFound("customer", id)
	}
	purchases, err := books.Purchases.ListByCustomer(ctx, id)
	if err != nil {
		return export.Invoice{}, err
	}
	return export.Invoice{
		Customer:  c,
		Purchases: purchases,
		Date:      books.Now(),
		Signature: cfg.InvoiceSignature,
		Footer:    cfg.InvoiceFooter,
		FontFile:  cfg.PDFFontFile,
	}, nil
}

// outputPath resolves --out: empty means DATA_DIR/exports, an existing
// directory gets the invoice's own file name.
func outputPath(cmd *cobra.Command, inv export.Invoice, ext string) (string, error) {
	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		out = filepath.Join(cfg.DataDir, "exports")
		if err := os.MkdirAll(out, 0o750); err != nil {
			return "", err
		}
	}
	if info, err := os.Stat(out); err == nil && info.IsDir() {
		out = filepath.Join(out, inv.Filename(ext))
	}
	return out, nil
}

func writeInvoice(cmd *cobra.Command, id models.ID, ext string, write func(io.Writer, export.Invoice) error) error {
	log := logger.WithComponent("export")

	inv, err := loadInvoice(cmd, id)
	if err != nil {
		return err
	}
	path, err := outputPath(cmd, inv, ext)
	if err != nil {
		return fmt.Errorf("failed to prepare output: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(f, inv); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	log.Info().
		Str("customer", inv.Customer.ID.String()).
		Str("format", ext).
		Str("path", path).
		Int("lines", len(inv.Purchases)).
		Msg("Invoice written")
	return done(cmd, map[string]string{"path": path}, "تم حفظ الفاتورة: %s", path)
}

func runExportExcel(cmd *cobra.Command, args []string) error {
	return writeInvoice(cmd, idArg(args), "xlsx", export.WriteExcel)
}

func runExportPDF(cmd *cobra.Command, args []string) error {
	return writeInvoice(cmd, idArg(args), "pdf", export.WritePDF)
}

func runExportWhatsApp(cmd *cobra.Command, args []string) error {
	inv, err := loadInvoice(cmd, idArg(args))
	if err != nil {
		return err
	}
	msg := export.WhatsAppMessage(inv.Customer, inv.Purchases)
	link := export.WhatsAppLink(inv.Customer.Phone, cfg.DefaultRegion, msg)

	if jsonOutput {
		return render(cmd, map[string]string{"message": msg, "link": link}, nil)
	}
	fmt.Fprintln(cmd.OutOrStdout(), msg)
	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprintln(cmd.OutOrStdout(), link)
	return nil
}
