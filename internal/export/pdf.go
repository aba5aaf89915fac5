package export

import (
	"fmt"
	"io"
	"os"

	"github.com/go-pdf/fpdf"
)

const (
	pdfMargin = 20.0
	pdfRow    = 8.0
)

var (
	pdfColumns = []string{"Produit", "Qté", "Prix", "Total", "Magasin", "Payé par"}
	pdfWidths  = []float64{52, 14, 26, 26, 30, 22}
)

// WritePDF renders the invoice as an A4 PDF to w.
func WritePDF(w io.Writer, inv Invoice) error {
	const op = "export.WritePDF"

	if err := inv.check(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	family, tr := "Helvetica", pdf.UnicodeTranslatorFromDescriptor("")
	if inv.FontFile != "" {
		font, err := os.ReadFile(inv.FontFile)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		family, tr = "invoice", func(s string) string { return s }
		for _, style := range []string{"", "B", "I"} {
			pdf.AddUTF8FontFromBytes(family, style, font)
		}
		if pdf.Err() {
			return fmt.Errorf("%s: font %s: %w", op, inv.FontFile, pdf.Error())
		}
	}
	pdf.AddPage()
	pageWidth, _ := pdf.GetPageSize()
	contentWidth := pageWidth - 2*pdfMargin

	pdf.SetFont(family, "B", 22)
	pdf.CellFormat(contentWidth, 12, tr(invoiceTitle), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont(family, "", 12)
	pdf.CellFormat(contentWidth, 7, tr("Client: "+inv.Customer.Name), "", 1, "L", false, 0, "")
	if inv.Customer.Phone != "" {
		pdf.CellFormat(contentWidth, 7, tr("Téléphone: "+inv.Customer.Phone), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(contentWidth, 7, tr("Date: "+inv.Date.Format("02/01/2006")), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	header := func() {
		pdf.SetFont(family, "B", 11)
		pdf.SetFillColor(245, 245, 245)
		pdf.SetDrawColor(200, 200, 200)
		for i, h := range pdfColumns {
			pdf.CellFormat(pdfWidths[i], pdfRow+2, tr(h), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont(family, "", 10)
	}
	header()

	_, pageHeight := pdf.GetPageSize()
	for _, l := range inv.Lines() {
		if pdf.GetY()+pdfRow > pageHeight-pdfMargin {
			pdf.AddPage()
			header()
		}
		cells := []string{
			l.Product,
			fmt.Sprint(l.Quantity),
			frenchAmount(l.UnitPrice),
			frenchAmount(l.Total),
			l.Store,
			l.PaidBy,
		}
		for i, c := range cells {
			align := "C"
			if i == 0 {
				align = "L"
			}
			pdf.CellFormat(pdfWidths[i], pdfRow, tr(c), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	totals := inv.Totals()
	pdf.Ln(8)
	pdf.Line(pdfMargin, pdf.GetY(), pageWidth-pdfMargin, pdf.GetY())
	pdf.Ln(3)
	pdf.SetFont(family, "B", 12)
	pdf.CellFormat(contentWidth, 8, tr("Total: "+frenchAmount(totals.Grand)), "", 1, "L", false, 0, "")
	pdf.SetFont(family, "", 11)
	if totals.PaidByIssam.IsPositive() {
		pdf.CellFormat(contentWidth, 8, tr("Payé par Issam: "+frenchAmount(totals.PaidByIssam)), "", 1, "L", false, 0, "")
	}
	if totals.Credit.IsPositive() {
		pdf.CellFormat(contentWidth, 8, tr("Crédit: "+frenchAmount(totals.Credit)), "", 1, "L", false, 0, "")
	}

	if inv.Customer.Advance.IsPositive() {
		pdf.Ln(4)
		pdf.SetFont(family, "B", 12)
		pdf.CellFormat(contentWidth, 8, tr("Acompte versé par le client: "+frenchAmount(inv.Customer.Advance)), "", 1, "L", false, 0, "")
		if inv.Customer.AdvanceDate != nil {
			pdf.SetFont(family, "", 10)
			when := inv.Customer.AdvanceDate.In(inv.Date.Location()).Format("02/01/2006 - 15:04")
			pdf.CellFormat(contentWidth, 6, tr("Date de l'acompte: "+when), "", 1, "L", false, 0, "")
		}
	}

	pdf.Ln(14)
	half := contentWidth / 2
	pdf.SetFont(family, "B", 12)
	pdf.CellFormat(half, 7, "Signature:", "", 0, "L", false, 0, "")
	pdf.CellFormat(half, 7, "Date:", "", 1, "R", false, 0, "")
	pdf.SetFont(family, "", 10)
	pdf.CellFormat(half, 7, tr(inv.signature()), "", 0, "L", false, 0, "")
	pdf.CellFormat(half, 7, "_________________", "", 1, "R", false, 0, "")

	pdf.Ln(12)
	pdf.SetFont(family, "I", 11)
	pdf.CellFormat(contentWidth, 7, tr(inv.footer()), "", 1, "C", false, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
