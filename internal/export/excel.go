package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	excelSheet  = "Facture"
	excelHeader = 6
)

var excelColumns = []string{"Produit", "Quantité", "Prix unitaire", "Total", "Magasin", "Payé par"}

type excelStyles struct {
	title, bold, header, italic int
}

func newExcelStyles(f *excelize.File) (excelStyles, error) {
	var (
		s   excelStyles
		err error
	)
	if s.title, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 16}}); err != nil {
		return s, err
	}
	if s.bold, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err != nil {
		return s, err
	}
	if s.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
	}); err != nil {
		return s, err
	}
	if s.italic, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Italic: true}}); err != nil {
		return s, err
	}
	return s, nil
}

// sheet writes cells and remembers the first error.
type sheet struct {
	f   *excelize.File
	err error
}

func (s *sheet) set(col, row int, value interface{}) {
	if s.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		s.err = err
		return
	}
	s.err = s.f.SetCellValue(excelSheet, cell, value)
}

func (s *sheet) style(col, row, style int) {
	if s.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		s.err = err
		return
	}
	s.err = s.f.SetCellStyle(excelSheet, cell, cell, style)
}

// Excel builds the invoice workbook. The caller must Close the file.
func Excel(inv Invoice) (*excelize.File, error) {
	const op = "export.Excel"

	if err := inv.check(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", excelSheet); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	styles, err := newExcelStyles(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%s: styles: %w", op, err)
	}

	s := &sheet{f: f}
	s.set(1, 1, invoiceTitle)
	s.style(1, 1, styles.title)
	s.set(1, 2, "Client: "+inv.Customer.Name)
	s.style(1, 2, styles.bold)
	s.set(1, 3, "Date: "+inv.Date.Format("02/01/2006"))

	for i, h := range excelColumns {
		s.set(i+1, excelHeader, h)
		s.style(i+1, excelHeader, styles.header)
	}

	lines := inv.Lines()
	for i, l := range lines {
		row := excelHeader + 1 + i
		s.set(1, row, l.Product)
		s.set(2, row, l.Quantity)
		s.set(3, row, l.UnitPrice.InexactFloat64())
		s.set(4, row, l.Total.InexactFloat64())
		s.set(5, row, l.Store)
		s.set(6, row, l.PaidBy)
	}

	totals := inv.Totals()
	totalRow := len(lines) + excelHeader + 2
	s.set(1, totalRow, "Total général:")
	s.style(1, totalRow, styles.bold)
	s.set(4, totalRow, totals.Grand.InexactFloat64())
	s.style(4, totalRow, styles.bold)
	if totals.PaidByIssam.IsPositive() {
		s.set(1, totalRow+1, "Payé par Issam:")
		s.set(4, totalRow+1, totals.PaidByIssam.InexactFloat64())
	}
	if totals.Credit.IsPositive() {
		s.set(1, totalRow+2, "Crédit:")
		s.set(4, totalRow+2, totals.Credit.InexactFloat64())
	}

	signatureRow := totalRow + 3
	s.set(1, signatureRow, "Signature:")
	s.style(1, signatureRow, styles.bold)
	s.set(1, signatureRow+1, inv.signature())
	s.set(4, signatureRow, "Date:")
	s.style(4, signatureRow, styles.bold)
	s.set(4, signatureRow+1, "_________________")
	s.set(1, signatureRow+3, inv.footer())
	s.style(1, signatureRow+3, styles.italic)

	if s.err == nil {
		s.err = f.SetColWidth(excelSheet, "A", "A", 32)
	}
	if s.err == nil {
		s.err = f.SetColWidth(excelSheet, "B", "F", 14)
	}
	if s.err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%s: %w", op, s.err)
	}
	return f, nil
}

// WriteExcel writes the invoice workbook to w.
func WriteExcel(w io.Writer, inv Invoice) error {
	f, err := Excel(inv)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("export.WriteExcel: %w", err)
	}
	return nil
}
