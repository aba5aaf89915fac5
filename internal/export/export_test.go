package export

import (
	"bytes"
	"errors"
	"io/fs"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"electroledger/pkg/models"
)

var invoiceDate = time.Date(2024, time.June, 15, 9, 0, 0, 0, time.UTC)

func sampleInvoice() Invoice {
	return Invoice{
		Customer: models.Customer{ID: "3", Name: "Ahmed", Phone: "0555000000", Advance: decimal.NewFromInt(500)},
		Purchases: []models.Purchase{
			{ID: "1", ClientID: "3", ItemName: "كابل 2.5 مم", Quantity: 2, Price: decimal.NewFromInt(150), StoreName: "S1", Date: "01/06/2024", PaymentStatus: models.PaidByIssam},
			{ID: "2", ClientID: "3", ItemName: "قاطع", Quantity: 1, Price: decimal.NewFromInt(1200), StoreName: "S2", Date: "02/06/2024", PaymentStatus: models.PaidByCustomer},
			{ID: "3", ClientID: "3", ItemName: "مفتاح", Quantity: 0, Price: decimal.NewFromInt(400), StoreName: "S1", Date: "03/06/2024", PaymentStatus: models.OnCredit},
		},
		Date: invoiceDate,
	}
}

func TestInvoiceLines(t *testing.T) {
	lines := sampleInvoice().Lines()
	if len(lines) != 3 {
		t.Fatalf("Lines = %d, want 3", len(lines))
	}
	first := lines[0]
	if first.Product != "Câble 2.5 mm" || first.PaidBy != "Issam" || !first.Total.Equal(decimal.NewFromInt(300)) {
		t.Errorf("first line = %+v", first)
	}
	if lines[2].Quantity != 1 || lines[2].PaidBy != "Crédit" {
		t.Errorf("zero-quantity line = %+v", lines[2])
	}
	if lines[1].PaidBy != "Client" {
		t.Errorf("PaidBy = %q, want Client", lines[1].PaidBy)
	}
}

func TestInvoiceFilename(t *testing.T) {
	inv := sampleInvoice()
	inv.Customer.Name = "Ahmed B/2"
	if got, want := inv.Filename("xlsx"), "Facture_Ahmed_B-2_15-06-2024.xlsx"; got != want {
		t.Errorf("Filename = %q, want %q", got, want)
	}
}

func TestWriteExcel(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteExcel(&buf, sampleInvoice()); err != nil {
		t.Fatalf("WriteExcel: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()

	checks := map[string]string{
		"A1":  "Facture Issam Électrique",
		"A2":  "Client: Ahmed",
		"A3":  "Date: 15/06/2024",
		"A6":  "Produit",
		"F6":  "Payé par",
		"A7":  "Câble 2.5 mm",
		"B7":  "2",
		"D7":  "300",
		"F7":  "Issam",
		"A8":  "Disjoncteur",
		"A11": "Total général:",
		"D11": "1900",
		"A12": "Payé par Issam:",
		"D12": "300",
		"A13": "Crédit:",
		"D13": "400",
		"A14": "Signature:",
		"A17": "Merci pour votre confiance",
	}
	for cell, want := range checks {
		got, err := f.GetCellValue(excelSheet, cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s): %v", cell, err)
		}
		if got != want {
			t.Errorf("%s = %q, want %q", cell, got, want)
		}
	}
}

func TestExportsRejectEmptyInvoice(t *testing.T) {
	inv := sampleInvoice()
	inv.Purchases = nil

	if err := WriteExcel(&bytes.Buffer{}, inv); !errors.Is(err, ErrNoPurchases) {
		t.Errorf("WriteExcel error = %v, want ErrNoPurchases", err)
	}
	if err := WritePDF(&bytes.Buffer{}, inv); !errors.Is(err, ErrNoPurchases) {
		t.Errorf("WritePDF error = %v, want ErrNoPurchases", err)
	}
}

func TestWritePDF(t *testing.T) {
	inv := sampleInvoice()
	at := invoiceDate.Add(-time.Hour)
	inv.Customer.AdvanceDate = &at

	var buf bytes.Buffer
	if err := WritePDF(&buf, inv); err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header: %q", buf.Bytes()[:min(8, buf.Len())])
	}
}

func TestWritePDFFontFile(t *testing.T) {
	inv := sampleInvoice()
	inv.Customer.Name = "أحمد"
	inv.FontFile = filepath.Join(t.TempDir(), "missing.ttf")

	var buf bytes.Buffer
	if err := WritePDF(&buf, inv); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("WritePDF with missing font = %v, want fs.ErrNotExist", err)
	}
	if buf.Len() != 0 {
		t.Errorf("WritePDF wrote %d bytes before failing", buf.Len())
	}
}

func TestFrenchAmount(t *testing.T) {
	tests := map[string]string{
		"35000":     "35 000 DA",
		"1234567.5": "1 234 567,50 DA",
		"0":         "0 DA",
		"-1500":     "-1 500 DA",
	}
	for in, want := range tests {
		if got := frenchAmount(decimal.RequireFromString(in)); got != want {
			t.Errorf("frenchAmount(%s) = %q, want %q", in, got, want)
		}
	}
}

func TestWhatsAppMessage(t *testing.T) {
	inv := sampleInvoice()
	inv.Customer.Notes = "زبون دائم"
	got := WhatsAppMessage(inv.Customer, inv.Purchases)

	want := strings.Join([]string{
		"الزبون: Ahmed",
		"الهاتف: 0555000000",
		"ملاحظات: زبون دائم",
		"",
		"المشتريات:",
		"1. كابل 2.5 مم x2 - 150 DA (S1) (مدفوع من طرف عصام)",
		"2. قاطع x1 - 1200 DA (S2)",
		"3. مفتاح x1 - 400 DA (S1) (كريدي)",
		"",
		"المجموع: 1900 DA",
		"مدفوع من طرف عصام: 300 DA",
		"كريدي: 400 DA",
		"التسبيق: 500 DA",
	}, "\n")
	if got != want {
		t.Errorf("WhatsAppMessage =\n%s\nwant\n%s", got, want)
	}
}

func TestWhatsAppMessageWithoutPurchases(t *testing.T) {
	got := WhatsAppMessage(models.Customer{}, nil)
	want := "الزبون: -\n\nالمشتريات:\n\nالمجموع: 0 DA"
	if got != want {
		t.Errorf("WhatsAppMessage = %q, want %q", got, want)
	}
}

func TestWhatsAppNumber(t *testing.T) {
	tests := []struct {
		phone, region, want string
	}{
		{"0555000000", "DZ", "213555000000"},
		{"0555 00 00 00", "", "213555000000"},
		{"+213 555 00 00 00", "DZ", "213555000000"},
		{"", "DZ", ""},
		{"n/a", "DZ", ""},
	}
	for _, tt := range tests {
		if got := WhatsAppNumber(tt.phone, tt.region); got != tt.want {
			t.Errorf("WhatsAppNumber(%q, %q) = %q, want %q", tt.phone, tt.region, got, tt.want)
		}
	}
}

func TestWhatsAppLink(t *testing.T) {
	link := WhatsAppLink("0555000000", "DZ", "الزبون: A & B")
	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("url.Parse: %v", err)
	}
	if u.Host != "wa.me" || u.Path != "/213555000000" {
		t.Errorf("link = %s", link)
	}
	if got := u.Query().Get("text"); got != "الزبون: A & B" {
		t.Errorf("text = %q", got)
	}
	if strings.Contains(link, "+") {
		t.Errorf("link %s encodes spaces as +", link)
	}

	if got := WhatsAppLink("", "DZ", "hi"); got != "https://wa.me/?text=hi" {
		t.Errorf("link without phone = %s", got)
	}
}
