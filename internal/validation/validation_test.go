package validation

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"electroledger/pkg/models"
)

func TestStructAcceptsValidInput(t *testing.T) {
	inputs := []interface{}{
		models.NewCustomer{Name: "Ahmed", Phone: "0555000000"},
		models.NewPurchase{ClientID: "3", ItemName: "كابل 2.5 مم", Quantity: 2, Price: decimal.NewFromInt(150), Date: "01/06/2024", PaymentStatus: models.PaidByIssam},
		models.NewPurchase{ClientID: "3", ItemName: "قاطع", Price: decimal.RequireFromString("0.5")},
		models.NewEmployee{Name: "عمران", DailyWage: decimal.NewFromInt(2000)},
		models.NewExpense{Title: "كراء", Amount: decimal.NewFromInt(15000), Date: "1/7/2024"},
		models.PurchasePatch{},
	}
	for _, in := range inputs {
		if err := Struct(in); err != nil {
			t.Errorf("Struct(%T) = %v, want nil", in, err)
		}
	}
}

func TestStructRejectsInvalidInput(t *testing.T) {
	negative := decimal.NewFromInt(-1)
	one := decimal.NewFromInt(1)
	zero := 0
	badStatus := models.PaymentStatus("cash")
	badDate := "2024-06-01"

	tests := []struct {
		name  string
		in    interface{}
		field string
		tag   string
	}{
		{"missing name", models.NewCustomer{}, "NewCustomer.Name", "required"},
		{"negative advance", models.NewCustomer{Name: "a", Advance: negative}, "NewCustomer.Advance", "gte"},
		{"negative price", models.NewPurchase{ClientID: "1", ItemName: "x", Price: negative}, "NewPurchase.Price", "gt"},
		{"zero price", models.NewPurchase{ClientID: "1", ItemName: "x", Price: decimal.Zero}, "NewPurchase.Price", "gt"},
		{"unknown status", models.NewPurchase{ClientID: "1", ItemName: "x", Price: one, PaymentStatus: "cash"}, "NewPurchase.PaymentStatus", "oneof"},
		{"bad date", models.NewPurchase{ClientID: "1", ItemName: "x", Price: one, Date: "2024-06-01"}, "NewPurchase.Date", "ddmmyyyy"},
		{"patch zero quantity", models.PurchasePatch{Quantity: &zero}, "PurchasePatch.Quantity", "min"},
		{"patch negative price", models.PurchasePatch{Price: &negative}, "PurchasePatch.Price", "gt"},
		{"patch status", models.PurchasePatch{PaymentStatus: &badStatus}, "PurchasePatch.PaymentStatus", "oneof"},
		{"patch date", models.ExpensePatch{Date: &badDate}, "ExpensePatch.Date", "ddmmyyyy"},
		{"negative wage", models.NewEmployee{Name: "a", DailyWage: negative}, "NewEmployee.DailyWage", "gte"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.in)
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("Struct error = %v, want ErrInvalid", err)
			}
			var es Errors
			if !errors.As(err, &es) || len(es) == 0 {
				t.Fatalf("error %v is not Errors", err)
			}
			if es[0].Field != tt.field || es[0].Tag != tt.tag {
				t.Errorf("got %s/%s, want %s/%s", es[0].Field, es[0].Tag, tt.field, tt.tag)
			}
		})
	}
}

func TestRequired(t *testing.T) {
	blank := "  "
	name := "Karim"
	if err := Required("CustomerPatch.Name", nil); err != nil {
		t.Errorf("nil value: %v", err)
	}
	if err := Required("CustomerPatch.Name", &name); err != nil {
		t.Errorf("set value: %v", err)
	}
	if err := Required("CustomerPatch.Name", &blank); !errors.Is(err, ErrInvalid) {
		t.Errorf("blank value: %v", err)
	}
}

func TestPositive(t *testing.T) {
	zero := decimal.Zero
	negative := decimal.NewFromInt(-5)
	price := decimal.NewFromInt(150)
	if err := Positive("PurchasePatch.Price", nil); err != nil {
		t.Errorf("nil value: %v", err)
	}
	if err := Positive("PurchasePatch.Price", &price); err != nil {
		t.Errorf("positive value: %v", err)
	}
	for _, v := range []*decimal.Decimal{&zero, &negative} {
		err := Positive("PurchasePatch.Price", v)
		if !errors.Is(err, ErrInvalid) {
			t.Errorf("Positive(%s) = %v, want ErrInvalid", v, err)
		}
		if msgs := ArabicMessages(err); len(msgs) != 1 || msgs[0] != "يرجى إدخال سعر صحيح" {
			t.Errorf("ArabicMessages(Positive(%s)) = %v", v, msgs)
		}
	}
}

func TestArabicMessages(t *testing.T) {
	err := Struct(models.NewCustomer{})
	msgs := ArabicMessages(err)
	if len(msgs) != 1 || msgs[0] != "يرجى إدخال اسم الزبون" {
		t.Errorf("ArabicMessages = %v", msgs)
	}
	if got := ArabicMessages(errors.New("boom")); len(got) != 1 || got[0] != GenericMessage {
		t.Errorf("ArabicMessages(plain) = %v", got)
	}
}
