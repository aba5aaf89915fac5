package validation

import "errors"

// GenericMessage is shown when no field-specific message exists.
const GenericMessage = "البيانات المدخلة غير صحيحة. يرجى التحقق والمحاولة مرة أخرى."

var fieldMessages = map[string]string{
	"NewCustomer.Name":            "يرجى إدخال اسم الزبون",
	"CustomerPatch.Name":          "يرجى إدخال اسم الزبون",
	"NewCustomer.Advance":         "يرجى إدخال مبلغ تسبيق صحيح",
	"CustomerPatch.Advance":       "يرجى إدخال مبلغ تسبيق صحيح",
	"NewCustomer.Phone":           "رقم الهاتف غير صحيح",
	"CustomerPatch.Phone":         "رقم الهاتف غير صحيح",
	"NewPurchase.ClientID":        "يرجى اختيار زبون",
	"NewPurchase.ItemName":        "يرجى إدخال اسم السلعة",
	"PurchasePatch.ItemName":      "يرجى إدخال اسم السلعة",
	"NewPurchase.Quantity":        "يرجى إدخال كمية صحيحة",
	"PurchasePatch.Quantity":      "يرجى إدخال كمية صحيحة",
	"NewPurchase.Price":           "يرجى إدخال سعر صحيح",
	"PurchasePatch.Price":         "يرجى إدخال سعر صحيح",
	"NewPurchase.Date":            "يرجى إدخال التاريخ بصيغة يوم/شهر/سنة",
	"PurchasePatch.Date":          "يرجى إدخال التاريخ بصيغة يوم/شهر/سنة",
	"NewPurchase.PaymentStatus":   "طريقة الدفع غير معروفة",
	"PurchasePatch.PaymentStatus": "طريقة الدفع غير معروفة",
	"NewEmployee.Name":            "يرجى إدخال اسم العامل",
	"EmployeePatch.Name":          "يرجى إدخال اسم العامل",
	"NewEmployee.DailyWage":       "يرجى إدخال أجر يومي صحيح",
	"EmployeePatch.DailyWage":     "يرجى إدخال أجر يومي صحيح",
	"EmployeePatch.WorkDays":      "يرجى إدخال عدد أيام صحيح",
	"NewExpense.Title":            "يرجى إدخال عنوان المصروف",
	"ExpensePatch.Title":          "يرجى إدخال عنوان المصروف",
	"NewExpense.Amount":           "يرجى إدخال مبلغ صحيح",
	"ExpensePatch.Amount":         "يرجى إدخال مبلغ صحيح",
	"NewExpense.Date":             "يرجى إدخال التاريخ بصيغة يوم/شهر/سنة",
	"ExpensePatch.Date":           "يرجى إدخال التاريخ بصيغة يوم/شهر/سنة",
}

// ArabicMessages returns the user-facing message for each rejected field in
// err, or the generic message when err carries no field detail.
func ArabicMessages(err error) []string {
	var es Errors
	if !errors.As(err, &es) {
		var e *Error
		if !errors.As(err, &e) {
			return []string{GenericMessage}
		}
		es = Errors{e}
	}
	out := make([]string, 0, len(es))
	seen := map[string]bool{}
	for _, e := range es {
		msg, ok := fieldMessages[e.Field]
		if !ok {
			msg = GenericMessage
		}
		if !seen[msg] {
			seen[msg] = true
			out = append(out, msg)
		}
	}
	return out
}
