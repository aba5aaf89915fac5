package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/crypto/bcrypt"

	"electroledger/internal/auth"
	"electroledger/internal/config"
	"electroledger/internal/export"
	"electroledger/internal/repository"
	"electroledger/internal/store"
	"electroledger/internal/validation"
)

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	hash, err := auth.HashPassword("s3cret", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	dir := t.TempDir()
	c := config.Default()
	c.DataDir = dir
	c.SessionFile = filepath.Join(dir, "session.json")
	c.LedgerPassHash = hash
	return c
}

func execute(t *testing.T, c *config.Config, stdin string, args ...string) (string, error) {
	t.Helper()
	cfg = c
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	if cerr := closeBooks(rootCmd, nil); cerr != nil && err == nil {
		err = cerr
	}
	return out.String(), err
}

func mustRun(t *testing.T, c *config.Config, args ...string) string {
	t.Helper()
	out, err := execute(t, c, "", args...)
	if err != nil {
		t.Fatalf("electroledger %s: %v\n%s", strings.Join(args, " "), err, out)
	}
	return out
}

func TestCommandsRequireLogin(t *testing.T) {
	c := testConfig(t)

	if _, err := execute(t, c, "", "customer", "list"); !errors.Is(err, auth.ErrNotAuthenticated) {
		t.Fatalf("customer list before login = %v, want ErrNotAuthenticated", err)
	}
	if _, err := execute(t, c, "wrong\n", "login"); !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Fatalf("login with wrong password = %v", err)
	}
	mustRun(t, c, "login", "--password", "s3cret")
	mustRun(t, c, "customer", "list")
	mustRun(t, c, "logout")
	if _, err := execute(t, c, "", "customer", "list"); !errors.Is(err, auth.ErrNotAuthenticated) {
		t.Errorf("customer list after logout = %v", err)
	}
}

func TestLoginReadsPasswordFromStdin(t *testing.T) {
	c := testConfig(t)
	if _, err := execute(t, c, "s3cret\n", "login"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := os.Stat(c.SessionFile); err != nil {
		t.Errorf("session file: %v", err)
	}
}

func TestCustomerPurchaseFlow(t *testing.T) {
	c := testConfig(t)
	mustRun(t, c, "login", "--password", "s3cret")

	mustRun(t, c, "customer", "add", "--name", "Ahmed", "--phone", "0555000000")
	mustRun(t, c, "purchase", "add", "--customer", "1", "--item", "كابل 2.5 مم", "--qty", "2",
		"--price", "150", "--paid-by", "issam", "--date", "01/06/2024")
	mustRun(t, c, "purchase", "add", "--customer", "1", "--item", "قاطع", "--price", "1,200 DA",
		"--date", "02/06/2024")
	mustRun(t, c, "customer", "advance", "1", "500")

	out := mustRun(t, c, "customer", "list")
	if !strings.Contains(out, "Ahmed") || !strings.Contains(out, "1,500 DA") {
		t.Errorf("customer list output missing totals:\n%s", out)
	}

	if _, err := execute(t, c, "", "purchase", "add", "--customer", "9", "--item", "x", "--price", "1"); !errors.Is(err, errNotFound) {
		t.Errorf("purchase for unknown customer = %v, want errNotFound", err)
	}
	if _, err := execute(t, c, "", "purchase", "add", "--customer", "1", "--price", "1"); !errors.Is(err, validation.ErrInvalid) {
		t.Errorf("purchase without item = %v, want validation error", err)
	}

	out = mustRun(t, c, "report", "customer", "1", "--json")
	var st struct {
		Total     decimal.Decimal `json:"total"`
		Unpaid    decimal.Decimal `json:"unpaid"`
		Remaining decimal.Decimal `json:"remaining"`
	}
	if err := json.Unmarshal([]byte(out), &st); err != nil {
		t.Fatalf("decode statement: %v\n%s", err, out)
	}
	if !st.Total.Equal(decimal.NewFromInt(1500)) || !st.Unpaid.Equal(decimal.NewFromInt(1200)) || !st.Remaining.Equal(decimal.NewFromInt(-200)) {
		t.Errorf("statement = %+v", st)
	}

	out = mustRun(t, c, "export", "whatsapp", "1")
	if !strings.Contains(out, "https://wa.me/213555000000?text=") {
		t.Errorf("whatsapp output missing link:\n%s", out)
	}

	exports := filepath.Join(c.DataDir, "out")
	if err := os.MkdirAll(exports, 0o750); err != nil {
		t.Fatal(err)
	}
	mustRun(t, c, "export", "excel", "1", "--out", exports)
	mustRun(t, c, "export", "pdf", "1", "--out", exports)
	entries, err := os.ReadDir(exports)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("exports = %d files, want 2", len(entries))
	}

	mustRun(t, c, "customer", "remove", "1", "--cascade")
	if _, err := execute(t, c, "", "export", "excel", "1"); !errors.Is(err, errNotFound) {
		t.Errorf("export for removed customer = %v", err)
	}
}

func TestEmployeeCommandsAndSeeding(t *testing.T) {
	c := testConfig(t)
	mustRun(t, c, "login", "--password", "s3cret")

	out := mustRun(t, c, "employee", "list")
	for _, name := range []string{"عبد الرحيم", "محفوظ", "عمران"} {
		if !strings.Contains(out, name) {
			t.Errorf("seeded employee %s missing:\n%s", name, out)
		}
	}

	mustRun(t, c, "employee", "days", "1", "5")
	out = mustRun(t, c, "employee", "pay", "1")
	if !strings.Contains(out, "0 DA") {
		t.Errorf("pay output = %q, want salary reset", out)
	}
	if _, err := execute(t, c, "", "employee", "days", "--", "1", "-1"); !errors.Is(err, repository.ErrNegativeDays) {
		t.Errorf("negative days = %v, want ErrNegativeDays", err)
	}
}

func TestMigrateCommand(t *testing.T) {
	c := testConfig(t)
	mustRun(t, c, "login", "--password", "s3cret")

	raw := `[{"id":1,"client_id":2,"item_name":"Fil","quantity":1,"price":10,"date":"01/06/2024","paidByIssam":true}]`
	if err := os.WriteFile(filepath.Join(c.DataDir, string(store.KeyPurchases)+".json"), []byte(raw), 0o640); err != nil {
		t.Fatal(err)
	}

	out := mustRun(t, c, "migrate")
	if !strings.Contains(out, "payment-status") {
		t.Errorf("migrate output = %q", out)
	}
	out = mustRun(t, c, "purchase", "list", "--customer", "2")
	if !strings.Contains(out, "Fil") || !strings.Contains(out, payerLabel("issam")) {
		t.Errorf("migrated purchase missing:\n%s", out)
	}
	out = mustRun(t, c, "migrate")
	if !strings.Contains(out, fmt.Sprint(store.Migrations[len(store.Migrations)-1].Version)) {
		t.Errorf("second migrate output = %q", out)
	}
}

func TestHashPasswordCommand(t *testing.T) {
	c := testConfig(t)
	out, err := execute(t, c, "", "hash-password", "pw", "--cost", fmt.Sprint(bcrypt.MinCost))
	if err != nil {
		t.Fatalf("hash-password: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(strings.TrimSpace(out)), []byte("pw")); err != nil {
		t.Errorf("printed hash does not verify: %v", err)
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{validation.Errors{{Field: "NewCustomer.Name", Tag: "required"}}, "يرجى إدخال اسم الزبون"},
		{fmt.Errorf("wrap: %w", export.ErrNoPurchases), "لا توجد مشتريات لهذا الزبون"},
		{notFound("customer", "7"), "العنصر المطلوب غير موجود"},
		{auth.ErrNotAuthenticated, "يرجى تسجيل الدخول أولاً: electroledger login"},
		{&store.Error{Op: "Write", Key: store.KeyCustomers, Err: errors.New("disk full")}, "حدث خطأ أثناء حفظ البيانات. يرجى المحاولة مرة أخرى."},
		{errors.New("boom"), "Error: boom"},
	}
	for _, tt := range tests {
		if got := userMessage(tt.err); got != tt.want {
			t.Errorf("userMessage(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
