package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"electroledger/internal/auth"
	"electroledger/internal/config"
	"electroledger/internal/export"
	"electroledger/internal/logger"
	"electroledger/internal/repository"
	"electroledger/internal/store"
	"electroledger/internal/validation"
	"electroledger/pkg/models"
)

var version = "1.0.0"

// standalone marks commands that run without the store or a session.
const standalone = "standalone"

var (
	cfg        = config.Default()
	jsonOutput bool

	// Set by openBooks for the duration of one command.
	ledgerStore *store.Store
	books       *repository.Books
	migrated    []string
)

var errNotFound = errors.New("not found")

var rootCmd = &cobra.Command{
	Use:   "electroledger",
	Short: "Customer, purchase and wage book for an electrical supplies shop",
	Long: `electroledger keeps the books of an electrical supplies shop: customers and
their advances, purchases made on their behalf and who paid for them,
employee work days and wages, and shop expenses.

Data is kept in DATA_DIR using the STORE_BACKEND backend (file, sqlite or
memory). Business commands require a session opened with "electroledger login".`,
	Version:            version,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  openBooks,
	PersistentPostRunE: closeBooks,
}

// Execute runs the command line with c as configuration and exits non-zero
// on failure.
func Execute(c *config.Config) {
	log := logger.WithComponent("cmd")

	if c != nil {
		cfg = c
	}
	err := rootCmd.ExecuteContext(context.Background())
	if cerr := closeBooks(rootCmd, nil); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintln(os.Stderr, userMessage(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print results as JSON")
}

func isStandalone(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd:
			return true
		}
		if c.Annotations[standalone] == "true" {
			return true
		}
	}
	return false
}

func sessions() *auth.Manager {
	return auth.NewManager(auth.Credentials{
		Username:     cfg.LedgerUsername,
		PasswordHash: cfg.LedgerPassHash,
	}, cfg.SessionFile)
}

// openBooks checks the session, opens the store, brings its schema up to
// date and seeds the default employees.
func openBooks(cmd *cobra.Command, args []string) error {
	if isStandalone(cmd) {
		return nil
	}
	log := logger.WithComponent("root")
	ctx := cmd.Context()

	if _, err := sessions().Require(); err != nil {
		return err
	}

	s, err := store.Open(store.Options{Backend: cfg.StoreBackend, Dir: cfg.DataDir})
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	ledgerStore = s

	if migrated, err = s.Migrate(ctx, store.Migrations); err != nil {
		return fmt.Errorf("failed to upgrade stored data: %w", err)
	}

	books = repository.New(s)
	if cfg.SeedDefaultEmployees {
		wage, err := models.ParseAmount(cfg.DefaultDailyWage)
		if err != nil {
			return fmt.Errorf("DEFAULT_DAILY_WAGE: %w", err)
		}
		if _, err := books.SeedDefaultEmployees(ctx, repository.DefaultEmployees, wage); err != nil {
			return err
		}
	}

	log.Debug().
		Str("backend", cfg.StoreBackend).
		Str("data_dir", cfg.DataDir).
		Strs("migrations", migrated).
		Msg("Books opened")
	return nil
}

func closeBooks(cmd *cobra.Command, args []string) error {
	if ledgerStore == nil {
		return nil
	}
	err := ledgerStore.Close()
	ledgerStore, books = nil, nil
	return err
}

func notFound(kind string, id models.ID) error {
	return fmt.Errorf("%s %s: %w", kind, id, errNotFound)
}

// userMessage is the Arabic text shown for err.
func userMessage(err error) string {
	switch {
	case errors.Is(err, validation.ErrInvalid):
		return strings.Join(validation.ArabicMessages(err), "\n")
	case errors.Is(err, repository.ErrInvalidAmount), errors.Is(err, models.ErrInvalidAmount):
		return "يرجى إدخال مبلغ صحيح أكبر من صفر"
	case errors.Is(err, models.ErrInvalidDate):
		return "يرجى إدخال التاريخ بصيغة يوم/شهر/سنة"
	case errors.Is(err, repository.ErrNegativeDays):
		return "يرجى إدخال عدد أيام صحيح"
	case errors.Is(err, errNotFound):
		return "العنصر المطلوب غير موجود"
	case errors.Is(err, export.ErrNoPurchases):
		return "لا توجد مشتريات لهذا الزبون"
	case errors.Is(err, auth.ErrNotAuthenticated):
		return "يرجى تسجيل الدخول أولاً: electroledger login"
	case errors.Is(err, auth.ErrInvalidCredentials):
		return "اسم المستخدم أو كلمة المرور غير صحيحة"
	case errors.Is(err, auth.ErrNoCredentials):
		return "لم يتم ضبط كلمة المرور. استعمل electroledger hash-password ثم LEDGER_PASSWORD_HASH"
	case errors.Is(err, store.ErrStorage):
		return "حدث خطأ أثناء حفظ البيانات. يرجى المحاولة مرة أخرى."
	}
	return fmt.Sprintf("Error: %v", err)
}
