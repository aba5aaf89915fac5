package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"electroledger/internal/store"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Upgrade stored data to the current schema",
	Long: `Upgrade stored data to the current schema.

Every command upgrades the data before it runs; this command does only that
and reports which migrations ran and the resulting schema version.`,
	Args: cobra.NoArgs,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	v, err := ledgerStore.SchemaVersion(cmd.Context())
	if err != nil {
		return err
	}
	latest := store.Migrations[len(store.Migrations)-1].Version

	result := map[string]interface{}{"version": v, "latest": latest, "applied": migrated}
	if len(migrated) == 0 {
		return done(cmd, result, "البيانات محدثة (الإصدار %d)", v)
	}
	return done(cmd, result, "تم تحديث البيانات إلى الإصدار %d: %s", v, strings.Join(migrated, ", "))
}
