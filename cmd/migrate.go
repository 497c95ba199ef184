package cmd

import (
	"fmt"
	"strings"

	"github.com/killallgit/featureviz-api/internal/database"
	"github.com/killallgit/featureviz-api/internal/models"
	"github.com/killallgit/featureviz-api/pkg/config"
	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Manage the schema of the results database.

Available subcommands:
  up      - Create or update the results table
  status  - Show the schema state and number of stored results`,
}

// migrateUpCmd applies pending migrations
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Create or update the results table",
	Long: `Create the results table, or add any columns it is missing.

Migrations only ever add. Existing rows are never rewritten.`,
	RunE: runMigrateUp,
}

// migrateStatusCmd shows migration status
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	Long:  `Display whether the results table exists and how many results it holds.`,
	RunE:  runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateStatusCmd)

	migrateCmd.PersistentFlags().String("db", "", "database path (overrides config)")
	migrateUpCmd.Flags().Bool("dry-run", false, "show what would be done without making changes")
}

func openDatabase(cmd *cobra.Command) (*database.DB, error) {
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, err
	}
	path := cfg.Database.Path
	if override, _ := cmd.Flags().GetString("db"); override != "" {
		path = override
	}
	return database.Initialize(path, cfg.Database.Verbose)
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
		fmt.Fprintln(out, "Dry run mode - no changes will be made")
		fmt.Fprintln(out, "Would migrate: classification_results")
		return nil
	}

	db, err := openDatabase(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	fmt.Fprintln(out, "Migrated: classification_results")
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	db, err := openDatabase(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Database Migration Status")
	fmt.Fprintln(out, strings.Repeat("=", 50))

	if !db.Migrator().HasTable(&models.ClassificationResult{}) {
		fmt.Fprintln(out, "classification_results: missing (run `featureviz migrate up`)")
		return nil
	}

	var count int64
	if err := db.WithContext(cmd.Context()).Model(&models.ClassificationResult{}).Count(&count).Error; err != nil {
		return fmt.Errorf("counting results: %w", err)
	}
	fmt.Fprintf(out, "classification_results: ready (%d stored)\n", count)
	return nil
}
