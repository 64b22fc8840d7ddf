package cmd

import (
	"context"
	"fmt"
	"os"

	"grimoire/core/config"
	"grimoire/core/database"
	"grimoire/core/logger"
	"grimoire/core/storage"
	"grimoire/feature/integrity"
	"grimoire/feature/integrity/checks"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the dataset bucket and the database schema",
	Long:  `Reports dataset objects missing from the bucket and word tables that drift from the expected schema.`,
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), true, true)
	},
}

// datasetsCmd represents the integrity datasets command
var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "Check and fix dataset objects in the bucket",
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), true, false)
	},
}

// schemaCmd represents the integrity schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the word tables against the expected schema",
	Run: func(cmd *cobra.Command, args []string) {
		runIntegrityChecks(cmd.Context(), false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(datasetsCmd, schemaCmd)

	datasetsCmd.Flags().BoolVar(&fixFlag, "fix", false, "Upload the embedded defaults for missing datasets")
}

func runIntegrityChecks(ctx context.Context, runDatasets, runSchema bool) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logg.Sync()

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		logg.Fatal("Failed to create storage client", zap.Error(err))
	}

	// The schema check is skipped without a database.
	var db *gorm.DB
	if conn, err := database.Connect(cfg.Database); err != nil {
		logg.Warn("Optional database connection failed", zap.Error(err))
	} else {
		db = conn
	}

	svc := integrity.NewService(client, cfg.Storage.Bucket, logg, db)

	if runDatasets {
		checkDatasets(ctx, svc, logg, cfg.Storage.Bucket)
	}
	if runSchema {
		checkSchema(svc, logg)
	}
}

func checkDatasets(ctx context.Context, svc *integrity.Service, logg *zap.Logger, bucket string) {
	logg.Info("Checking dataset objects...", zap.String("bucket", bucket))
	missing, err := svc.CheckDatasets(ctx)
	if err != nil {
		logg.Fatal("Dataset check failed", zap.Error(err))
	}

	if len(missing) == 0 {
		logg.Info("All datasets are present.")
		return
	}
	logg.Warn("Missing datasets detected, the embedded defaults are in use", zap.Strings("missing", missing))

	if !fixFlag {
		logg.Info("Run 'integrity datasets --fix' to upload the embedded defaults.")
		return
	}
	logg.Info("Uploading embedded datasets...")
	if err := svc.FixDatasets(ctx, missing); err != nil {
		logg.Fatal("Failed to fix datasets", zap.Error(err))
	}
	logg.Info("Datasets fixed successfully.")
}

func checkSchema(svc *integrity.Service, logg *zap.Logger) {
	logg.Info("Checking database schema...")
	report, err := svc.CheckSchema()
	if err != nil {
		logg.Error("Schema check failed", zap.Error(err))
		return
	}
	printSchemaReport(logg, report)
}

func printSchemaReport(logg *zap.Logger, report *checks.SchemaReport) {
	if report.Matched {
		logg.Info("Schema matches the word entities.")
		return
	}

	logg.Warn("Schema mismatches found")
	for table, tbl := range report.Tables {
		if tbl.Status == "ok" {
			continue
		}
		if tbl.Status == "missing" {
			logg.Warn("Missing table, run 'migrate'", zap.String("table", table))
			continue
		}
		if len(tbl.MissingColumns) > 0 {
			logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tbl.MissingColumns))
		}
		if len(tbl.TypeMismatches) > 0 {
			logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tbl.TypeMismatches))
		}
	}
	for _, e := range report.Errors {
		logg.Error("Inspection Error", zap.String("error", e))
	}
}
