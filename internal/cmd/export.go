package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/klearrshipping/cudabot/internal/common"
	"github.com/klearrshipping/cudabot/internal/export"
	"github.com/klearrshipping/cudabot/internal/repository"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export <reference>",
	Short: "Export an order's persisted field results as XLSX",
	Long: `Export fetches the field results the daemon stored for an order and
writes them to an XLSX workbook. DB_URL must point at the database the
daemon writes to.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output path (default <reference>.xlsx)")
}

func runExport(cmd *cobra.Command, args []string) error {
	reference := args[0]
	out := exportOut
	if out == "" {
		out = reference + ".xlsx"
	}

	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		return fmt.Errorf("DB_URL is required for export")
	}

	logger := cliLogger()
	ctx := cmd.Context()
	pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         2,
		MinConns:         1,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer repository.Close(pool, logger)

	svc := export.NewService(
		repository.NewOrderRepository(pool, logger),
		repository.NewFieldResultRepository(pool, logger),
		logger,
	)
	data, err := svc.ExportOrderXLSX(ctx, reference)
	if err != nil {
		return fmt.Errorf("exporting %s: %w", reference, err)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	fmt.Printf("wrote %s\n", out)
	return nil
}
