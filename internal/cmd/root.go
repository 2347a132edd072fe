package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/klearrshipping/cudabot/internal/common"
	"github.com/klearrshipping/cudabot/internal/fields"
)

var tablesDir string

var rootCmd = &cobra.Command{
	Use:   "cudabot",
	Short: "ESAD secondary processing from the command line",
	Long: `cudabot classifies extracted shipping-document fragments into ESAD
declaration codes (transport mode, transaction type, package type, regime)
using ordered code tables. Every command that classifies guarantees a code
for every supported box, falling back to the table default when nothing
matches.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&tablesDir, "tables-dir", os.Getenv("CODE_TABLES_DIR"), "Directory with per-box code table CSV overrides")
	rootCmd.CompletionOptions.HiddenDefaultCmd = false
}

// cliLogger keeps component logs off stdout so command output stays pipeable.
func cliLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

func newRegistry() (*fields.Registry, error) {
	return fields.NewRegistry(common.TablesConfig{Dir: tablesDir}, cliLogger())
}
