package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/klearrshipping/cudabot/internal/classify"
	"github.com/klearrshipping/cudabot/internal/export"
	"github.com/klearrshipping/cudabot/internal/extract"
	"github.com/klearrshipping/cudabot/internal/ingest"
)

var processXLSX string

var processCmd = &cobra.Command{
	Use:   "process <order.json>",
	Short: "Run an order file through every box processor",
	Long: `Process decodes an order JSON file (the same format the daemon watches
for), classifies every supported box, and prints the diagnostic records.
No database is involved; use the daemon for persisted processing.`,
	Args: cobra.ExactArgs(1),
	RunE: runProcess,
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVar(&processXLSX, "xlsx", "", "Also write the records to an XLSX workbook at this path")
}

func runProcess(cmd *cobra.Command, args []string) error {
	of, err := ingest.ReadOrderFile(args[0])
	if err != nil {
		return err
	}

	reg, err := newRegistry()
	if err != nil {
		return fmt.Errorf("loading code tables: %w", err)
	}

	doc := extract.DocumentData{Fields: of.Fields, Text: of.Text}
	var records []classify.DiagnosticRecord
	for _, proc := range reg.Processors() {
		out := proc.Process(doc)
		records = append(records, out.Record(string(proc.Box())))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(struct {
		Reference string                      `json:"reference"`
		Records   []classify.DiagnosticRecord `json:"records"`
	}{Reference: of.Reference, Records: records}); err != nil {
		return err
	}

	if processXLSX != "" {
		data, err := export.RecordsXLSX(records)
		if err != nil {
			return fmt.Errorf("building workbook: %w", err)
		}
		if err := os.WriteFile(processXLSX, data, 0o644); err != nil {
			return fmt.Errorf("writing workbook: %w", err)
		}
		fmt.Fprintf(os.Stderr, "wrote %s\n", processXLSX)
	}
	return nil
}
