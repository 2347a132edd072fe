package export

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/klearrshipping/cudabot/internal/classify"
	"github.com/klearrshipping/cudabot/internal/entity"
	"github.com/klearrshipping/cudabot/internal/repository"
)

const sheet = "Field Results"

var headers = []string{
	"Box",
	"Code",
	"Label",
	"Confidence",
	"Matched Rule",
	"Fallback Used",
	"Signal Origin",
	"Raw Signal",
	"Reason",
}

// Service produces XLSX audit workbooks of classified field results. The
// workbook is for operator review only; the declaration form consumes codes
// through the pipeline, never through this export.
type Service struct {
	orders  repository.OrderRepository
	results repository.FieldResultRepository
	logger  *slog.Logger
}

func NewService(orders repository.OrderRepository, results repository.FieldResultRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{orders: orders, results: results, logger: logger}
}

// ExportOrderXLSX returns an XLSX workbook (as bytes) with the stored field
// results for the given order reference.
func (s *Service) ExportOrderXLSX(ctx context.Context, reference string) ([]byte, error) {
	start := time.Now()

	order, err := s.orders.GetByReference(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("load order: %w", err)
	}
	results, err := s.results.ListByOrder(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("query field results: %w", err)
	}

	rows := make([][]any, 0, len(results))
	for _, r := range results {
		rows = append(rows, resultRow(r))
	}

	out, err := buildWorkbook(rows)
	if err != nil {
		return nil, err
	}
	s.logger.Info("export.xlsx.ok",
		"reference", reference, "rows", len(rows),
		"bytes", len(out), "elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}

// RecordsXLSX builds the same workbook directly from in-memory diagnostic
// records, for callers without a database (CLI one-shots).
func RecordsXLSX(records []classify.DiagnosticRecord) ([]byte, error) {
	rows := make([][]any, 0, len(records))
	for _, rec := range records {
		rows = append(rows, recordRow(rec))
	}
	return buildWorkbook(rows)
}

func buildWorkbook(rows [][]any) ([]byte, error) {
	f := excelize.NewFile()
	if _, err := f.NewSheet(sheet); err != nil {
		return nil, err
	}
	if idx, err := f.GetSheetIndex(sheet); err == nil {
		f.SetActiveSheet(idx)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}
	for rowIdx, row := range rows {
		for colIdx, v := range row {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func resultRow(r *entity.FieldResult) []any {
	rule, reason := "", ""
	if r.MatchedRule != nil {
		rule = *r.MatchedRule
	}
	if r.Reason != nil {
		reason = *r.Reason
	}
	return []any{r.Box, r.Code, r.Label, r.Confidence, rule, r.FallbackUsed, r.SignalOrigin, r.Signal, reason}
}

func recordRow(rec classify.DiagnosticRecord) []any {
	return []any{rec.Box, rec.Code, rec.Label, rec.Confidence, rec.MatchedRule, rec.FallbackUsed, rec.SignalOrigin, rec.Signal, rec.Reason}
}
