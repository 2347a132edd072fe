package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/klearrshipping/cudabot/internal/common"
	"github.com/klearrshipping/cudabot/internal/extract"
	"github.com/klearrshipping/cudabot/internal/pipeline"
)

// OrderFile is the JSON payload dropped into the watch directory by upstream
// document collaborators. Fields holds pre-extracted fragments; Text is used
// when only raw document text is available.
type OrderFile struct {
	Reference    string            `json:"reference"`
	DocumentType string            `json:"document_type,omitempty"`
	Fields       map[string]string `json:"fields,omitempty"`
	Text         string            `json:"text,omitempty"`
}

// ReadOrderFile decodes one dropped order file. The reference defaults to the
// file name when the payload omits it.
func ReadOrderFile(path string) (*OrderFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read order file: %w", err)
	}
	var of OrderFile
	if err := json.Unmarshal(raw, &of); err != nil {
		return nil, fmt.Errorf("decode order file %s: %w", path, err)
	}
	if strings.TrimSpace(of.Reference) == "" {
		base := filepath.Base(path)
		of.Reference = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return &of, nil
}

// ProcessPath pushes one dropped order file through the pipeline.
func ProcessPath(ctx context.Context, path string, p *pipeline.Pipeline, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	of, err := ReadOrderFile(path)
	if err != nil {
		return err
	}
	ctx = common.WithOrderID(ctx, of.Reference)
	ctx = common.WithRequestID(ctx, uuid.New().String())

	var summary *pipeline.Summary
	if len(of.Fields) == 0 && of.Text != "" {
		summary, err = p.ProcessDocumentText(ctx, of.Reference, of.DocumentType, of.Text)
	} else {
		doc := extract.DocumentData{Fields: of.Fields, Text: of.Text}
		summary, err = p.ProcessOrder(ctx, of.Reference, doc)
	}
	if err != nil {
		return fmt.Errorf("process order %s: %w", of.Reference, err)
	}

	logger.Info("ingest.order.ok",
		"path", path, "reference", of.Reference,
		"order_id", summary.OrderID, "needs_review", summary.NeedsReview,
	)
	return nil
}

// Run consumes watcher events serially. A file that fails to decode or
// persist is logged and skipped; the loop only stops with the context.
func Run(ctx context.Context, events <-chan string, p *pipeline.Pipeline, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	for {
		select {
		case <-ctx.Done():
			return
		case path, ok := <-events:
			if !ok {
				return
			}
			if err := ProcessPath(ctx, path, p, logger); err != nil {
				logger.Error("ingest.order.failed", "path", path, "error", err)
			}
		}
	}
}
