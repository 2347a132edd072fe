// Package pipeline orchestrates secondary processing: every registered box
// processor runs over one order's extracted document data and the resulting
// codes and diagnostic records are persisted.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/klearrshipping/cudabot/constants"
	"github.com/klearrshipping/cudabot/internal/classify"
	"github.com/klearrshipping/cudabot/internal/entity"
	"github.com/klearrshipping/cudabot/internal/extract"
	"github.com/klearrshipping/cudabot/internal/fields"
	"github.com/klearrshipping/cudabot/internal/llm"
	"github.com/klearrshipping/cudabot/internal/repository"
)

// Config holds thresholds and behavior flags for secondary processing.
type Config struct {
	MinConfidence float64 // default 0.60; outcomes below it flag review
}

type Pipeline struct {
	Logger    *slog.Logger
	Cfg       Config
	Fields    *fields.Registry
	Orders    repository.OrderRepository
	Results   repository.FieldResultRepository
	Extractor llm.FieldExtractor // optional; only ProcessDocumentText needs it
}

func NewPipeline(
	logger *slog.Logger,
	cfg Config,
	reg *fields.Registry,
	orders repository.OrderRepository,
	results repository.FieldResultRepository,
	fe llm.FieldExtractor,
) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MinConfidence <= 0 {
		cfg.MinConfidence = 0.60
	}
	return &Pipeline{
		Logger:    logger,
		Cfg:       cfg,
		Fields:    reg,
		Orders:    orders,
		Results:   results,
		Extractor: fe,
	}
}

// Summary is the per-order outcome of secondary processing. Values holds the
// form-ready codes; Records the matching diagnostics. Both come from the same
// outcomes, so the code for a box never differs between them.
type Summary struct {
	OrderID     uuid.UUID
	Values      map[constants.Box]string
	Records     []classify.DiagnosticRecord
	NeedsReview bool
}

// ProcessOrder classifies every supported box for one order. Classification
// itself is total; only persistence can fail.
func (p *Pipeline) ProcessOrder(ctx context.Context, reference string, doc extract.DocumentData) (*Summary, error) {
	order, err := p.Orders.Create(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	if err := p.Orders.UpdateStatus(ctx, order.ID, constants.OrderStatusRunning); err != nil {
		return nil, fmt.Errorf("mark order running: %w", err)
	}

	procs := p.Fields.Processors()
	p.Logger.Info("fields.process.start",
		"order_id", order.ID, "reference", reference,
		"boxes", len(procs), "doc_empty", doc.Empty(),
	)

	summary := &Summary{
		OrderID: order.ID,
		Values:  make(map[constants.Box]string, len(procs)),
	}
	results := make([]*entity.FieldResult, 0, len(procs))

	for _, proc := range procs {
		outcome := proc.Process(doc)
		record := outcome.Record(proc.Box().String())

		summary.Values[proc.Box()] = outcome.Value()
		summary.Records = append(summary.Records, record)
		results = append(results, toFieldResult(order.ID, record))

		if outcome.FallbackUsed() || outcome.Confidence() < p.Cfg.MinConfidence {
			summary.NeedsReview = true
		}
	}

	if err := p.Results.ReplaceForOrder(ctx, order.ID, results); err != nil {
		_ = p.Orders.UpdateStatus(ctx, order.ID, constants.OrderStatusFailed)
		return nil, fmt.Errorf("persist field results: %w", err)
	}
	if err := p.Orders.UpdateStatus(ctx, order.ID, constants.OrderStatusFieldsOK); err != nil {
		return nil, fmt.Errorf("mark order done: %w", err)
	}

	p.Logger.Info("fields.process.ok",
		"order_id", order.ID, "reference", reference,
		"boxes", len(summary.Values), "needs_review", summary.NeedsReview,
	)
	return summary, nil
}

// ProcessDocumentText runs primary extraction through the LLM collaborator
// first, then classifies the extracted fragments.
func (p *Pipeline) ProcessDocumentText(ctx context.Context, reference, docType, text string) (*Summary, error) {
	if p.Extractor == nil {
		// No model configured: classify straight from the free text.
		return p.ProcessOrder(ctx, reference, extract.DocumentData{Text: text})
	}

	fieldsOut, _, err := p.Extractor.ExtractESADFields(ctx, llm.ExtractRequest{
		OrderRef:     reference,
		DocumentText: text,
		DocumentType: docType,
	})
	if err != nil {
		// Extraction failure is not fatal to classification: the pipeline
		// still produces defaults for every box from an empty document.
		p.Logger.Warn("fields.extract.failed", "reference", reference, "error", err)
		return p.ProcessOrder(ctx, reference, extract.DocumentData{})
	}
	return p.ProcessOrder(ctx, reference, fieldsOut.DocumentData())
}

func toFieldResult(orderID uuid.UUID, rec classify.DiagnosticRecord) *entity.FieldResult {
	fr := &entity.FieldResult{
		OrderID:      orderID,
		Box:          rec.Box,
		Code:         rec.Code,
		Label:        rec.Label,
		Confidence:   rec.Confidence,
		Signal:       rec.Signal,
		SignalOrigin: rec.SignalOrigin,
		FallbackUsed: rec.FallbackUsed,
	}
	if rec.MatchedRule != "" {
		rule := rec.MatchedRule
		fr.MatchedRule = &rule
	}
	if rec.Reason != "" {
		reason := rec.Reason
		fr.Reason = &reason
	}
	return fr
}
