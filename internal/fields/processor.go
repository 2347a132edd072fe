// Package fields wires the classification engine to concrete ESAD boxes. One
// shared Processor interprets a code table per box instead of duplicating
// branching logic per field.
package fields

import (
	"fmt"
	"log/slog"

	"github.com/klearrshipping/cudabot/constants"
	"github.com/klearrshipping/cudabot/internal/classify"
	"github.com/klearrshipping/cudabot/internal/codetable"
	"github.com/klearrshipping/cudabot/internal/extract"
)

// Processor classifies one ESAD box. It is stateless per request; the only
// shared state is the read-only code table, so concurrent use is safe.
type Processor struct {
	box    constants.Box
	table  *codetable.Table
	keys   []string
	logger *slog.Logger
}

// NewProcessor builds a processor for a box. keys name the document fragments
// the signal extractor should look at, in preference order.
func NewProcessor(box constants.Box, table *codetable.Table, keys []string, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{box: box, table: table, keys: keys, logger: logger}
}

// Box returns the ESAD box this processor serves.
func (p *Processor) Box() constants.Box { return p.box }

// Table returns the processor's code table.
func (p *Processor) Table() *codetable.Table { return p.table }

// Process runs extract -> classify -> resolve for one document. It is total:
// every input, including garbage, yields an outcome whose code belongs to the
// table. Anything unexpected below this boundary (including panics) is
// converted into the table default.
func (p *Processor) Process(doc extract.DocumentData) (out classify.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = classify.Fallback(p.table, classify.RawSignal{}, fmt.Sprintf("recovered: %v", r))
			p.logger.Error("field.classify.recovered", "box", p.box, "panic", fmt.Sprint(r))
		}
	}()

	sig := classify.Extract(doc, p.keys...)
	res, err := classify.Classify(sig, p.table)
	out = classify.Resolve(p.table, res, err)

	p.logger.Debug("field.classify",
		"box", p.box,
		"code", out.Value(),
		"confidence", out.Confidence(),
		"fallback", out.FallbackUsed(),
		"signal_origin", sig.Origin,
	)
	return out
}

// BoxValue returns just the code for form population. Guaranteed non-empty.
func (p *Processor) BoxValue(doc extract.DocumentData) string {
	return p.Process(doc).Value()
}
