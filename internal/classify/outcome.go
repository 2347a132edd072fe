package classify

import (
	"github.com/klearrshipping/cudabot/internal/codetable"
)

// Outcome is the total result of one classification request: it always holds
// a code from the table, whether a rule matched or the default was used. The
// value view and the diagnostic view are both derived from it, so they cannot
// disagree on the code.
type Outcome struct {
	result       Result
	fallbackUsed bool
	reason       string
}

// DiagnosticRecord is the full view of an outcome, for logging and audit.
// It is never written to the declaration form.
type DiagnosticRecord struct {
	Box          string  `json:"box"`
	Code         string  `json:"code"`
	Label        string  `json:"label"`
	Confidence   float64 `json:"confidence"`
	MatchedRule  string  `json:"matched_rule,omitempty"`
	Signal       string  `json:"signal,omitempty"`
	SignalOrigin string  `json:"signal_origin,omitempty"`
	FallbackUsed bool    `json:"fallback_used"`
	Reason       string  `json:"reason,omitempty"`
}

// Resolve converts a classification result or failure into an Outcome. On any
// failure the table's designated default is substituted with a zero sentinel
// confidence. It never returns an error: the field value output is total.
func Resolve(tbl *codetable.Table, res Result, err error) Outcome {
	if err == nil {
		return Outcome{result: res}
	}
	return Fallback(tbl, res.Signal, err.Error())
}

// Fallback builds the default outcome directly, recording why.
func Fallback(tbl *codetable.Table, sig RawSignal, reason string) Outcome {
	def := tbl.Default()
	return Outcome{
		result: Result{
			Code:       def.Code,
			Label:      def.Label,
			Confidence: 0,
			Signal:     sig,
		},
		fallbackUsed: true,
		reason:       reason,
	}
}

// Value is the minimal view: exactly the code, nothing else. This is what
// form population consumes and it is never empty for a validated table.
func (o Outcome) Value() string { return o.result.Code }

// Label returns the human-readable label of the resolved code.
func (o Outcome) Label() string { return o.result.Label }

// Confidence returns the advisory match confidence (0 when the fallback was
// used).
func (o Outcome) Confidence() float64 { return o.result.Confidence }

// FallbackUsed reports whether the default code was substituted.
func (o Outcome) FallbackUsed() bool { return o.fallbackUsed }

// Record is the diagnostic view over the same computation as Value.
func (o Outcome) Record(box string) DiagnosticRecord {
	return DiagnosticRecord{
		Box:          box,
		Code:         o.result.Code,
		Label:        o.result.Label,
		Confidence:   o.result.Confidence,
		MatchedRule:  o.result.MatchedRule,
		Signal:       o.result.Signal.Text,
		SignalOrigin: o.result.Signal.Origin,
		FallbackUsed: o.fallbackUsed,
		Reason:       o.reason,
	}
}
