package fields

import (
	"testing"

	"github.com/klearrshipping/cudabot/constants"
	"github.com/klearrshipping/cudabot/internal/extract"
)

func transportProcessor(t *testing.T) *Processor {
	t.Helper()
	tbl, err := transportModeTable()
	if err != nil {
		t.Fatalf("builtin transport table: %v", err)
	}
	return NewProcessor(constants.BoxTransportMode, tbl, transportSignalKeys, nil)
}

func TestProcessor_LabeledFragmentWins(t *testing.T) {
	proc := transportProcessor(t)
	doc := extract.DocumentData{
		Fields: map[string]string{"transport_details": "Flight BA204, London Heathrow"},
		Text:   "vessel mentioned only in free text",
	}
	out := proc.Process(doc)
	if out.Value() != "4" {
		t.Errorf("code: got %q, want 4 (labeled fragment outranks free text)", out.Value())
	}
	rec := out.Record(proc.Box().String())
	if rec.SignalOrigin != "transport_details" {
		t.Errorf("origin: got %q", rec.SignalOrigin)
	}
}

func TestProcessor_FreeTextFallback(t *testing.T) {
	proc := transportProcessor(t)
	out := proc.Process(extract.DocumentData{Text: "picked up by courier"})
	if out.Value() != "5" {
		t.Errorf("code: got %q, want 5", out.Value())
	}
	if out.Record("25").SignalOrigin != "free_text" {
		t.Errorf("origin: got %q", out.Record("25").SignalOrigin)
	}
}

func TestProcessor_BoxValueNeverEmpty(t *testing.T) {
	proc := transportProcessor(t)
	docs := []extract.DocumentData{
		{},
		{Text: "   "},
		{Text: "#$%^&* 0x00"},
		{Fields: map[string]string{"transport_details": ""}},
	}
	for i, doc := range docs {
		if v := proc.BoxValue(doc); v == "" {
			t.Errorf("doc %d: empty box value", i)
		} else if v != "1" {
			t.Errorf("doc %d: got %q, want default 1", i, v)
		}
	}
}

// The documents in one shipment often mention several modes; the table's
// declared order decides, so ocean terms always outrank road terms.
func TestProcessor_MixedSignals(t *testing.T) {
	proc := transportProcessor(t)
	out := proc.Process(extract.DocumentData{
		Fields: map[string]string{"transport_details": "Truck to the port, then Vessel SEABOARD GEMINI"},
	})
	if out.Value() != "1" {
		t.Errorf("code: got %q, want 1", out.Value())
	}
}
