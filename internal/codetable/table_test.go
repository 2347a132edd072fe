package codetable

import (
	"testing"
)

func transportEntries() []Entry {
	return []Entry{
		{Code: "1", Label: "Ocean Transport", Patterns: []string{"vessel", "voyage", "port", "berth"}},
		{Code: "3", Label: "Road Transport", Patterns: []string{"truck", "highway"}},
		{Code: "4", Label: "Air Transport", Patterns: []string{"flight", "airway"}},
		{Code: "5", Label: "Postal Transport", Patterns: []string{"mail", "courier"}},
		{Code: "7", Label: "Fixed Transport Installation", Patterns: []string{"pipeline", "conveyor"}},
	}
}

func TestNew_PreservesDeclaredOrder(t *testing.T) {
	tbl, err := New("25", transportEntries(), "1")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := tbl.Entries()
	want := []string{"1", "3", "4", "5", "7"}
	if len(got) != len(want) {
		t.Fatalf("entries: got %d, want %d", len(got), len(want))
	}
	for i, code := range want {
		if got[i].Code != code {
			t.Errorf("entry %d: got code %q, want %q", i, got[i].Code, code)
		}
	}
}

func TestNew_DefaultMustBelongToTable(t *testing.T) {
	if _, err := New("25", transportEntries(), "9"); err == nil {
		t.Fatal("expected error for default code absent from table")
	}
	if _, err := New("25", transportEntries(), ""); err == nil {
		t.Fatal("expected error for missing default code")
	}
}

func TestNew_RejectsDuplicateCodes(t *testing.T) {
	entries := []Entry{
		{Code: "1", Label: "Ocean Transport"},
		{Code: "1", Label: "Ocean Transport Again"},
	}
	if _, err := New("25", entries, "1"); err == nil {
		t.Fatal("expected duplicate code error")
	}
}

func TestNew_RejectsEmptyTables(t *testing.T) {
	if _, err := New("25", nil, "1"); err == nil {
		t.Fatal("expected error for table with no entries")
	}
	if _, err := New("", transportEntries(), "1"); err == nil {
		t.Fatal("expected error for missing box")
	}
}

func TestNew_ScoringValidation(t *testing.T) {
	cases := []struct {
		name    string
		scoring Scoring
		wantErr bool
	}{
		{"defaults", DefaultScoring, false},
		{"equal scores", Scoring{Exact: 0.8, Partial: 0.8}, false},
		{"exact below partial", Scoring{Exact: 0.5, Partial: 0.6}, true},
		{"zero partial", Scoring{Exact: 1.0, Partial: 0}, true},
		{"above one", Scoring{Exact: 1.5, Partial: 0.6}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New("25", transportEntries(), "1", WithScoring(tc.scoring))
			if tc.wantErr && err == nil {
				t.Fatalf("scoring %+v: expected error", tc.scoring)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("scoring %+v: unexpected error %v", tc.scoring, err)
			}
		})
	}
}

func TestTable_DefaultAndLookup(t *testing.T) {
	tbl, err := New("25", transportEntries(), "1")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if def := tbl.Default(); def.Code != "1" || def.Label != "Ocean Transport" {
		t.Fatalf("default: got %q/%q", def.Code, def.Label)
	}
	if e, ok := tbl.Lookup("4"); !ok || e.Label != "Air Transport" {
		t.Fatalf("lookup 4: got %+v, ok=%v", e, ok)
	}
	if _, ok := tbl.Lookup("99"); ok {
		t.Fatal("lookup 99: expected miss")
	}
}

func TestTable_EntriesReturnsACopy(t *testing.T) {
	tbl, err := New("25", transportEntries(), "1")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	es := tbl.Entries()
	es[0].Code = "mutated"
	if tbl.Entries()[0].Code != "1" {
		t.Fatal("mutating the returned slice changed the table")
	}
}

func TestRegistry_MissingTableIsAnError(t *testing.T) {
	tbl, err := New("25", transportEntries(), "1")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	reg, err := NewRegistry(tbl)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	if _, err := reg.Get("25"); err != nil {
		t.Fatalf("get 25: %v", err)
	}
	if _, err := reg.Get("24"); err == nil {
		t.Fatal("expected error for unregistered box")
	}
}
