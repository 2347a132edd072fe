package fields

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/klearrshipping/cudabot/constants"
	"github.com/klearrshipping/cudabot/internal/common"
	"github.com/klearrshipping/cudabot/internal/extract"
)

func builtinRegistry(t *testing.T) *Registry {
	t.Helper()
	reg, err := NewRegistry(common.TablesConfig{}, nil)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return reg
}

func TestNewRegistry_LoadsAllBoxes(t *testing.T) {
	reg := builtinRegistry(t)
	if got := len(reg.Processors()); got != len(constants.AllBoxes()) {
		t.Fatalf("processors: got %d, want %d", got, len(constants.AllBoxes()))
	}
	for _, box := range constants.AllBoxes() {
		proc, err := reg.Get(box)
		if err != nil {
			t.Errorf("box %s: %v", box, err)
			continue
		}
		if proc.Table().Default().Code == "" {
			t.Errorf("box %s: table has no default", box)
		}
	}
}

func TestRegistry_UnknownBox(t *testing.T) {
	reg := builtinRegistry(t)
	if _, err := reg.Get(constants.Box("99")); err == nil {
		t.Fatal("expected error for unsupported box")
	}
}

func TestRegistry_CSVOverride(t *testing.T) {
	dir := t.TempDir()
	override := `code,label,patterns,default
4,Air Transport,flight,true
1,Ocean Transport,vessel,
`
	if err := os.WriteFile(filepath.Join(dir, "transport_mode.csv"), []byte(override), 0o644); err != nil {
		t.Fatalf("write override: %v", err)
	}

	reg, err := NewRegistry(common.TablesConfig{Dir: dir}, nil)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	proc, err := reg.Get(constants.BoxTransportMode)
	if err != nil {
		t.Fatalf("get transport: %v", err)
	}
	if proc.Table().Default().Code != "4" {
		t.Errorf("override default: got %q, want 4", proc.Table().Default().Code)
	}
	// Boxes without an override file keep their builtin tables.
	if _, err := reg.Get(constants.BoxPackageType); err != nil {
		t.Errorf("builtin package table missing: %v", err)
	}
}

func TestRegistry_BadOverrideIsFatal(t *testing.T) {
	dir := t.TempDir()
	noDefault := "code,label,patterns,default\n1,Ocean Transport,vessel,\n"
	if err := os.WriteFile(filepath.Join(dir, "transport_mode.csv"), []byte(noDefault), 0o644); err != nil {
		t.Fatalf("write override: %v", err)
	}

	_, err := NewRegistry(common.TablesConfig{Dir: dir}, nil)
	if err == nil {
		t.Fatal("expected table load failure")
	}
	if !errors.Is(err, common.ErrTableLoad) {
		t.Errorf("error %v does not wrap ErrTableLoad", err)
	}
}

func TestProcessAll_AlwaysCoversEveryBox(t *testing.T) {
	reg := builtinRegistry(t)
	docs := []extract.DocumentData{
		{}, // empty document
		{Text: "Unrecognized gibberish xyz123"},
		{Fields: map[string]string{
			"transport_details":   "Vessel SEABOARD GEMINI, Voyage SGM19",
			"transaction_details": "Outright sale, paid in full",
			"package_details":     "40 cartons on 2 pallets",
			"regime_details":      "Import for home consumption",
		}},
	}
	for i, doc := range docs {
		values := reg.ProcessAll(doc)
		for _, box := range constants.AllBoxes() {
			if values[box] == "" {
				t.Errorf("doc %d: box %s has empty code", i, box)
			}
		}
	}
}

func TestProcessAll_EmptyDocumentYieldsDefaults(t *testing.T) {
	reg := builtinRegistry(t)
	values := reg.ProcessAll(extract.DocumentData{})

	want := map[constants.Box]string{
		constants.BoxTransactionType: "9",
		constants.BoxTransportMode:   "1",
		constants.BoxPackageType:     "PK",
		constants.BoxRegimeType:      "IM4",
	}
	for box, code := range want {
		if values[box] != code {
			t.Errorf("box %s: got %q, want default %q", box, values[box], code)
		}
	}
}
