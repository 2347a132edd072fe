package codetable

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const transportCSV = `code,label,patterns,default
1,Ocean Transport,vessel|voyage|port|berth,true
3,Road Transport,truck|highway,
4,Air Transport,flight|airway,
5,Postal Transport,mail|courier,
7,Fixed Transport Installation,pipeline|conveyor,
`

func TestLoadCSV_ParsesTable(t *testing.T) {
	tbl, err := LoadCSV("25", strings.NewReader(transportCSV))
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if tbl.Box() != "25" {
		t.Errorf("box: got %q", tbl.Box())
	}
	if tbl.Len() != 5 {
		t.Errorf("len: got %d, want 5", tbl.Len())
	}
	if tbl.Default().Code != "1" {
		t.Errorf("default: got %q, want 1", tbl.Default().Code)
	}
	first := tbl.Entries()[0]
	if len(first.Patterns) != 4 || first.Patterns[0] != "vessel" || first.Patterns[3] != "berth" {
		t.Errorf("patterns: got %v", first.Patterns)
	}
}

func TestLoadCSV_RequiresExactlyOneDefault(t *testing.T) {
	noDefault := `code,label,patterns,default
1,Ocean Transport,vessel,
3,Road Transport,truck,
`
	if _, err := LoadCSV("25", strings.NewReader(noDefault)); err == nil {
		t.Fatal("expected error when no row carries the default marker")
	}

	twoDefaults := `code,label,patterns,default
1,Ocean Transport,vessel,true
3,Road Transport,truck,yes
`
	if _, err := LoadCSV("25", strings.NewReader(twoDefaults)); err == nil {
		t.Fatal("expected error for two default rows")
	}
}

func TestLoadCSV_RequiresColumns(t *testing.T) {
	if _, err := LoadCSV("25", strings.NewReader("code,label\n1,Ocean\n")); err == nil {
		t.Fatal("expected error for missing patterns column")
	}
}

func TestLoadCSV_SkipsBlankRows(t *testing.T) {
	csv := `code,label,patterns,default
1,Ocean Transport,vessel,true
,,,
3,Road Transport,truck,
`
	tbl, err := LoadCSV("25", strings.NewReader(csv))
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if tbl.Len() != 2 {
		t.Fatalf("len: got %d, want 2", tbl.Len())
	}
}

func TestLoadCSV_TruthyMarkers(t *testing.T) {
	for _, marker := range []string{"1", "true", "TRUE", "yes", "Y"} {
		csv := "code,label,patterns,default\n9,Other,," + marker + "\n"
		tbl, err := LoadCSV("24", strings.NewReader(csv))
		if err != nil {
			t.Fatalf("marker %q: %v", marker, err)
		}
		if tbl.Default().Code != "9" {
			t.Fatalf("marker %q: default %q", marker, tbl.Default().Code)
		}
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "transport_mode.csv")
	if err := os.WriteFile(path, []byte(transportCSV), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	tbl, err := LoadFile("25", path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if tbl.Len() != 5 {
		t.Errorf("len: got %d, want 5", tbl.Len())
	}

	if _, err := LoadFile("25", filepath.Join(dir, "missing.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
