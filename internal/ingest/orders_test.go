package ingest

import (
	"os"
	"path/filepath"
	"testing"
)

func writeOrder(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestReadOrderFile(t *testing.T) {
	dir := t.TempDir()
	path := writeOrder(t, dir, "ord-200.json", `{
		"reference": "ORD-200",
		"document_type": "bill_of_lading",
		"fields": {"transport_details": "Vessel MAERSK OHIO"},
		"text": "raw text"
	}`)

	of, err := ReadOrderFile(path)
	if err != nil {
		t.Fatalf("ReadOrderFile: %v", err)
	}
	if of.Reference != "ORD-200" {
		t.Errorf("reference: got %q", of.Reference)
	}
	if of.Fields["transport_details"] != "Vessel MAERSK OHIO" {
		t.Errorf("fields: got %v", of.Fields)
	}
	if of.Text != "raw text" {
		t.Errorf("text: got %q", of.Text)
	}
}

func TestReadOrderFile_ReferenceDefaultsToFileName(t *testing.T) {
	dir := t.TempDir()
	path := writeOrder(t, dir, "ORD-201.json", `{"fields":{"package_details":"2 pallets"}}`)

	of, err := ReadOrderFile(path)
	if err != nil {
		t.Fatalf("ReadOrderFile: %v", err)
	}
	if of.Reference != "ORD-201" {
		t.Errorf("reference: got %q, want ORD-201", of.Reference)
	}
}

func TestReadOrderFile_BadPayload(t *testing.T) {
	dir := t.TempDir()
	path := writeOrder(t, dir, "bad.json", "{not json")
	if _, err := ReadOrderFile(path); err == nil {
		t.Fatal("expected decode error")
	}
	if _, err := ReadOrderFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatal("expected read error")
	}
}
