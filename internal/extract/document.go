// Package extract defines the input boundary of the field pipeline: the
// opaque per-document data handed over by upstream parsing collaborators.
package extract

import (
	"strings"
)

// DocumentData is the semi-structured payload extracted from one shipment
// document set (bill of lading, invoice). Keys are whatever the upstream
// extractor produced; no schema is required and any key may be absent.
type DocumentData struct {
	// Fields holds labeled fragments, e.g. "transport_details" -> "Vessel ...".
	Fields map[string]string
	// Text holds free text with no labeling at all.
	Text string
}

// Get looks up a labeled fragment, tolerating case and spacing differences in
// the key ("Transport Details" matches "transport_details"). When several raw
// keys canonicalize to the same name, the lexicographically smallest raw key
// wins, so repeated lookups always return the same fragment.
func (d DocumentData) Get(key string) (string, bool) {
	want := canonicalKey(key)
	var (
		bestKey string
		bestVal string
		found   bool
	)
	for k, v := range d.Fields {
		if canonicalKey(k) != want {
			continue
		}
		if !found || k < bestKey {
			bestKey, bestVal, found = k, v, true
		}
	}
	return bestVal, found
}

// FreeText returns the unlabeled document text.
func (d DocumentData) FreeText() string { return d.Text }

// Empty reports whether the document carries no usable content at all.
func (d DocumentData) Empty() bool {
	if strings.TrimSpace(d.Text) != "" {
		return false
	}
	for _, v := range d.Fields {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func canonicalKey(k string) string {
	k = strings.ToLower(strings.TrimSpace(k))
	k = strings.ReplaceAll(k, " ", "_")
	k = strings.ReplaceAll(k, "-", "_")
	return k
}
