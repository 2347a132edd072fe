// Package classify implements the shared field classification engine: signal
// extraction, ordered rule matching against a code table, and the fallback
// boundary that guarantees a non-empty code for every input.
package classify

import (
	"strings"

	"github.com/klearrshipping/cudabot/internal/extract"
)

// RawSignal is the fragment of document data relevant to one ESAD box. It is
// created per classification request and discarded after use. An empty signal
// is a normal outcome of extraction, not an error.
type RawSignal struct {
	Text   string
	Origin string
}

// Empty reports whether extraction found nothing relevant.
func (s RawSignal) Empty() bool {
	return strings.TrimSpace(s.Text) == ""
}

// Extract isolates the signal for one box from semi-structured document data.
// It collects the values of the given keys in order (case-insensitive key
// lookup, missing keys tolerated) and falls back to the document's free text
// when no labeled fragment exists. Pure function of its input.
func Extract(doc extract.DocumentData, keys ...string) RawSignal {
	var (
		parts   []string
		origins []string
	)
	for _, key := range keys {
		v, ok := doc.Get(key)
		if !ok {
			continue
		}
		if v = strings.TrimSpace(v); v == "" {
			continue
		}
		parts = append(parts, v)
		origins = append(origins, key)
	}
	if len(parts) > 0 {
		return RawSignal{
			Text:   strings.Join(parts, "\n"),
			Origin: strings.Join(origins, ","),
		}
	}

	if text := strings.TrimSpace(doc.FreeText()); text != "" {
		return RawSignal{Text: text, Origin: "free_text"}
	}
	return RawSignal{}
}
