package codetable

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// CSV layout, one row per code:
//
//	code,label,patterns,default
//	1,Ocean Transport,vessel|voyage|port|berth,true
//
// Patterns are '|'-separated. Exactly one row may carry a truthy default
// marker; when absent the load fails because the fallback code is defined in
// the table itself.

// LoadCSV parses a code table for the given box from r.
func LoadCSV(box string, r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := map[string]int{}
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"code", "label", "patterns"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}

	var (
		entries     []Entry
		defaultCode string
	)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		cell := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}

		code := cell("code")
		label := cell("label")
		if code == "" || label == "" {
			continue
		}
		entries = append(entries, Entry{
			Code:     code,
			Label:    label,
			Patterns: splitPatterns(cell("patterns")),
		})
		if isTruthy(cell("default")) {
			if defaultCode != "" {
				return nil, fmt.Errorf("multiple default rows: %q and %q", defaultCode, code)
			}
			defaultCode = code
		}
	}

	return New(box, entries, defaultCode)
}

// LoadFile loads a code table from a CSV file on disk.
func LoadFile(box, path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open code table: %w", err)
	}
	defer f.Close()

	t, err := LoadCSV(box, f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return t, nil
}

func splitPatterns(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, "|")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func isTruthy(s string) bool {
	switch strings.ToLower(s) {
	case "1", "true", "yes", "y":
		return true
	}
	return false
}
