package classify

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/klearrshipping/cudabot/internal/codetable"
)

// Classification failures. Both resolve to the table default downstream;
// neither is ever surfaced as a low-confidence success.
var (
	ErrEmptySignal = errors.New("empty signal")
	ErrNoMatch     = errors.New("no pattern matched")
)

// Result is a successful classification. Immutable once returned.
type Result struct {
	Code        string
	Label       string
	Confidence  float64
	MatchedRule string
	Signal      RawSignal
}

// Classify maps a signal to a code by scanning the table's entries in their
// declared order. The first entry with any matching pattern wins, so earlier
// entries are authoritative when several could match. Within the winning
// entry, a whole-word hit scores the table's exact confidence and plain
// substring containment the partial confidence.
func Classify(sig RawSignal, tbl *codetable.Table) (Result, error) {
	if tbl == nil {
		return Result{}, fmt.Errorf("classify: nil code table")
	}
	if sig.Empty() {
		return Result{}, ErrEmptySignal
	}

	haystack := strings.ToLower(sig.Text)
	scoring := tbl.Scoring()

	for _, entry := range tbl.Entries() {
		var (
			matched    bool
			rule       string
			confidence float64
		)
		for _, pattern := range entry.Patterns {
			needle := strings.ToLower(pattern)
			if !strings.Contains(haystack, needle) {
				continue
			}
			if containsWord(haystack, needle) {
				// Strongest possible hit for this entry; stop scanning.
				matched, rule, confidence = true, pattern, scoring.Exact
				break
			}
			if !matched {
				matched, rule, confidence = true, pattern, scoring.Partial
			}
		}
		if matched {
			return Result{
				Code:        entry.Code,
				Label:       entry.Label,
				Confidence:  confidence,
				MatchedRule: rule,
				Signal:      sig,
			}, nil
		}
	}
	return Result{}, ErrNoMatch
}

// containsWord reports whether needle occurs in haystack on word boundaries.
// Both strings must already be lowercased.
func containsWord(haystack, needle string) bool {
	for from := 0; ; {
		i := strings.Index(haystack[from:], needle)
		if i < 0 {
			return false
		}
		start := from + i
		end := start + len(needle)
		if boundaryBefore(haystack, start) && boundaryAfter(haystack, end) {
			return true
		}
		from = start + 1
	}
}

func boundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func boundaryAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
