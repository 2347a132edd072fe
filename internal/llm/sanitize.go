package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

var knownFields = map[string]struct{}{
	"transport_details":   {},
	"transaction_details": {},
	"package_details":     {},
	"regime_details":      {},
	"goods_description":   {},
	"confidence":          {},
}

// SanitizeFields normalizes a near-miss model response so the document can
// still validate against the strict schema:
//   - renames known synonyms (e.g. shipping_details -> transport_details)
//   - drops null/empty values and unknown keys (additionalProperties: false)
//   - coerces stray numbers in text fields to strings
func SanitizeFields(raw []byte) ([]byte, []string, error) {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	dropped := make([]string, 0, 4)
	rename := func(from, to string) {
		if v, ok := m[from]; ok {
			if _, exists := m[to]; !exists {
				m[to] = v
			}
			delete(m, from)
			dropped = append(dropped, from+"->"+to)
		}
	}

	rename("shipping_details", "transport_details")
	rename("mode_of_transport", "transport_details")
	rename("packages", "package_details")
	rename("description_of_goods", "goods_description")
	rename("customs_procedure", "regime_details")

	for k, v := range m {
		if _, known := knownFields[k]; !known {
			delete(m, k)
			dropped = append(dropped, k)
			continue
		}
		if k == "confidence" {
			continue
		}
		switch t := v.(type) {
		case nil:
			delete(m, k)
			dropped = append(dropped, k+"(null)")
		case string:
			if strings.TrimSpace(t) == "" {
				delete(m, k)
				dropped = append(dropped, k+"(empty)")
			}
		case float64:
			m[k] = fmt.Sprintf("%v", t)
		default:
			delete(m, k)
			dropped = append(dropped, k+"(unsupported)")
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	return out, dropped, nil
}
