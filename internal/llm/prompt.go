package llm

import (
	"strings"
)

// BuildSystemPrompt composes the system message for ESAD fragment extraction.
// The model is asked for raw textual fragments only; code assignment stays in
// the rules engine where it is deterministic and auditable.
func BuildSystemPrompt(req ExtractRequest) string {
	parts := []string{
		"You are a customs documentation parser. Return ONLY JSON that matches the provided JSON Schema.",
		"Extract the raw text fragments relevant to each ESAD declaration field from shipment documents (bills of lading, commercial invoices).",
		"Copy fragments verbatim from the document; do NOT classify, code, or paraphrase them.",
		"transport_details: vessel/voyage/flight/truck/port text describing how the goods move.",
		"transaction_details: payment and sale terms describing the nature of the transaction.",
		"package_details: counts and kinds of packages (cartons, pallets, drums).",
		"regime_details: customs procedure wording (home use, warehousing, temporary import).",
		"goods_description: the commercial description of the goods.",
		"Omit any field the document does not support. Include 'confidence' in [0,1] for the extraction as a whole.",
	}
	if req.DocumentType != "" {
		parts = append(parts, "Document type hint: "+req.DocumentType+".")
	}
	return strings.Join(parts, " ")
}

// BuildUserPrompt wraps the document text for the user message.
func BuildUserPrompt(req ExtractRequest) string {
	var sb strings.Builder
	if req.OrderRef != "" {
		sb.WriteString("Order reference: " + req.OrderRef + "\n\n")
	}
	sb.WriteString("Document text:\n")
	sb.WriteString(req.DocumentText)
	return sb.String()
}
