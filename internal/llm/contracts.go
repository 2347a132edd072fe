package llm

import (
	"context"

	"github.com/klearrshipping/cudabot/internal/extract"
)

// ESADFields is the normalized shape we want from the LLM: the raw textual
// fragments for each box, not codes. Classification into codes happens in the
// rules engine, never in the model.
type ESADFields struct {
	TransportDetails   string  `json:"transport_details,omitempty"`
	TransactionDetails string  `json:"transaction_details,omitempty"`
	PackageDetails     string  `json:"package_details,omitempty"`
	RegimeDetails      string  `json:"regime_details,omitempty"`
	GoodsDescription   string  `json:"goods_description,omitempty"`
	ModelConfidence    float32 `json:"confidence,omitempty"` // optional (0..1)
}

// DocumentData converts the extracted fragments into the pipeline's input
// boundary type.
func (f ESADFields) DocumentData() extract.DocumentData {
	fieldsMap := map[string]string{}
	put := func(k, v string) {
		if v != "" {
			fieldsMap[k] = v
		}
	}
	put("transport_details", f.TransportDetails)
	put("transaction_details", f.TransactionDetails)
	put("package_details", f.PackageDetails)
	put("regime_details", f.RegimeDetails)
	put("goods_description", f.GoodsDescription)
	return extract.DocumentData{Fields: fieldsMap}
}

// ExtractRequest carries one document set to the extraction model.
type ExtractRequest struct {
	OrderRef     string
	DocumentText string // concatenated BOL + invoice text
	DocumentType string // "bill_of_lading" | "invoice" | "mixed"
}

// FieldExtractor is the interface the pipeline depends on.
type FieldExtractor interface {
	ExtractESADFields(ctx context.Context, req ExtractRequest) (ESADFields, []byte /*rawJSON*/, error)
}
