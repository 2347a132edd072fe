package fields

import (
	"github.com/klearrshipping/cudabot/constants"
	"github.com/klearrshipping/cudabot/internal/codetable"
)

// Box 37, customs procedure (regime type). IM4, import for home use, is the
// default regime for commercial imports.
const regimeTypeFile = "regime_type.csv"

var regimeSignalKeys = []string{
	"regime_details",
	"customs_procedure",
	"declaration_type",
	"procedure",
}

func regimeTypeTable() (*codetable.Table, error) {
	return codetable.New(constants.BoxRegimeType.String(), []codetable.Entry{
		{
			Code:  "IM4",
			Label: "Import for home use",
			Patterns: []string{
				"home use", "home consumption", "direct import", "import for consumption",
			},
		},
		{
			Code:  "IM7",
			Label: "Entry for warehousing",
			Patterns: []string{
				"warehouse", "warehousing", "bonded",
			},
		},
		{
			Code:  "IM5",
			Label: "Temporary import",
			Patterns: []string{
				"temporary import", "temporary admission", "re-export",
			},
		},
		{
			Code:  "EX1",
			Label: "Outright export",
			Patterns: []string{
				"export", "outright export",
			},
		},
	}, "IM4")
}
