package fields

import (
	"github.com/klearrshipping/cudabot/constants"
	"github.com/klearrshipping/cudabot/internal/codetable"
)

// Box 24, nature of transaction. Code 9 ("Other") is the default: the
// official classification instructs declarants to use 9/9 when the
// transaction cannot be determined.
const transactionTypeFile = "transaction_type.csv"

var transactionSignalKeys = []string{
	"transaction_details",
	"nature_of_transaction",
	"payment_terms",
	"invoice_terms",
}

func transactionTypeTable() (*codetable.Table, error) {
	return codetable.New(constants.BoxTransactionType.String(), []codetable.Entry{
		{
			Code:  "1",
			Label: "Outright purchase or sale",
			Patterns: []string{
				"purchase", "sale", "sold", "invoice value", "paid in full",
			},
		},
		{
			Code:  "2",
			Label: "Return or replacement of goods",
			Patterns: []string{
				"return", "returned goods", "replacement", "exchange of goods",
			},
		},
		{
			Code:  "3",
			Label: "Aid or donation",
			Patterns: []string{
				"donation", "donated", "charity", "humanitarian", "aid shipment", "gift",
			},
		},
		{
			Code:  "4",
			Label: "Operations under leasing or hire",
			Patterns: []string{
				"lease", "leasing", "rental", "hire", "loan of goods",
			},
		},
		{
			Code:  "6",
			Label: "Goods for repair or processing",
			Patterns: []string{
				"repair", "processing", "rework", "refurbish",
			},
		},
		{
			Code:     "9",
			Label:    "Other transactions",
			Patterns: nil, // reached only via fallback
		},
	}, "9")
}
