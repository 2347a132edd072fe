package entity

import (
	"time"

	"github.com/google/uuid"
)

// FieldResult is the persisted diagnostic record for one classified box of
// one order. The form only ever sees Code; everything else exists for audit.
type FieldResult struct {
	ID           uuid.UUID `json:"id"`
	OrderID      uuid.UUID `json:"order_id"`
	Box          string    `json:"box"`
	Code         string    `json:"code"`
	Label        string    `json:"label"`
	Confidence   float64   `json:"confidence"`
	MatchedRule  *string   `json:"matched_rule,omitempty"`
	Signal       string    `json:"signal"`
	SignalOrigin string    `json:"signal_origin"`
	FallbackUsed bool      `json:"fallback_used"`
	Reason       *string   `json:"reason,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
