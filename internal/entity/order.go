package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/klearrshipping/cudabot/constants"
)

// Order represents one shipment/declaration job for data transfer between
// layers.
type Order struct {
	ID        uuid.UUID             `json:"id"`
	Reference string                `json:"reference"`
	Status    constants.OrderStatus `json:"status"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}
