package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSparePartRequest body for POST /api/spare-parts.
// Quantity is optional and defaults to 0; afterwards only the ledgers touch it.
type CreateSparePartRequest struct {
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Quantity  *int            `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// UpdateSparePartRequest body for PUT /api/spare-parts/:id.
// Quantity is deliberately not a field: catalog edits can never tamper with it.
type UpdateSparePartRequest struct {
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// SparePartResponse a catalog item as returned by the API.
type SparePartResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalValue decimal.Decimal `json:"total_value"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
