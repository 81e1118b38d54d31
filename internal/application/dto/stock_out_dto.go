package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockOutRequest body for POST /api/stock-out and PUT /api/stock-out/:id.
// The date accepts YYYY-MM-DD or a full RFC 3339 timestamp.
type StockOutRequest struct {
	SparePartID string          `json:"spare_part_id"`
	Quantity    int             `json:"stock_out_quantity"`
	UnitPrice   decimal.Decimal `json:"stock_out_unit_price"`
	Date        string          `json:"stock_out_date"`
}

// StockOutResponse a stock-out ledger entry annotated with its part.
// TotalPrice is computed from quantity and unit price at read time.
type StockOutResponse struct {
	ID            string          `json:"id"`
	SparePartID   string          `json:"spare_part_id"`
	SparePartName string          `json:"spare_part_name"`
	Category      string          `json:"category"`
	Quantity      int             `json:"stock_out_quantity"`
	UnitPrice     decimal.Decimal `json:"stock_out_unit_price"`
	TotalPrice    decimal.Decimal `json:"stock_out_total_price"`
	Date          time.Time       `json:"stock_out_date"`
	CreatedAt     time.Time       `json:"created_at"`
}
