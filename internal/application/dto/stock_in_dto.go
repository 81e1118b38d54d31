package dto

import "time"

// CreateStockInRequest body for POST /api/stock-in.
// The date accepts YYYY-MM-DD or a full RFC 3339 timestamp.
type CreateStockInRequest struct {
	SparePartID string `json:"spare_part_id"`
	Quantity    int    `json:"stock_in_quantity"`
	Date        string `json:"stock_in_date"`
}

// StockInResponse a stock-in ledger entry annotated with its part.
type StockInResponse struct {
	ID            string    `json:"id"`
	SparePartID   string    `json:"spare_part_id"`
	SparePartName string    `json:"spare_part_name"`
	Category      string    `json:"category"`
	Quantity      int       `json:"stock_in_quantity"`
	Date          time.Time `json:"stock_in_date"`
	CreatedAt     time.Time `json:"created_at"`
}
