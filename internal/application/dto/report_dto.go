package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockStatusRow one part's ledger totals next to its live quantity.
// current_quantity must always equal total_stock_in - total_stock_out; the
// report exists as a cross-check, it never mutates anything.
type StockStatusRow struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Category        string `json:"category"`
	CurrentQuantity int    `json:"current_quantity"`
	TotalStockIn    int    `json:"total_stock_in"`
	TotalStockOut   int    `json:"total_stock_out"`
}

// DailyStockOutItem one stock-out entry in the daily report.
type DailyStockOutItem struct {
	ID            string          `json:"id"`
	Date          time.Time       `json:"stock_out_date"`
	SparePartName string          `json:"spare_part_name"`
	Category      string          `json:"category"`
	Quantity      int             `json:"stock_out_quantity"`
	UnitPrice     decimal.Decimal `json:"stock_out_unit_price"`
	TotalPrice    decimal.Decimal `json:"stock_out_total_price"`
}

// DailyStockOutReport the dated stock-out listing with its grand total.
type DailyStockOutReport struct {
	Date  string              `json:"date"`
	Items []DailyStockOutItem `json:"items"`
	Total decimal.Decimal     `json:"total"`
}
