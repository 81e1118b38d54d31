package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// StockStatusRow is one line of the stock-status report: a part's live quantity
// next to the ledger sums it should reconcile with.
type StockStatusRow struct {
	PartID          string
	Name            string
	Category        string
	CurrentQuantity int
	TotalStockIn    int
	TotalStockOut   int
}

// DailyStockOutRow is one stock-out entry of a calendar day annotated with the
// owning part. Name and Category are "Unknown" when the part has been deleted;
// ledger rows are never cascade-deleted with their part.
type DailyStockOutRow struct {
	EntryID    string
	PartName   string
	Category   string
	Quantity   int
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
	Date       time.Time
}

// ReportRepository is the read-only port backing the status reporter. Both
// queries are recomputed on demand, never cached.
type ReportRepository interface {
	// StockStatus returns one row per part, name ascending.
	StockStatus(ctx context.Context) ([]StockStatusRow, error)
	// DailyStockOut returns the stock-out entries with from <= date < to,
	// newest created first.
	DailyStockOut(ctx context.Context, from, to time.Time) ([]DailyStockOutRow, error)
}
