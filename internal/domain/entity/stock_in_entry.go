package entity

import "time"

// StockInEntry is a recorded addition to a spare part's quantity.
// Entries are append-only: there is no update or delete operation.
type StockInEntry struct {
	ID          string
	SparePartID string
	Quantity    int
	Date        time.Time
	CreatedAt   time.Time
}
