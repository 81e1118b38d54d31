package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockOutEntry is a recorded removal of quantity from a spare part, priced at
// time of sale. Entries are mutable: an update or delete reverses the prior
// quantity effect on the owning part before applying the new one.
type StockOutEntry struct {
	ID          string
	SparePartID string
	Quantity    int
	UnitPrice   decimal.Decimal // snapshot at time of sale
	Date        time.Time
	CreatedAt   time.Time
}

// TotalPrice returns quantity × unit price. Computed, never stored, so it
// cannot drift from the entry's fields.
func (e *StockOutEntry) TotalPrice() decimal.Decimal {
	return e.UnitPrice.Mul(decimal.NewFromInt(int64(e.Quantity)))
}
