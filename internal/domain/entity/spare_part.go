package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SparePart is a catalog item tracked by quantity on hand and unit price.
// Quantity is adjusted only by the stock ledgers, never by a catalog update.
type SparePart struct {
	ID        string
	Name      string
	Category  string
	Quantity  int
	UnitPrice decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TotalValue returns quantity × unit price at read time.
func (p *SparePart) TotalValue() decimal.Decimal {
	return p.UnitPrice.Mul(decimal.NewFromInt(int64(p.Quantity)))
}
