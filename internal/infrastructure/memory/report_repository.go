package memory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/smartpark/sims-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepository)(nil)

// ReportRepository in-memory ReportRepository: the same aggregations the SQL
// adapter performs, computed over the store's maps.
type ReportRepository struct {
	store *Store
}

// NewReportRepository builds the repository over the store.
func NewReportRepository(store *Store) *ReportRepository {
	return &ReportRepository{store: store}
}

// StockStatus sums both ledgers per part next to the live quantity, name ascending.
func (r *ReportRepository) StockStatus(ctx context.Context) ([]repository.StockStatusRow, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	totalIn := make(map[string]int)
	for _, e := range r.store.stockIn {
		totalIn[e.SparePartID] += e.Quantity
	}
	totalOut := make(map[string]int)
	for _, e := range r.store.stockOut {
		totalOut[e.SparePartID] += e.Quantity
	}

	rows := make([]repository.StockStatusRow, 0, len(r.store.parts))
	for _, p := range r.store.parts {
		rows = append(rows, repository.StockStatusRow{
			PartID:          p.ID,
			Name:            p.Name,
			Category:        p.Category,
			CurrentQuantity: p.Quantity,
			TotalStockIn:    totalIn[p.ID],
			TotalStockOut:   totalOut[p.ID],
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows, nil
}

// DailyStockOut returns the entries of [from, to) annotated with their part,
// newest created first. Deleted parts surface as "Unknown".
func (r *ReportRepository) DailyStockOut(ctx context.Context, from, to time.Time) ([]repository.DailyStockOutRow, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	type dated struct {
		row       repository.DailyStockOutRow
		createdAt time.Time
	}
	var rows []dated
	for _, e := range r.store.stockOut {
		if e.Date.Before(from) || !e.Date.Before(to) {
			continue
		}
		name, category := "Unknown", "Unknown"
		if p, ok := r.store.parts[e.SparePartID]; ok {
			name, category = p.Name, p.Category
		}
		rows = append(rows, dated{
			row: repository.DailyStockOutRow{
				EntryID:    e.ID,
				PartName:   name,
				Category:   category,
				Quantity:   e.Quantity,
				UnitPrice:  e.UnitPrice,
				TotalPrice: e.UnitPrice.Mul(decimal.NewFromInt(int64(e.Quantity))),
				Date:       e.Date,
			},
			createdAt: e.CreatedAt,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].createdAt.After(rows[j].createdAt) })

	out := make([]repository.DailyStockOutRow, 0, len(rows))
	for _, d := range rows {
		out = append(out, d.row)
	}
	return out, nil
}
