package report

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/smartpark/sims-api/internal/application/dto"
	"github.com/smartpark/sims-api/internal/application/ledger"
	"github.com/smartpark/sims-api/internal/domain"
	"github.com/smartpark/sims-api/internal/domain/repository"
)

// UseCase derives the two aggregate reports from the ledgers. Read-only,
// recomputed on every call, never cached.
type UseCase struct {
	reportRepo repository.ReportRepository
	pdf        PDFGenerator
}

// NewUseCase builds the reporter. pdf may be nil when PDF export is disabled;
// DailyStockOutPDF then fails with ErrNotFound instead of rendering.
func NewUseCase(reportRepo repository.ReportRepository, pdf PDFGenerator) *UseCase {
	return &UseCase{reportRepo: reportRepo, pdf: pdf}
}

// StockStatus returns, per part (name ascending), the stock-in and stock-out
// sums next to the live quantity. A cross-check over the reconciliation
// invariant: current_quantity must equal total_stock_in - total_stock_out.
func (uc *UseCase) StockStatus(ctx context.Context) ([]dto.StockStatusRow, error) {
	rows, err := uc.reportRepo.StockStatus(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockStatusRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.StockStatusRow{
			ID:              r.PartID,
			Name:            r.Name,
			Category:        r.Category,
			CurrentQuantity: r.CurrentQuantity,
			TotalStockIn:    r.TotalStockIn,
			TotalStockOut:   r.TotalStockOut,
		})
	}
	return out, nil
}

// DailyStockOut returns the stock-out entries of one calendar day with their
// grand total. Parts deleted after the fact appear as "Unknown". The date must
// be a strict YYYY-MM-DD.
func (uc *UseCase) DailyStockOut(ctx context.Context, date string) (*dto.DailyStockOutReport, error) {
	from, to, err := ledger.DayRange(date)
	if err != nil {
		return nil, err
	}
	rows, err := uc.reportRepo.DailyStockOut(ctx, from, to)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DailyStockOutItem, 0, len(rows))
	total := decimal.Zero
	for _, r := range rows {
		items = append(items, dto.DailyStockOutItem{
			ID:            r.EntryID,
			Date:          r.Date,
			SparePartName: r.PartName,
			Category:      r.Category,
			Quantity:      r.Quantity,
			UnitPrice:     r.UnitPrice,
			TotalPrice:    r.TotalPrice,
		})
		total = total.Add(r.TotalPrice)
	}
	return &dto.DailyStockOutReport{Date: date, Items: items, Total: total}, nil
}

// DailyStockOutPDF renders the daily report as a PDF.
func (uc *UseCase) DailyStockOutPDF(ctx context.Context, date string) ([]byte, error) {
	if uc.pdf == nil {
		return nil, fmt.Errorf("%w: pdf export is not configured", domain.ErrNotFound)
	}
	rep, err := uc.DailyStockOut(ctx, date)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateDailyStockOutPDF(ctx, rep)
}
