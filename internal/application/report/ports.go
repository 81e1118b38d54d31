package report

import (
	"context"

	"github.com/smartpark/sims-api/internal/application/dto"
)

// PDFGenerator renders the daily stock-out report as a printable document.
type PDFGenerator interface {
	GenerateDailyStockOutPDF(ctx context.Context, report *dto.DailyStockOutReport) ([]byte, error)
}
