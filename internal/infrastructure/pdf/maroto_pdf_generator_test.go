package pdf_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartpark/sims-api/internal/application/dto"
	"github.com/smartpark/sims-api/internal/infrastructure/pdf"
)

func TestGenerateDailyStockOutPDF(t *testing.T) {
	g := pdf.NewMarotoPDFGenerator()

	rep := &dto.DailyStockOutReport{
		Date: "2024-01-02",
		Items: []dto.DailyStockOutItem{
			{
				ID:            "e1",
				Date:          time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
				SparePartName: "Brake Pad",
				Category:      "Brakes",
				Quantity:      20,
				UnitPrice:     decimal.RequireFromString("12.00"),
				TotalPrice:    decimal.RequireFromString("240.00"),
			},
		},
		Total: decimal.RequireFromString("240.00"),
	}

	out, err := g.GenerateDailyStockOutPDF(context.Background(), rep)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]), "output should start with the PDF magic number")
}

func TestGenerateDailyStockOutPDF_EmptyDay(t *testing.T) {
	g := pdf.NewMarotoPDFGenerator()

	out, err := g.GenerateDailyStockOutPDF(context.Background(), &dto.DailyStockOutReport{
		Date:  "2024-01-03",
		Items: nil,
		Total: decimal.Zero,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
