package ledger_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartpark/sims-api/internal/application/catalog"
	"github.com/smartpark/sims-api/internal/application/dto"
	"github.com/smartpark/sims-api/internal/application/ledger"
	"github.com/smartpark/sims-api/internal/domain"
	"github.com/smartpark/sims-api/internal/infrastructure/memory"
	"github.com/smartpark/sims-api/pkg/logger"
)

type fixture struct {
	parts    *catalog.SparePartUseCase
	stockIn  *ledger.StockInUseCase
	stockOut *ledger.StockOutUseCase
}

func newFixture() *fixture {
	store := memory.NewStore()
	partRepo := memory.NewSparePartRepository(store)
	stockInRepo := memory.NewStockInRepository(store)
	stockOutRepo := memory.NewStockOutRepository(store)
	txRunner := memory.NewTxRunner(store)
	return &fixture{
		parts:    catalog.NewSparePartUseCase(partRepo),
		stockIn:  ledger.NewStockInUseCase(txRunner, partRepo, stockInRepo),
		stockOut: ledger.NewStockOutUseCase(txRunner, partRepo, stockOutRepo, logger.Nop()),
	}
}

func (f *fixture) createPart(t *testing.T, name string, quantity int, unitPrice string) *dto.SparePartResponse {
	t.Helper()
	part, err := f.parts.Create(context.Background(), dto.CreateSparePartRequest{
		Name:      name,
		Category:  "Brakes",
		Quantity:  &quantity,
		UnitPrice: decimal.RequireFromString(unitPrice),
	})
	require.NoError(t, err)
	return part
}

func (f *fixture) partQuantity(t *testing.T, id string) int {
	t.Helper()
	part, err := f.parts.GetByID(context.Background(), id)
	require.NoError(t, err)
	return part.Quantity
}

// Stock-in 50 on an empty part, then stock-out 20 at 12.00: quantity walks
// 0 -> 50 -> 30 and the entry's total price is 240.00.
func TestStockOut_CreateDecrementsQuantity(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	part := f.createPart(t, "Brake Pad", 0, "10.00")

	_, err := f.stockIn.Record(ctx, dto.CreateStockInRequest{
		SparePartID: part.ID,
		Quantity:    50,
		Date:        "2024-01-01",
	})
	require.NoError(t, err)
	assert.Equal(t, 50, f.partQuantity(t, part.ID))

	entry, err := f.stockOut.Create(ctx, dto.StockOutRequest{
		SparePartID: part.ID,
		Quantity:    20,
		UnitPrice:   decimal.RequireFromString("12.00"),
		Date:        "2024-01-02",
	})
	require.NoError(t, err)

	assert.Equal(t, 30, f.partQuantity(t, part.ID))
	assert.Equal(t, "Brake Pad", entry.SparePartName)
	assert.True(t, entry.TotalPrice.Equal(decimal.RequireFromString("240.00")),
		"total price should be 20 * 12.00, got %s", entry.TotalPrice)
}

// Taking more than the available stock is rejected in full: no entry is
// created and the quantity is untouched.
func TestStockOut_CreateInsufficientStock(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	part := f.createPart(t, "Brake Pad", 30, "10.00")

	_, err := f.stockOut.Create(ctx, dto.StockOutRequest{
		SparePartID: part.ID,
		Quantity:    40,
		UnitPrice:   decimal.RequireFromString("12.00"),
		Date:        "2024-01-02",
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 30, f.partQuantity(t, part.ID))

	entries, err := f.stockOut.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStockOut_CreateUnknownPart(t *testing.T) {
	f := newFixture()

	_, err := f.stockOut.Create(context.Background(), dto.StockOutRequest{
		SparePartID: "missing",
		Quantity:    1,
		UnitPrice:   decimal.RequireFromString("1.00"),
		Date:        "2024-01-02",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStockOut_CreateValidation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	part := f.createPart(t, "Brake Pad", 10, "10.00")

	cases := []struct {
		name string
		in   dto.StockOutRequest
	}{
		{"missing part id", dto.StockOutRequest{Quantity: 1, UnitPrice: decimal.New(1, 0), Date: "2024-01-02"}},
		{"zero quantity", dto.StockOutRequest{SparePartID: part.ID, Quantity: 0, UnitPrice: decimal.New(1, 0), Date: "2024-01-02"}},
		{"negative quantity", dto.StockOutRequest{SparePartID: part.ID, Quantity: -3, UnitPrice: decimal.New(1, 0), Date: "2024-01-02"}},
		{"zero unit price", dto.StockOutRequest{SparePartID: part.ID, Quantity: 1, Date: "2024-01-02"}},
		{"bad date", dto.StockOutRequest{SparePartID: part.ID, Quantity: 1, UnitPrice: decimal.New(1, 0), Date: "02/01/2024"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.stockOut.Create(ctx, tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Equal(t, 10, f.partQuantity(t, part.ID))
		})
	}
}

// Growing an entry from 20 to 25 takes only the 5-unit delta.
func TestStockOut_UpdateSamePartDelta(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	part := f.createPart(t, "Brake Pad", 50, "10.00")

	entry, err := f.stockOut.Create(ctx, dto.StockOutRequest{
		SparePartID: part.ID,
		Quantity:    20,
		UnitPrice:   decimal.RequireFromString("12.00"),
		Date:        "2024-01-02",
	})
	require.NoError(t, err)
	require.Equal(t, 30, f.partQuantity(t, part.ID))

	updated, err := f.stockOut.Update(ctx, entry.ID, dto.StockOutRequest{
		SparePartID: part.ID,
		Quantity:    25,
		UnitPrice:   decimal.RequireFromString("12.00"),
		Date:        "2024-01-02",
	})
	require.NoError(t, err)

	assert.Equal(t, 25, f.partQuantity(t, part.ID))
	assert.Equal(t, 25, updated.Quantity)
}

// Shrinking an entry gives stock back even when the part is at zero.
func TestStockOut_UpdateShrinkAlwaysSucceeds(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	part := f.createPart(t, "Brake Pad", 20, "10.00")

	entry, err := f.stockOut.Create(ctx, dto.StockOutRequest{
		SparePartID: part.ID,
		Quantity:    20,
		UnitPrice:   decimal.RequireFromString("12.00"),
		Date:        "2024-01-02",
	})
	require.NoError(t, err)
	require.Equal(t, 0, f.partQuantity(t, part.ID))

	_, err = f.stockOut.Update(ctx, entry.ID, dto.StockOutRequest{
		SparePartID: part.ID,
		Quantity:    5,
		UnitPrice:   decimal.RequireFromString("12.00"),
		Date:        "2024-01-02",
	})
	require.NoError(t, err)
	assert.Equal(t, 15, f.partQuantity(t, part.ID))
}

// An update whose delta exceeds the available stock is rejected and neither
// the entry nor the part changes.
func TestStockOut_UpdateInsufficientDelta(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	part := f.createPart(t, "Brake Pad", 30, "10.00")

	entry, err := f.stockOut.Create(ctx, dto.StockOutRequest{
		SparePartID: part.ID,
		Quantity:    20,
		UnitPrice:   decimal.RequireFromString("12.00"),
		Date:        "2024-01-02",
	})
	require.NoError(t, err)
	require.Equal(t, 10, f.partQuantity(t, part.ID))

	_, err = f.stockOut.Update(ctx, entry.ID, dto.StockOutRequest{
		SparePartID: part.ID,
		Quantity:    35, // delta of 15 but only 10 available
		UnitPrice:   decimal.RequireFromString("12.00"),
		Date:        "2024-01-02",
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 10, f.partQuantity(t, part.ID))
	got, err := f.stockOut.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, got.Quantity)
}

// Moving an entry to another part credits the old part and debits the new
// one in the same transaction.
func TestStockOut_UpdateCrossPart(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	partA := f.createPart(t, "Brake Pad", 50, "10.00")
	partB := f.createPart(t, "Oil Filter", 40, "5.00")

	entry, err := f.stockOut.Create(ctx, dto.StockOutRequest{
		SparePartID: partA.ID,
		Quantity:    20,
		UnitPrice:   decimal.RequireFromString("12.00"),
		Date:        "2024-01-02",
	})
	require.NoError(t, err)
	require.Equal(t, 30, f.partQuantity(t, partA.ID))

	updated, err := f.stockOut.Update(ctx, entry.ID, dto.StockOutRequest{
		SparePartID: partB.ID,
		Quantity:    15,
		UnitPrice:   decimal.RequireFromString("6.00"),
		Date:        "2024-01-02",
	})
	require.NoError(t, err)

	assert.Equal(t, 50, f.partQuantity(t, partA.ID), "old part must be credited back")
	assert.Equal(t, 25, f.partQuantity(t, partB.ID), "new part must be debited")
	assert.Equal(t, partB.ID, updated.SparePartID)
	assert.Equal(t, "Oil Filter", updated.SparePartName)
}

// A cross-part move that the new part cannot cover rolls back entirely:
// neither part's quantity moves and the entry keeps its old part.
func TestStockOut_UpdateCrossPartInsufficientRollsBack(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	partA := f.createPart(t, "Brake Pad", 50, "10.00")
	partB := f.createPart(t, "Oil Filter", 5, "5.00")

	entry, err := f.stockOut.Create(ctx, dto.StockOutRequest{
		SparePartID: partA.ID,
		Quantity:    20,
		UnitPrice:   decimal.RequireFromString("12.00"),
		Date:        "2024-01-02",
	})
	require.NoError(t, err)

	_, err = f.stockOut.Update(ctx, entry.ID, dto.StockOutRequest{
		SparePartID: partB.ID,
		Quantity:    10,
		UnitPrice:   decimal.RequireFromString("6.00"),
		Date:        "2024-01-02",
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 30, f.partQuantity(t, partA.ID))
	assert.Equal(t, 5, f.partQuantity(t, partB.ID))
	got, err := f.stockOut.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, partA.ID, got.SparePartID)
}

// Deleting an entry restores its full quantity to the part.
func TestStockOut_DeleteRestoresQuantity(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	part := f.createPart(t, "Brake Pad", 50, "10.00")

	entry, err := f.stockOut.Create(ctx, dto.StockOutRequest{
		SparePartID: part.ID,
		Quantity:    25,
		UnitPrice:   decimal.RequireFromString("12.00"),
		Date:        "2024-01-02",
	})
	require.NoError(t, err)
	require.Equal(t, 25, f.partQuantity(t, part.ID))

	require.NoError(t, f.stockOut.Delete(ctx, entry.ID))
	assert.Equal(t, 50, f.partQuantity(t, part.ID))

	_, err = f.stockOut.GetByID(ctx, entry.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Deleting twice succeeds both times but only restores once.
func TestStockOut_DeleteIsIdempotent(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	part := f.createPart(t, "Brake Pad", 50, "10.00")

	entry, err := f.stockOut.Create(ctx, dto.StockOutRequest{
		SparePartID: part.ID,
		Quantity:    10,
		UnitPrice:   decimal.RequireFromString("12.00"),
		Date:        "2024-01-02",
	})
	require.NoError(t, err)

	require.NoError(t, f.stockOut.Delete(ctx, entry.ID))
	require.NoError(t, f.stockOut.Delete(ctx, entry.ID))
	assert.Equal(t, 50, f.partQuantity(t, part.ID))
}

// Deleting an entry whose part is gone still removes the entry; the restore
// is skipped with a warning instead of failing.
func TestStockOut_DeleteWithMissingPart(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	part := f.createPart(t, "Brake Pad", 50, "10.00")

	entry, err := f.stockOut.Create(ctx, dto.StockOutRequest{
		SparePartID: part.ID,
		Quantity:    10,
		UnitPrice:   decimal.RequireFromString("12.00"),
		Date:        "2024-01-02",
	})
	require.NoError(t, err)

	require.NoError(t, f.parts.Delete(ctx, part.ID))
	require.NoError(t, f.stockOut.Delete(ctx, entry.ID))

	_, err = f.stockOut.GetByID(ctx, entry.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Entries outlive their part: listings fall back to "Unknown".
func TestStockOut_OrphanedEntryAnnotatedUnknown(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	part := f.createPart(t, "Brake Pad", 50, "10.00")

	entry, err := f.stockOut.Create(ctx, dto.StockOutRequest{
		SparePartID: part.ID,
		Quantity:    10,
		UnitPrice:   decimal.RequireFromString("12.00"),
		Date:        "2024-01-02",
	})
	require.NoError(t, err)
	require.NoError(t, f.parts.Delete(ctx, part.ID))

	got, err := f.stockOut.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "Unknown", got.SparePartName)
	assert.Equal(t, "Unknown", got.Category)
}

// ListByDate filters on the movement date, strict YYYY-MM-DD only.
func TestStockOut_ListByDate(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	part := f.createPart(t, "Brake Pad", 100, "10.00")

	for _, date := range []string{"2024-01-02", "2024-01-02T15:04:05Z", "2024-01-03"} {
		_, err := f.stockOut.Create(ctx, dto.StockOutRequest{
			SparePartID: part.ID,
			Quantity:    5,
			UnitPrice:   decimal.RequireFromString("12.00"),
			Date:        date,
		})
		require.NoError(t, err)
	}

	entries, err := f.stockOut.ListByDate(ctx, "2024-01-02")
	require.NoError(t, err)
	assert.Len(t, entries, 2, "both the midnight and the mid-day entry belong to 2024-01-02")

	_, err = f.stockOut.ListByDate(ctx, "2024-1-2")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Concurrent stock-outs against one part never take more than the available
// stock: with 30 on hand and ten withdrawals of 5 racing, exactly six succeed,
// the rest fail with ErrInsufficientStock and the quantity lands on 0.
func TestStockOut_ConcurrentCreatesNeverOversell(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	part := f.createPart(t, "Brake Pad", 30, "10.00")

	const workers = 10
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.stockOut.Create(ctx, dto.StockOutRequest{
				SparePartID: part.ID,
				Quantity:    5,
				UnitPrice:   decimal.RequireFromString("12.00"),
				Date:        "2024-01-02",
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var ok, insufficient int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, domain.ErrInsufficientStock):
			insufficient++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 6, ok)
	assert.Equal(t, 4, insufficient)
	assert.Equal(t, 0, f.partQuantity(t, part.ID))

	entries, err := f.stockOut.List(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 6, "only the successful withdrawals leave entries")
}
