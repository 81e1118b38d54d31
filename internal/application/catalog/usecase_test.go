package catalog_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartpark/sims-api/internal/application/catalog"
	"github.com/smartpark/sims-api/internal/application/dto"
	"github.com/smartpark/sims-api/internal/domain"
	"github.com/smartpark/sims-api/internal/infrastructure/memory"
)

func newUseCase() *catalog.SparePartUseCase {
	return catalog.NewSparePartUseCase(memory.NewSparePartRepository(memory.NewStore()))
}

func TestSparePart_CreateDefaultsQuantityToZero(t *testing.T) {
	uc := newUseCase()

	part, err := uc.Create(context.Background(), dto.CreateSparePartRequest{
		Name:      "Brake Pad",
		Category:  "Brakes",
		UnitPrice: decimal.RequireFromString("10.00"),
	})
	require.NoError(t, err)

	assert.Equal(t, 0, part.Quantity)
	assert.True(t, part.TotalValue.IsZero())
	assert.NotEmpty(t, part.ID)
}

func TestSparePart_CreateWithInitialQuantity(t *testing.T) {
	uc := newUseCase()
	qty := 12

	part, err := uc.Create(context.Background(), dto.CreateSparePartRequest{
		Name:      "Brake Pad",
		Category:  "Brakes",
		Quantity:  &qty,
		UnitPrice: decimal.RequireFromString("10.00"),
	})
	require.NoError(t, err)

	assert.Equal(t, 12, part.Quantity)
	assert.True(t, part.TotalValue.Equal(decimal.RequireFromString("120.00")),
		"total value should be quantity * unit price, got %s", part.TotalValue)
}

func TestSparePart_CreateValidation(t *testing.T) {
	uc := newUseCase()
	negative := -1

	cases := []struct {
		name string
		in   dto.CreateSparePartRequest
	}{
		{"missing name", dto.CreateSparePartRequest{Category: "Brakes", UnitPrice: decimal.New(1, 0)}},
		{"missing category", dto.CreateSparePartRequest{Name: "Brake Pad", UnitPrice: decimal.New(1, 0)}},
		{"zero unit price", dto.CreateSparePartRequest{Name: "Brake Pad", Category: "Brakes"}},
		{"negative quantity", dto.CreateSparePartRequest{Name: "Brake Pad", Category: "Brakes", Quantity: &negative, UnitPrice: decimal.New(1, 0)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(context.Background(), tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestSparePart_UpdateNeverTouchesQuantity(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()
	qty := 7

	part, err := uc.Create(ctx, dto.CreateSparePartRequest{
		Name:      "Brake Pad",
		Category:  "Brakes",
		Quantity:  &qty,
		UnitPrice: decimal.RequireFromString("10.00"),
	})
	require.NoError(t, err)

	updated, err := uc.Update(ctx, part.ID, dto.UpdateSparePartRequest{
		Name:      "Brake Pad XL",
		Category:  "Brakes",
		UnitPrice: decimal.RequireFromString("11.50"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Brake Pad XL", updated.Name)
	assert.Equal(t, 7, updated.Quantity, "catalog updates must not change quantity")
	assert.True(t, updated.UnitPrice.Equal(decimal.RequireFromString("11.50")))
}

func TestSparePart_UpdateNotFound(t *testing.T) {
	uc := newUseCase()
	_, err := uc.Update(context.Background(), "missing", dto.UpdateSparePartRequest{
		Name:      "X",
		Category:  "Y",
		UnitPrice: decimal.New(1, 0),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSparePart_ListSortedByName(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()
	for _, name := range []string{"Oil Filter", "Air Filter", "Brake Pad"} {
		_, err := uc.Create(ctx, dto.CreateSparePartRequest{
			Name:      name,
			Category:  "Misc",
			UnitPrice: decimal.New(1, 0),
		})
		require.NoError(t, err)
	}

	parts, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, parts, 3)
	assert.Equal(t, "Air Filter", parts[0].Name)
	assert.Equal(t, "Brake Pad", parts[1].Name)
	assert.Equal(t, "Oil Filter", parts[2].Name)
}

func TestSparePart_DeleteThenGet(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	part, err := uc.Create(ctx, dto.CreateSparePartRequest{
		Name:      "Brake Pad",
		Category:  "Brakes",
		UnitPrice: decimal.New(1, 0),
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, part.ID))
	_, err = uc.GetByID(ctx, part.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, uc.Delete(ctx, part.ID), domain.ErrNotFound)
}
