package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/smartpark/sims-api/internal/application/dto"
	"github.com/smartpark/sims-api/internal/domain"
	"github.com/smartpark/sims-api/internal/domain/entity"
	"github.com/smartpark/sims-api/internal/domain/repository"
)

// StockInUseCase records incoming stock. The ledger is append-only: every
// entry increments the owning part's quantity exactly once, inside one
// transaction with the part row locked.
type StockInUseCase struct {
	txRunner    TxRunner
	partRepo    repository.SparePartRepository
	stockInRepo repository.StockInRepository
}

// NewStockInUseCase builds the use case. partRepo and stockInRepo are
// pool-bound and serve the read paths; writes go through txRunner.
func NewStockInUseCase(txRunner TxRunner, partRepo repository.SparePartRepository, stockInRepo repository.StockInRepository) *StockInUseCase {
	return &StockInUseCase{txRunner: txRunner, partRepo: partRepo, stockInRepo: stockInRepo}
}

// Record validates the request and, atomically, persists the entry and
// increments the part's quantity.
func (uc *StockInUseCase) Record(ctx context.Context, in dto.CreateStockInRequest) (*dto.StockInResponse, error) {
	if in.SparePartID == "" {
		return nil, fmt.Errorf("%w: spare_part_id is required", domain.ErrInvalidInput)
	}
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: stock_in_quantity must be a positive integer", domain.ErrInvalidInput)
	}
	date, err := ParseMovementDate(in.Date)
	if err != nil {
		return nil, err
	}

	entry := &entity.StockInEntry{
		ID:          uuid.New().String(),
		SparePartID: in.SparePartID,
		Quantity:    in.Quantity,
		Date:        date,
		CreatedAt:   time.Now(),
	}

	var part *entity.SparePart
	err = uc.txRunner.Run(ctx, func(
		partRepo repository.SparePartRepository,
		stockInRepo repository.StockInRepository,
		_ repository.StockOutRepository,
	) error {
		// Lock the part row for the rest of the transaction.
		part, err = partRepo.GetForUpdate(ctx, in.SparePartID)
		if err != nil {
			return err
		}
		if part == nil {
			return domain.ErrNotFound
		}
		if err := stockInRepo.Create(ctx, entry); err != nil {
			return err
		}
		part.Quantity += entry.Quantity
		return partRepo.UpdateQuantity(ctx, part.ID, part.Quantity)
	})
	if err != nil {
		return nil, err
	}
	return toStockInResponse(entry, part), nil
}

// GetByID returns one entry annotated with its part.
func (uc *StockInUseCase) GetByID(ctx context.Context, id string) (*dto.StockInResponse, error) {
	entry, err := uc.stockInRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrNotFound
	}
	part, err := uc.partRepo.GetByID(ctx, entry.SparePartID)
	if err != nil {
		return nil, err
	}
	return toStockInResponse(entry, part), nil
}

// List returns all entries, movement date descending, annotated with their parts.
func (uc *StockInUseCase) List(ctx context.Context) ([]dto.StockInResponse, error) {
	entries, err := uc.stockInRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	parts, err := partIndex(ctx, uc.partRepo)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockInResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, *toStockInResponse(e, parts[e.SparePartID]))
	}
	return out, nil
}

func toStockInResponse(e *entity.StockInEntry, part *entity.SparePart) *dto.StockInResponse {
	name, category := partLabel(part)
	return &dto.StockInResponse{
		ID:            e.ID,
		SparePartID:   e.SparePartID,
		SparePartName: name,
		Category:      category,
		Quantity:      e.Quantity,
		Date:          e.Date,
		CreatedAt:     e.CreatedAt,
	}
}

// partIndex loads the catalog once for annotating a listing.
func partIndex(ctx context.Context, repo repository.SparePartRepository) (map[string]*entity.SparePart, error) {
	parts, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}
	idx := make(map[string]*entity.SparePart, len(parts))
	for _, p := range parts {
		idx[p.ID] = p
	}
	return idx, nil
}

// partLabel resolves display fields, falling back to "Unknown" for entries
// whose part was deleted after they were created.
func partLabel(part *entity.SparePart) (name, category string) {
	if part == nil {
		return "Unknown", "Unknown"
	}
	return part.Name, part.Category
}
