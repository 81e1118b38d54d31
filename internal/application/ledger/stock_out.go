package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smartpark/sims-api/internal/application/dto"
	"github.com/smartpark/sims-api/internal/domain"
	"github.com/smartpark/sims-api/internal/domain/entity"
	"github.com/smartpark/sims-api/internal/domain/repository"
	"github.com/smartpark/sims-api/pkg/logger"
)

// StockOutUseCase is the core of the system: every create, update and delete
// reads and then writes the owning part's quantity, so each transition runs as
// one transaction with the part row(s) locked. An update reverses the prior
// quantity effect before applying the new one; a delete restores it.
type StockOutUseCase struct {
	txRunner     TxRunner
	partRepo     repository.SparePartRepository
	stockOutRepo repository.StockOutRepository
	log          *logger.Logger
}

// NewStockOutUseCase builds the use case. partRepo and stockOutRepo are
// pool-bound and serve the read paths; writes go through txRunner.
func NewStockOutUseCase(txRunner TxRunner, partRepo repository.SparePartRepository, stockOutRepo repository.StockOutRepository, log *logger.Logger) *StockOutUseCase {
	return &StockOutUseCase{txRunner: txRunner, partRepo: partRepo, stockOutRepo: stockOutRepo, log: log}
}

func validateStockOutRequest(in dto.StockOutRequest) (time.Time, error) {
	if in.SparePartID == "" {
		return time.Time{}, fmt.Errorf("%w: spare_part_id is required", domain.ErrInvalidInput)
	}
	if in.Quantity <= 0 {
		return time.Time{}, fmt.Errorf("%w: stock_out_quantity must be a positive integer", domain.ErrInvalidInput)
	}
	if !in.UnitPrice.IsPositive() {
		return time.Time{}, fmt.Errorf("%w: stock_out_unit_price must be positive", domain.ErrInvalidInput)
	}
	return ParseMovementDate(in.Date)
}

// Create persists a new entry and decrements the part's quantity, atomically.
// A candidate quantity above the currently available stock is rejected with
// ErrInsufficientStock and the part is left unchanged.
func (uc *StockOutUseCase) Create(ctx context.Context, in dto.StockOutRequest) (*dto.StockOutResponse, error) {
	date, err := validateStockOutRequest(in)
	if err != nil {
		return nil, err
	}

	entry := &entity.StockOutEntry{
		ID:          uuid.New().String(),
		SparePartID: in.SparePartID,
		Quantity:    in.Quantity,
		UnitPrice:   in.UnitPrice,
		Date:        date,
		CreatedAt:   time.Now(),
	}

	var part *entity.SparePart
	err = uc.txRunner.Run(ctx, func(
		partRepo repository.SparePartRepository,
		_ repository.StockInRepository,
		stockOutRepo repository.StockOutRepository,
	) error {
		part, err = partRepo.GetForUpdate(ctx, in.SparePartID)
		if err != nil {
			return err
		}
		if part == nil {
			return domain.ErrNotFound
		}
		if part.Quantity < entry.Quantity {
			return domain.ErrInsufficientStock
		}
		if err := stockOutRepo.Create(ctx, entry); err != nil {
			return err
		}
		part.Quantity -= entry.Quantity
		return partRepo.UpdateQuantity(ctx, part.ID, part.Quantity)
	})
	if err != nil {
		return nil, err
	}
	return toStockOutResponse(entry, part), nil
}

// Update rewrites an entry, reversing its previous quantity effect.
//
// Same part: only the delta between the new and old quantity is checked and
// applied, so shrinking an entry always succeeds and growing it needs only the
// difference in stock. Part changed: the old part is credited with the old
// quantity and the new part debited with the new one, both inside the same
// transaction; if the new part lacks stock the whole update is rolled back.
func (uc *StockOutUseCase) Update(ctx context.Context, id string, in dto.StockOutRequest) (*dto.StockOutResponse, error) {
	date, err := validateStockOutRequest(in)
	if err != nil {
		return nil, err
	}

	var (
		entry *entity.StockOutEntry
		part  *entity.SparePart
	)
	err = uc.txRunner.Run(ctx, func(
		partRepo repository.SparePartRepository,
		_ repository.StockInRepository,
		stockOutRepo repository.StockOutRepository,
	) error {
		// Re-read inside the transaction so concurrent updates to the same
		// entry serialize on the part row lock below.
		entry, err = stockOutRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if entry == nil {
			return domain.ErrNotFound
		}

		if entry.SparePartID == in.SparePartID {
			part, err = partRepo.GetForUpdate(ctx, in.SparePartID)
			if err != nil {
				return err
			}
			if part == nil {
				return domain.ErrNotFound
			}
			// delta > 0 takes more stock; delta < 0 gives some back; 0 is a no-op.
			delta := in.Quantity - entry.Quantity
			if delta > 0 && part.Quantity < delta {
				return domain.ErrInsufficientStock
			}
			part.Quantity -= delta
			if err := partRepo.UpdateQuantity(ctx, part.ID, part.Quantity); err != nil {
				return err
			}
		} else {
			oldPart, newPart, err := lockPartPair(ctx, partRepo, entry.SparePartID, in.SparePartID)
			if err != nil {
				return err
			}
			if newPart.Quantity < in.Quantity {
				return domain.ErrInsufficientStock
			}
			oldPart.Quantity += entry.Quantity
			newPart.Quantity -= in.Quantity
			if err := partRepo.UpdateQuantity(ctx, oldPart.ID, oldPart.Quantity); err != nil {
				return err
			}
			if err := partRepo.UpdateQuantity(ctx, newPart.ID, newPart.Quantity); err != nil {
				return err
			}
			part = newPart
		}

		entry.SparePartID = in.SparePartID
		entry.Quantity = in.Quantity
		entry.UnitPrice = in.UnitPrice
		entry.Date = date
		return stockOutRepo.Update(ctx, entry)
	})
	if err != nil {
		return nil, err
	}
	return toStockOutResponse(entry, part), nil
}

// lockPartPair locks two distinct part rows in ascending ID order, so
// concurrent cross-part updates cannot deadlock. Both parts must exist.
func lockPartPair(ctx context.Context, partRepo repository.SparePartRepository, oldID, newID string) (oldPart, newPart *entity.SparePart, err error) {
	firstID, secondID := oldID, newID
	if secondID < firstID {
		firstID, secondID = secondID, firstID
	}
	first, err := partRepo.GetForUpdate(ctx, firstID)
	if err != nil {
		return nil, nil, err
	}
	second, err := partRepo.GetForUpdate(ctx, secondID)
	if err != nil {
		return nil, nil, err
	}
	if first == nil || second == nil {
		return nil, nil, domain.ErrNotFound
	}
	if first.ID == oldID {
		return first, second, nil
	}
	return second, first, nil
}

// Delete restores the entry's quantity to its part and removes the entry.
// Deleting an entry that no longer exists is a no-op success so clients can
// retry safely. A missing part only skips the restoration.
func (uc *StockOutUseCase) Delete(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		partRepo repository.SparePartRepository,
		_ repository.StockInRepository,
		stockOutRepo repository.StockOutRepository,
	) error {
		entry, err := stockOutRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if entry == nil {
			return nil
		}
		part, err := partRepo.GetForUpdate(ctx, entry.SparePartID)
		if err != nil {
			return err
		}
		if part == nil {
			uc.log.Warn().
				Str("entry_id", entry.ID).
				Str("spare_part_id", entry.SparePartID).
				Msg("stock-out delete: part no longer exists, skipping quantity restore")
		} else {
			part.Quantity += entry.Quantity
			if err := partRepo.UpdateQuantity(ctx, part.ID, part.Quantity); err != nil {
				return err
			}
		}
		_, err = stockOutRepo.Delete(ctx, entry.ID)
		return err
	})
}

// GetByID returns one entry annotated with its part.
func (uc *StockOutUseCase) GetByID(ctx context.Context, id string) (*dto.StockOutResponse, error) {
	entry, err := uc.stockOutRepo.GetByID(ctx, id)
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
	return toStockOutResponse(entry, part), nil
}

// List returns all entries, movement date descending, annotated with their parts.
func (uc *StockOutUseCase) List(ctx context.Context) ([]dto.StockOutResponse, error) {
	entries, err := uc.stockOutRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return uc.annotate(ctx, entries)
}

// ListByDate returns the entries of one calendar day, newest created first.
// The date must be a strict YYYY-MM-DD.
func (uc *StockOutUseCase) ListByDate(ctx context.Context, date string) ([]dto.StockOutResponse, error) {
	from, to, err := DayRange(date)
	if err != nil {
		return nil, err
	}
	entries, err := uc.stockOutRepo.ListByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return uc.annotate(ctx, entries)
}

func (uc *StockOutUseCase) annotate(ctx context.Context, entries []*entity.StockOutEntry) ([]dto.StockOutResponse, error) {
	parts, err := partIndex(ctx, uc.partRepo)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockOutResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, *toStockOutResponse(e, parts[e.SparePartID]))
	}
	return out, nil
}

func toStockOutResponse(e *entity.StockOutEntry, part *entity.SparePart) *dto.StockOutResponse {
	name, category := partLabel(part)
	return &dto.StockOutResponse{
		ID:            e.ID,
		SparePartID:   e.SparePartID,
		SparePartName: name,
		Category:      category,
		Quantity:      e.Quantity,
		UnitPrice:     e.UnitPrice,
		TotalPrice:    e.UnitPrice.Mul(decimal.NewFromInt(int64(e.Quantity))),
		Date:          e.Date,
		CreatedAt:     e.CreatedAt,
	}
}
