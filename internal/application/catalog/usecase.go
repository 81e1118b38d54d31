package catalog

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

// SparePartUseCase owns the spare-parts catalog. It never adjusts quantity:
// that field belongs to the stock ledgers, and Update does not accept it.
type SparePartUseCase struct {
	partRepo repository.SparePartRepository
}

// NewSparePartUseCase builds the use case.
func NewSparePartUseCase(partRepo repository.SparePartRepository) *SparePartUseCase {
	return &SparePartUseCase{partRepo: partRepo}
}

// Create registers a new part. Quantity defaults to 0 when omitted.
func (uc *SparePartUseCase) Create(ctx context.Context, in dto.CreateSparePartRequest) (*dto.SparePartResponse, error) {
	if in.Name == "" || in.Category == "" {
		return nil, fmt.Errorf("%w: name, category, and unit price are required", domain.ErrInvalidInput)
	}
	if !in.UnitPrice.IsPositive() {
		return nil, fmt.Errorf("%w: unit_price must be positive", domain.ErrInvalidInput)
	}
	quantity := 0
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, fmt.Errorf("%w: quantity cannot be negative", domain.ErrInvalidInput)
		}
		quantity = *in.Quantity
	}

	now := time.Now()
	part := &entity.SparePart{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Category:  in.Category,
		Quantity:  quantity,
		UnitPrice: in.UnitPrice,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.partRepo.Create(ctx, part); err != nil {
		return nil, err
	}
	return toResponse(part), nil
}

// GetByID returns one part.
func (uc *SparePartUseCase) GetByID(ctx context.Context, id string) (*dto.SparePartResponse, error) {
	part, err := uc.partRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, domain.ErrNotFound
	}
	return toResponse(part), nil
}

// List returns all parts, name ascending.
func (uc *SparePartUseCase) List(ctx context.Context) ([]dto.SparePartResponse, error) {
	parts, err := uc.partRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SparePartResponse, 0, len(parts))
	for _, p := range parts {
		out = append(out, *toResponse(p))
	}
	return out, nil
}

// Update rewrites name, category and unit price. Quantity is untouchable here.
func (uc *SparePartUseCase) Update(ctx context.Context, id string, in dto.UpdateSparePartRequest) (*dto.SparePartResponse, error) {
	if in.Name == "" || in.Category == "" {
		return nil, fmt.Errorf("%w: name, category, and unit price are required", domain.ErrInvalidInput)
	}
	if !in.UnitPrice.IsPositive() {
		return nil, fmt.Errorf("%w: unit_price must be positive", domain.ErrInvalidInput)
	}
	part, err := uc.partRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, domain.ErrNotFound
	}
	part.Name = in.Name
	part.Category = in.Category
	part.UnitPrice = in.UnitPrice
	part.UpdatedAt = time.Now()
	if err := uc.partRepo.Update(ctx, part); err != nil {
		return nil, err
	}
	return toResponse(part), nil
}

// Delete removes a part. Ledger entries that reference it are kept and show up
// as "Unknown" in reports; there is no cascade and no guard.
func (uc *SparePartUseCase) Delete(ctx context.Context, id string) error {
	deleted, err := uc.partRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

func toResponse(p *entity.SparePart) *dto.SparePartResponse {
	return &dto.SparePartResponse{
		ID:         p.ID,
		Name:       p.Name,
		Category:   p.Category,
		Quantity:   p.Quantity,
		UnitPrice:  p.UnitPrice,
		TotalValue: p.TotalValue(),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
