package ledger

import (
	"context"

	"github.com/smartpark/sims-api/internal/domain/repository"
)

// TxRunner executes a function inside a database transaction, passing
// repositories bound to that transaction. Every ledger transition that reads
// and then writes a spare part's quantity runs through it, so the entry write
// and the quantity adjustment commit together or not at all.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		partRepo repository.SparePartRepository,
		stockInRepo repository.StockInRepository,
		stockOutRepo repository.StockOutRepository,
	) error) error
}
