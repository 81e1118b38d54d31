package memory

import (
	"context"
	"sync"

	"github.com/smartpark/sims-api/internal/application/ledger"
	"github.com/smartpark/sims-api/internal/domain/repository"
)

var _ ledger.TxRunner = (*TxRunner)(nil)

// TxRunner runs callbacks against the store with transaction semantics:
// transactions serialize on a mutex (so the row locks the postgres runner
// provides are subsumed), and a failed callback restores the pre-transaction
// snapshot, leaving no partial application behind. The rollback restores the
// whole store, so every write that can overlap a transaction must itself go
// through Run; a direct repository write racing a failing transaction would be
// discarded with it.
type TxRunner struct {
	txMu  sync.Mutex
	store *Store
}

// NewTxRunner builds the runner over the store.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run executes fn with repositories bound to the store, rolling back to a
// snapshot when fn returns an error.
func (r *TxRunner) Run(ctx context.Context, fn func(
	partRepo repository.SparePartRepository,
	stockInRepo repository.StockInRepository,
	stockOutRepo repository.StockOutRepository,
) error) error {
	r.txMu.Lock()
	defer r.txMu.Unlock()

	snap := r.store.snapshot()
	err := fn(
		NewSparePartRepository(r.store),
		NewStockInRepository(r.store),
		NewStockOutRepository(r.store),
	)
	if err != nil {
		r.store.restore(snap)
		return err
	}
	return nil
}
