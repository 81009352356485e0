package memory

import (
	"context"

	apprating "github.com/jhoicas/StoreRating-api/internal/application/rating"
	"github.com/jhoicas/StoreRating-api/internal/application/usecase"
	"github.com/jhoicas/StoreRating-api/internal/domain/repository"
)

var (
	_ apprating.TxRunner       = (*TxRunner)(nil)
	_ usecase.AccountsTxRunner = (*TxRunner)(nil)
)

// TxRunner serializa las transacciones con el lock de escritura de DB.
type TxRunner struct {
	db *DB
}

// NewTxRunner construye el runner.
func NewTxRunner(db *DB) *TxRunner {
	return &TxRunner{db: db}
}

// RunRating ver postgres.TxRunner.RunRating.
func (r *TxRunner) RunRating(ctx context.Context, fn func(
	storeRepo repository.StoreRepository,
	ratingRepo repository.RatingRepository,
) error) error {
	return r.run(ctx, func(c conn) error {
		return fn(&StoreRepo{c: c}, &RatingRepo{c: c})
	})
}

// RunAccounts ver postgres.TxRunner.RunAccounts.
func (r *TxRunner) RunAccounts(ctx context.Context, fn func(
	userRepo repository.UserRepository,
	storeRepo repository.StoreRepository,
) error) error {
	return r.run(ctx, func(c conn) error {
		return fn(&UserRepo{c: c}, &StoreRepo{c: c})
	})
}

func (r *TxRunner) run(ctx context.Context, fn func(c conn) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	tx := r.db.data.clone()
	if err := fn(conn{db: r.db, tx: tx}); err != nil {
		return err
	}
	r.db.data = tx
	return nil
}
