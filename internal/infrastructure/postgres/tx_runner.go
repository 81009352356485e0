package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	apprating "github.com/jhoicas/StoreRating-api/internal/application/rating"
	"github.com/jhoicas/StoreRating-api/internal/application/usecase"
	"github.com/jhoicas/StoreRating-api/internal/domain/repository"
)

var (
	_ apprating.TxRunner       = (*TxRunner)(nil)
	_ usecase.AccountsTxRunner = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunRating transacción del libro de calificaciones (upsert + promedio).
func (r *TxRunner) RunRating(ctx context.Context, fn func(
	storeRepo repository.StoreRepository,
	ratingRepo repository.RatingRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewStoreRepository(tx), NewRatingRepository(tx))
	})
}

// RunAccounts transacción de alta de usuario y tienda juntos.
func (r *TxRunner) RunAccounts(ctx context.Context, fn func(
	userRepo repository.UserRepository,
	storeRepo repository.StoreRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewUserRepository(tx), NewStoreRepository(tx))
	})
}

// run inicia la transacción, ejecuta fn y hace Commit o Rollback.
// Fallas de serialización o deadlock se devuelven como domain.ErrConflict.
func (r *TxRunner) run(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return mapTxError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return mapTxError(fmt.Errorf("commit transaction: %w", err))
	}
	return nil
}
