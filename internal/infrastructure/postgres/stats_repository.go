package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/StoreRating-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo conteos read-only para el panel de administración.
type StatsRepo struct {
	pool *pgxpool.Pool
}

// NewStatsRepository construye el adaptador.
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool}
}

func (r *StatsRepo) CountUsers(ctx context.Context) (int64, error) {
	return r.count(ctx, "users")
}

func (r *StatsRepo) CountStores(ctx context.Context) (int64, error) {
	return r.count(ctx, "stores")
}

func (r *StatsRepo) CountRatings(ctx context.Context) (int64, error) {
	return r.count(ctx, "ratings")
}

// count table es siempre una constante de este archivo.
func (r *StatsRepo) count(ctx context.Context, table string) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM `+table).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}
