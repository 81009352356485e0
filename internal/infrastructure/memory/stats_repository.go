package memory

import (
	"context"

	"github.com/jhoicas/StoreRating-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo conteos sobre db.
type StatsRepo struct {
	c conn
}

// NewStatsRepository construye el repositorio sobre db.
func NewStatsRepository(db *DB) *StatsRepo {
	return &StatsRepo{c: conn{db: db}}
}

func (r *StatsRepo) CountUsers(context.Context) (int64, error) {
	var n int64
	err := r.c.read(func(d *dataset) error { n = int64(len(d.users)); return nil })
	return n, err
}

func (r *StatsRepo) CountStores(context.Context) (int64, error) {
	var n int64
	err := r.c.read(func(d *dataset) error { n = int64(len(d.stores)); return nil })
	return n, err
}

func (r *StatsRepo) CountRatings(context.Context) (int64, error) {
	var n int64
	err := r.c.read(func(d *dataset) error { n = int64(len(d.ratings)); return nil })
	return n, err
}
