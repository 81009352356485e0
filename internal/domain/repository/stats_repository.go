package repository

import "context"

// StatsRepository consultas de conteo para el panel de administración.
type StatsRepository interface {
	CountUsers(ctx context.Context) (int64, error)
	CountStores(ctx context.Context) (int64, error)
	CountRatings(ctx context.Context) (int64, error)
}
