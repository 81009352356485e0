// Package analytics contiene el resumen del panel de administración.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/StoreRating-api/internal/application/dto"
	"github.com/jhoicas/StoreRating-api/internal/domain/repository"
)

// DashboardUseCase totales de usuarios, tiendas y calificaciones.
//
// Fuente de datos: StatsRepository (consultas read-only).
type DashboardUseCase struct {
	statsRepo repository.StatsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(statsRepo repository.StatsRepository) *DashboardUseCase {
	return &DashboardUseCase{statsRepo: statsRepo}
}

// GetSummary lanza los tres conteos en paralelo y espera a todos.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.AdminDashboardResponse, error) {
	type countResult struct {
		n   int64
		err error
	}

	usersCh := make(chan countResult, 1)
	storesCh := make(chan countResult, 1)
	ratingsCh := make(chan countResult, 1)

	go func() {
		n, err := uc.statsRepo.CountUsers(ctx)
		usersCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.statsRepo.CountStores(ctx)
		storesCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.statsRepo.CountRatings(ctx)
		ratingsCh <- countResult{n, err}
	}()

	users := <-usersCh
	stores := <-storesCh
	ratings := <-ratingsCh

	if users.err != nil {
		return nil, fmt.Errorf("dashboard: usuarios: %w", users.err)
	}
	if stores.err != nil {
		return nil, fmt.Errorf("dashboard: tiendas: %w", stores.err)
	}
	if ratings.err != nil {
		return nil, fmt.Errorf("dashboard: calificaciones: %w", ratings.err)
	}

	return &dto.AdminDashboardResponse{
		TotalUsers:   users.n,
		TotalStores:  stores.n,
		TotalRatings: ratings.n,
	}, nil
}
