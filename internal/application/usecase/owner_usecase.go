package usecase

import (
	"context"

	"github.com/jhoicas/StoreRating-api/internal/application/dto"
	"github.com/jhoicas/StoreRating-api/internal/domain"
	domrating "github.com/jhoicas/StoreRating-api/internal/domain/rating"
	"github.com/jhoicas/StoreRating-api/internal/domain/repository"
)

// OwnerUseCase panel del dueño de tienda: su tienda, promedio y quién la calificó.
type OwnerUseCase struct {
	storeRepo  repository.StoreRepository
	ratingRepo repository.RatingRepository
}

// NewOwnerUseCase construye el caso de uso.
func NewOwnerUseCase(storeRepo repository.StoreRepository, ratingRepo repository.RatingRepository) *OwnerUseCase {
	return &OwnerUseCase{storeRepo: storeRepo, ratingRepo: ratingRepo}
}

// Dashboard devuelve domain.ErrStoreNotFound si el dueño no tiene tienda asignada.
func (uc *OwnerUseCase) Dashboard(ctx context.Context, ownerID string) (*dto.OwnerDashboardResponse, error) {
	store, err := uc.storeRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrStoreNotFound
	}
	summary, err := uc.ratingRepo.Summary(ctx, store.ID)
	if err != nil {
		return nil, err
	}
	raters, err := uc.ratingRepo.ListRaters(ctx, store.ID)
	if err != nil {
		return nil, err
	}
	out := &dto.OwnerDashboardResponse{
		Store:         *toStoreResponse(store),
		AverageRating: domrating.FormatAverage(summary.Average),
		TotalRatings:  summary.Count,
		Raters:        make([]dto.RaterDTO, 0, len(raters)),
	}
	for _, r := range raters {
		out.Raters = append(out.Raters, dto.RaterDTO{
			UserID:    r.UserID,
			Name:      r.Name,
			Email:     r.Email,
			Rating:    r.Value,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		})
	}
	return out, nil
}
