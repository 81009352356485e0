package rating

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/StoreRating-api/internal/application/dto"
	"github.com/jhoicas/StoreRating-api/internal/domain"
	"github.com/jhoicas/StoreRating-api/internal/domain/entity"
	domrating "github.com/jhoicas/StoreRating-api/internal/domain/rating"
	"github.com/jhoicas/StoreRating-api/internal/domain/repository"
)

// SubmitRatingUseCase registra o actualiza la calificación de un usuario sobre una tienda
// dentro de una transacción (SELECT FOR UPDATE + INSERT/UPDATE + promedio) con Commit/Rollback.
type SubmitRatingUseCase struct {
	txRunner   TxRunner
	ratingRepo repository.RatingRepository
	now        func() time.Time
}

// NewSubmitRatingUseCase construye el caso de uso. ratingRepo se usa para lecturas fuera de transacción.
func NewSubmitRatingUseCase(txRunner TxRunner, ratingRepo repository.RatingRepository) *SubmitRatingUseCase {
	return &SubmitRatingUseCase{txRunner: txRunner, ratingRepo: ratingRepo, now: time.Now}
}

// SubmitRatingInput entrada de Submit.
type SubmitRatingInput struct {
	UserID  string
	StoreID string
	Value   int
}

// Submit aplica la semántica upsert: si (usuario, tienda) ya tiene fila, actualiza valor y updated_at;
// si no, inserta con created_at = updated_at = ahora. Devuelve el promedio recalculado con un decimal.
//
// Errores:
//   - domain.ErrInvalidRating   valor fuera de [1,5] (sin cambios de estado).
//   - domain.ValidationError    storeID no es un id válido.
//   - domain.ErrStoreNotFound   la tienda no existe (rollback).
//   - domain.ErrConflict        la transacción perdió contra una escritura concurrente (rollback, reintentable).
func (uc *SubmitRatingUseCase) Submit(ctx context.Context, in SubmitRatingInput) (*dto.SubmitRatingResponse, error) {
	if err := domrating.ValidateValue(in.Value); err != nil {
		return nil, err
	}
	if _, err := uuid.Parse(in.StoreID); err != nil {
		return nil, domain.NewValidationError("storeId", "id de tienda inválido")
	}
	if in.UserID == "" {
		return nil, domain.ErrUnauthorized
	}

	var out *dto.SubmitRatingResponse
	err := uc.txRunner.RunRating(ctx, func(
		storeRepo repository.StoreRepository,
		ratingRepo repository.RatingRepository,
	) error {
		store, err := storeRepo.GetByID(ctx, in.StoreID)
		if err != nil {
			return err
		}
		if store == nil {
			return domain.ErrStoreNotFound
		}

		// Bloquea la fila existente para que un envío concurrente del mismo usuario espere
		existing, err := ratingRepo.GetByUserAndStoreForUpdate(ctx, in.UserID, in.StoreID)
		if err != nil {
			return err
		}
		now := uc.now()
		created := false
		if existing != nil {
			existing.Value = in.Value
			existing.UpdatedAt = now
			if err := ratingRepo.Update(ctx, existing); err != nil {
				return err
			}
		} else {
			r := &entity.Rating{
				ID:        uuid.New().String(),
				UserID:    in.UserID,
				StoreID:   in.StoreID,
				Value:     in.Value,
				CreatedAt: now,
				UpdatedAt: now,
			}
			inserted, err := ratingRepo.Create(ctx, r)
			if err != nil {
				return err
			}
			created = inserted
		}

		summary, err := ratingRepo.Summary(ctx, in.StoreID)
		if err != nil {
			return err
		}
		out = &dto.SubmitRatingResponse{
			StoreID:       in.StoreID,
			AverageRating: domrating.FormatAverage(summary.Average),
			TotalRatings:  summary.Count,
			UserRating:    in.Value,
			Created:       created,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetUserRating devuelve la calificación propia del usuario sobre la tienda.
func (uc *SubmitRatingUseCase) GetUserRating(ctx context.Context, userID, storeID string) (*dto.UserRatingResponse, error) {
	if _, err := uuid.Parse(storeID); err != nil {
		return nil, domain.NewValidationError("id", "id de tienda inválido")
	}
	r, err := uc.ratingRepo.GetByUserAndStore(ctx, userID, storeID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrRatingNotFound
	}
	return &dto.UserRatingResponse{
		StoreID:   r.StoreID,
		Rating:    r.Value,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}, nil
}
