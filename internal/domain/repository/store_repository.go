package repository

import (
	"context"

	"github.com/jhoicas/StoreRating-api/internal/domain/entity"
	"github.com/jhoicas/StoreRating-api/internal/domain/rating"
)

// StoreRepository define el puerto de persistencia para Store.
// Los Get devuelven (nil, nil) cuando la tienda no existe.
type StoreRepository interface {
	Create(ctx context.Context, store *entity.Store) error
	GetByID(ctx context.Context, id string) (*entity.Store, error)
	GetByOwner(ctx context.Context, ownerID string) (*entity.Store, error)
	// ListForUser incluye la calificación propia de callerID en cada fila.
	ListForUser(ctx context.Context, callerID string, filter StoreFilter, sort rating.Sort) ([]StoreListRow, error)
	ListForAdmin(ctx context.Context, filter StoreFilter, sort rating.Sort) ([]StoreListRow, error)
}
