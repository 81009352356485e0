package repository

import (
	"context"

	"github.com/jhoicas/StoreRating-api/internal/domain/entity"
)

// RatingRepository define el puerto del libro de calificaciones.
// Usado dentro de transacciones para garantizar una sola fila por (usuario, tienda).
type RatingRepository interface {
	GetByUserAndStore(ctx context.Context, userID, storeID string) (*entity.Rating, error)
	// GetByUserAndStoreForUpdate bloquea la fila existente hasta el fin de la transacción.
	GetByUserAndStoreForUpdate(ctx context.Context, userID, storeID string) (*entity.Rating, error)
	// Create inserta la calificación. Si otra transacción insertó la misma pareja
	// (usuario, tienda) primero, actualiza esa fila y reporta inserted=false.
	Create(ctx context.Context, r *entity.Rating) (inserted bool, err error)
	Update(ctx context.Context, r *entity.Rating) error
	// Summary devuelve el promedio sin redondear y la cantidad de calificaciones de la tienda.
	Summary(ctx context.Context, storeID string) (RatingSummary, error)
	// ListRaters devuelve quién calificó la tienda ordenado por created_at descendente;
	// actualizar una calificación no la mueve al principio.
	ListRaters(ctx context.Context, storeID string) ([]RaterRow, error)
}
