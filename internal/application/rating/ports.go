package rating

import (
	"context"

	"github.com/jhoicas/StoreRating-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza que la búsqueda, la escritura y el recálculo del promedio se confirmen como una unidad.
type TxRunner interface {
	RunRating(ctx context.Context, fn func(
		storeRepo repository.StoreRepository,
		ratingRepo repository.RatingRepository,
	) error) error
}
