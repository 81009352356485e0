package repository

import (
	"context"
	"time"

	"github.com/jhoicas/StoreRating-api/internal/domain/entity"
	"github.com/jhoicas/StoreRating-api/internal/domain/rating"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los Get devuelven (nil, nil) cuando el usuario no existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string, updatedAt time.Time) error
	// List aplica filtros y orden ya validados (vista de administrador).
	List(ctx context.Context, filter UserFilter, sort rating.Sort) ([]UserListRow, error)
	// GetSummary devuelve la fila de listado de un solo usuario.
	GetSummary(ctx context.Context, id string) (*UserListRow, error)
}
