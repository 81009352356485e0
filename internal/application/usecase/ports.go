package usecase

import (
	"context"

	"github.com/jhoicas/StoreRating-api/internal/domain/repository"
)

// AccountsTxRunner ejecuta la creación conjunta de usuario y tienda en una sola transacción.
type AccountsTxRunner interface {
	RunAccounts(ctx context.Context, fn func(
		userRepo repository.UserRepository,
		storeRepo repository.StoreRepository,
	) error) error
}
