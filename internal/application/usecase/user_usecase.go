package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/StoreRating-api/internal/application/auth"
	"github.com/jhoicas/StoreRating-api/internal/application/dto"
	"github.com/jhoicas/StoreRating-api/internal/domain"
	"github.com/jhoicas/StoreRating-api/internal/domain/entity"
	domrating "github.com/jhoicas/StoreRating-api/internal/domain/rating"
	"github.com/jhoicas/StoreRating-api/internal/domain/repository"
)

// UserUseCase casos de uso de administración de usuarios.
type UserUseCase struct {
	repo     repository.UserRepository
	txRunner AccountsTxRunner
	now      func() time.Time
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository, txRunner AccountsTxRunner) *UserUseCase {
	return &UserUseCase{repo: repo, txRunner: txRunner, now: time.Now}
}

// Create crea un usuario con el rol indicado. Si el rol es store_owner se crea también
// su tienda con el mismo nombre, email y dirección, en la misma transacción.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.CreateUserResponse, error) {
	in.Normalize()
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	role, ok := entity.ParseRole(in.Role)
	if !ok {
		return nil, domain.NewValidationError("Role", "rol inválido")
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		Address:      in.Address,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	var storeID *string
	err = uc.txRunner.RunAccounts(ctx, func(userRepo repository.UserRepository, storeRepo repository.StoreRepository) error {
		existing, err := userRepo.GetByEmail(ctx, user.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrEmailAlreadyExists
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return err
		}
		if role != entity.RoleStoreOwner {
			return nil
		}
		store := &entity.Store{
			ID:        uuid.New().String(),
			Name:      user.Name,
			Email:     user.Email,
			Address:   user.Address,
			OwnerID:   &user.ID,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := storeRepo.Create(ctx, store); err != nil {
			return err
		}
		storeID = &store.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.CreateUserResponse{User: *auth.ToUserResponse(user), StoreID: storeID}, nil
}

// List devuelve la vista de usuarios del administrador con filtros y orden validados.
func (uc *UserUseCase) List(ctx context.Context, q dto.ListQuery) (*dto.UserListResponse, error) {
	sort, err := domrating.ParseSort(q.SortBy, q.SortOrder, domrating.UserSortKeys)
	if err != nil {
		return nil, err
	}
	filter := repository.UserFilter{
		Name:    strings.TrimSpace(q.Name),
		Email:   strings.TrimSpace(q.Email),
		Address: strings.TrimSpace(q.Address),
	}
	if r := strings.TrimSpace(q.Role); r != "" {
		role, ok := entity.ParseRole(r)
		if !ok {
			return nil, domain.NewValidationError("role", "rol inválido")
		}
		filter.Role = &role
	}
	rows, err := uc.repo.List(ctx, filter, sort)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserListItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, toUserListItem(r))
	}
	return &dto.UserListResponse{Items: items, Total: len(items)}, nil
}

// GetByID devuelve el detalle de un usuario (con el promedio de su tienda si es dueño).
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserListItem, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.NewValidationError("id", "id de usuario inválido")
	}
	row, err := uc.repo.GetSummary(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrUserNotFound
	}
	item := toUserListItem(*row)
	return &item, nil
}

func toUserListItem(r repository.UserListRow) dto.UserListItem {
	return dto.UserListItem{
		ID:      r.ID,
		Name:    r.Name,
		Email:   r.Email,
		Address: r.Address,
		Role:    r.Role.String(),
		Rating:  domrating.FormatAverage(r.Rating),
	}
}
