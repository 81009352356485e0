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

// StoreUseCase alta de tiendas y listados con agregados de calificación.
type StoreUseCase struct {
	repo     repository.StoreRepository
	txRunner AccountsTxRunner
	now      func() time.Time
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(repo repository.StoreRepository, txRunner AccountsTxRunner) *StoreUseCase {
	return &StoreUseCase{repo: repo, txRunner: txRunner, now: time.Now}
}

// Create crea el usuario dueño (rol store_owner, con el email de la tienda) y la tienda, atómicamente.
func (uc *StoreUseCase) Create(ctx context.Context, in dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	in.Normalize()
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	hash, err := auth.HashPassword(in.OwnerPassword)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	email := in.Email
	address := in.Address
	owner := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.OwnerName,
		Email:        email,
		Address:      address,
		PasswordHash: hash,
		Role:         entity.RoleStoreOwner,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	store := &entity.Store{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     email,
		Address:   address,
		OwnerID:   &owner.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = uc.txRunner.RunAccounts(ctx, func(userRepo repository.UserRepository, storeRepo repository.StoreRepository) error {
		existing, err := userRepo.GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrEmailAlreadyExists
		}
		if err := userRepo.Create(ctx, owner); err != nil {
			return err
		}
		return storeRepo.Create(ctx, store)
	})
	if err != nil {
		return nil, err
	}
	return toStoreResponse(store), nil
}

// ListForUser vista del usuario normal: promedio general y calificación propia de callerID.
func (uc *StoreUseCase) ListForUser(ctx context.Context, callerID string, q dto.ListQuery) (*dto.StoreUserListResponse, error) {
	sort, err := domrating.ParseSort(q.SortBy, q.SortOrder, domrating.StoreSortKeys)
	if err != nil {
		return nil, err
	}
	filter := repository.StoreFilter{
		Name:    strings.TrimSpace(q.Name),
		Address: strings.TrimSpace(q.Address),
	}
	rows, err := uc.repo.ListForUser(ctx, callerID, filter, sort)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StoreUserItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.StoreUserItem{
			ID:            r.ID,
			Name:          r.Name,
			Address:       r.Address,
			OverallRating: domrating.FormatAverage(r.OverallRating),
			UserRating:    r.UserRating,
		})
	}
	return &dto.StoreUserListResponse{Items: items, Total: len(items)}, nil
}

// ListForAdmin vista del administrador: promedio general y total de calificaciones.
func (uc *StoreUseCase) ListForAdmin(ctx context.Context, q dto.ListQuery) (*dto.StoreAdminListResponse, error) {
	sort, err := domrating.ParseSort(q.SortBy, q.SortOrder, domrating.AdminStoreSortKeys)
	if err != nil {
		return nil, err
	}
	filter := repository.StoreFilter{
		Name:    strings.TrimSpace(q.Name),
		Email:   strings.TrimSpace(q.Email),
		Address: strings.TrimSpace(q.Address),
	}
	rows, err := uc.repo.ListForAdmin(ctx, filter, sort)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StoreAdminItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.StoreAdminItem{
			ID:            r.ID,
			Name:          r.Name,
			Email:         r.Email,
			Address:       r.Address,
			OwnerID:       r.OwnerID,
			OverallRating: domrating.FormatAverage(r.OverallRating),
			TotalRatings:  r.TotalRatings,
		})
	}
	return &dto.StoreAdminListResponse{Items: items, Total: len(items)}, nil
}

func toStoreResponse(s *entity.Store) *dto.StoreResponse {
	if s == nil {
		return nil
	}
	return &dto.StoreResponse{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Address:   s.Address,
		OwnerID:   s.OwnerID,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
