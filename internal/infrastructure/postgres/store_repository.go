package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/StoreRating-api/internal/domain"
	"github.com/jhoicas/StoreRating-api/internal/domain/entity"
	domrating "github.com/jhoicas/StoreRating-api/internal/domain/rating"
	"github.com/jhoicas/StoreRating-api/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo implementación del puerto StoreRepository sobre PostgreSQL.
type StoreRepo struct {
	q Querier
}

// NewStoreRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStoreRepository(q Querier) *StoreRepo {
	return &StoreRepo{q: q}
}

const storeColumns = `id, name, email, address, owner_id, created_at, updated_at`

// Create persiste una tienda. Email duplicado → domain.ErrDuplicate.
func (r *StoreRepo) Create(ctx context.Context, store *entity.Store) error {
	query := `INSERT INTO stores (` + storeColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		store.ID, store.Name, store.Email, store.Address, store.OwnerID, store.CreatedAt, store.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isCheckViolation(err) {
			return checkViolationError(err)
		}
		return fmt.Errorf("insert store: %w", err)
	}
	return nil
}

// GetByID obtiene una tienda por ID.
func (r *StoreRepo) GetByID(ctx context.Context, id string) (*entity.Store, error) {
	return r.getOne(ctx, `SELECT `+storeColumns+` FROM stores WHERE id = $1`, id)
}

// GetByOwner obtiene la tienda del dueño; si tuviera varias, la más antigua.
func (r *StoreRepo) GetByOwner(ctx context.Context, ownerID string) (*entity.Store, error) {
	return r.getOne(ctx,
		`SELECT `+storeColumns+` FROM stores WHERE owner_id = $1 ORDER BY created_at, id LIMIT 1`, ownerID)
}

func (r *StoreRepo) getOne(ctx context.Context, query string, arg any) (*entity.Store, error) {
	var s entity.Store
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&s.ID, &s.Name, &s.Email, &s.Address, &s.OwnerID, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store: %w", err)
	}
	return &s, nil
}

// ListForUser un solo join con agregado condicional: promedio general y calificación propia de callerID.
func (r *StoreRepo) ListForUser(ctx context.Context, callerID string, filter repository.StoreFilter, sort domrating.Sort) ([]repository.StoreListRow, error) {
	w := newWhereBuilder(callerID)
	w.contains("s.name", filter.Name)
	w.contains("s.address", filter.Address)
	query := `
		SELECT s.id, s.name, s.email, s.address, s.owner_id,
		       ROUND(COALESCE(AVG(r.rating), 0), 1) AS overall_rating,
		       COUNT(r.id) AS total_ratings,
		       MAX(CASE WHEN r.user_id = $1 THEN r.rating END) AS user_rating
		FROM stores s
		LEFT JOIN ratings r ON r.store_id = s.id` + w.clause() + `
		GROUP BY s.id` + storeOrderBy(sort)
	return r.list(ctx, query, w.args, true)
}

// ListForAdmin promedio general y total de calificaciones por tienda.
func (r *StoreRepo) ListForAdmin(ctx context.Context, filter repository.StoreFilter, sort domrating.Sort) ([]repository.StoreListRow, error) {
	w := newWhereBuilder()
	w.contains("s.name", filter.Name)
	w.contains("s.email", filter.Email)
	w.contains("s.address", filter.Address)
	query := `
		SELECT s.id, s.name, s.email, s.address, s.owner_id,
		       ROUND(COALESCE(AVG(r.rating), 0), 1) AS overall_rating,
		       COUNT(r.id) AS total_ratings
		FROM stores s
		LEFT JOIN ratings r ON r.store_id = s.id` + w.clause() + `
		GROUP BY s.id` + storeOrderBy(sort)
	return r.list(ctx, query, w.args, false)
}

func (r *StoreRepo) list(ctx context.Context, query string, args []any, withUserRating bool) ([]repository.StoreListRow, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()
	list := make([]repository.StoreListRow, 0)
	for rows.Next() {
		var s repository.StoreListRow
		dest := []any{&s.ID, &s.Name, &s.Email, &s.Address, &s.OwnerID, &s.OverallRating, &s.TotalRatings}
		if withUserRating {
			dest = append(dest, &s.UserRating)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// storeOrderBy traduce la clave validada a una expresión fija; desempate por id ascendente.
func storeOrderBy(sort domrating.Sort) string {
	var expr string
	switch sort.Key {
	case domrating.SortByEmail:
		expr = "LOWER(s.email)"
	case domrating.SortByAddress:
		expr = "LOWER(s.address)"
	case domrating.SortByRating:
		expr = "overall_rating"
	default:
		expr = "LOWER(s.name)"
	}
	return " ORDER BY " + expr + " " + sort.Direction() + ", s.id ASC"
}
