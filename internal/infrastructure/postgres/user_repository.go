package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/StoreRating-api/internal/domain"
	"github.com/jhoicas/StoreRating-api/internal/domain/entity"
	domrating "github.com/jhoicas/StoreRating-api/internal/domain/rating"
	"github.com/jhoicas/StoreRating-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, name, email, address, password_hash, role, created_at, updated_at`

// userListSelect una fila por usuario con el promedio (un decimal) de las tiendas que posee.
const userListSelect = `
	SELECT u.id, u.name, u.email, u.address, u.role,
	       ROUND(COALESCE(AVG(r.rating), 0), 1) AS avg_rating
	FROM users u
	LEFT JOIN stores s ON s.owner_id = u.id
	LEFT JOIN ratings r ON r.store_id = s.id`

// Create persiste un nuevo usuario. Email duplicado → domain.ErrEmailAlreadyExists.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `INSERT INTO users (` + userColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		user.ID, user.Name, user.Email, user.Address, user.PasswordHash, string(user.Role),
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		if isCheckViolation(err) {
			return checkViolationError(err)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByEmail obtiene un usuario por email (ya normalizado en minúsculas).
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *UserRepo) getOne(ctx context.Context, query string, arg any) (*entity.User, error) {
	var u entity.User
	var role string
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Name, &u.Email, &u.Address, &u.PasswordHash, &role, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	u.Role = entity.Role(role)
	return &u, nil
}

// UpdatePassword reemplaza el hash de la contraseña.
func (r *UserRepo) UpdatePassword(ctx context.Context, id, passwordHash string, updatedAt time.Time) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE users SET password_hash = $2, updated_at = $3 WHERE id = $1`,
		id, passwordHash, updatedAt,
	)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// List listado de administración con filtros "contiene", rol exacto y orden validado.
func (r *UserRepo) List(ctx context.Context, filter repository.UserFilter, sort domrating.Sort) ([]repository.UserListRow, error) {
	w := newWhereBuilder()
	w.contains("u.name", filter.Name)
	w.contains("u.email", filter.Email)
	w.contains("u.address", filter.Address)
	if filter.Role != nil {
		w.equals("u.role", string(*filter.Role))
	}
	query := userListSelect + w.clause() + ` GROUP BY u.id` + userOrderBy(sort)

	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	list := make([]repository.UserListRow, 0)
	for rows.Next() {
		row, err := scanUserListRow(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// GetSummary fila de listado de un solo usuario.
func (r *UserRepo) GetSummary(ctx context.Context, id string) (*repository.UserListRow, error) {
	query := userListSelect + ` WHERE u.id = $1 GROUP BY u.id`
	row, err := scanUserListRow(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func scanUserListRow(s pgx.Row) (repository.UserListRow, error) {
	var row repository.UserListRow
	var role string
	if err := s.Scan(&row.ID, &row.Name, &row.Email, &row.Address, &role, &row.Rating); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return row, err
		}
		return row, fmt.Errorf("scan user: %w", err)
	}
	row.Role = entity.Role(role)
	return row, nil
}

// userOrderBy traduce la clave validada a una expresión fija; nunca interpola texto del usuario.
func userOrderBy(sort domrating.Sort) string {
	var expr string
	switch sort.Key {
	case domrating.SortByEmail:
		expr = "LOWER(u.email)"
	case domrating.SortByRole:
		expr = "u.role"
	case domrating.SortByRating:
		expr = "avg_rating"
	default:
		expr = "LOWER(u.name)"
	}
	return " ORDER BY " + expr + " " + sort.Direction() + ", u.id ASC"
}
