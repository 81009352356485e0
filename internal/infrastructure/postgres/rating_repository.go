package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/StoreRating-api/internal/domain"
	"github.com/jhoicas/StoreRating-api/internal/domain/entity"
	"github.com/jhoicas/StoreRating-api/internal/domain/repository"
)

var _ repository.RatingRepository = (*RatingRepo)(nil)

// RatingRepo implementación del puerto RatingRepository sobre PostgreSQL.
type RatingRepo struct {
	q Querier
}

// NewRatingRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRatingRepository(q Querier) *RatingRepo {
	return &RatingRepo{q: q}
}

const ratingColumns = `id, user_id, store_id, rating, created_at, updated_at`

// GetByUserAndStore lectura sin bloqueo.
func (r *RatingRepo) GetByUserAndStore(ctx context.Context, userID, storeID string) (*entity.Rating, error) {
	return r.getOne(ctx, `SELECT `+ratingColumns+` FROM ratings WHERE user_id = $1 AND store_id = $2`, userID, storeID)
}

// GetByUserAndStoreForUpdate SELECT ... FOR UPDATE; debe usarse dentro de una transacción.
func (r *RatingRepo) GetByUserAndStoreForUpdate(ctx context.Context, userID, storeID string) (*entity.Rating, error) {
	return r.getOne(ctx,
		`SELECT `+ratingColumns+` FROM ratings WHERE user_id = $1 AND store_id = $2 FOR UPDATE`, userID, storeID)
}

func (r *RatingRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Rating, error) {
	var rt entity.Rating
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&rt.ID, &rt.UserID, &rt.StoreID, &rt.Value, &rt.CreatedAt, &rt.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rating: %w", err)
	}
	return &rt, nil
}

// Create inserta la calificación. Si una transacción concurrente ganó la inserción de la misma
// pareja, ON CONFLICT actualiza esa fila; xmax = 0 distingue una fila recién insertada.
// r.ID y r.CreatedAt quedan con los valores de la fila persistida.
func (r *RatingRepo) Create(ctx context.Context, rt *entity.Rating) (bool, error) {
	query := `
		INSERT INTO ratings (` + ratingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, store_id) DO UPDATE
		SET rating = EXCLUDED.rating, updated_at = EXCLUDED.updated_at
		RETURNING id, created_at, (xmax = 0) AS inserted`
	var inserted bool
	err := r.q.QueryRow(ctx, query,
		rt.ID, rt.UserID, rt.StoreID, rt.Value, rt.CreatedAt, rt.UpdatedAt,
	).Scan(&rt.ID, &rt.CreatedAt, &inserted)
	if err != nil {
		return false, fmt.Errorf("upsert rating: %w", err)
	}
	return inserted, nil
}

// Update cambia valor y updated_at; created_at no se toca.
func (r *RatingRepo) Update(ctx context.Context, rt *entity.Rating) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE ratings SET rating = $2, updated_at = $3 WHERE id = $1`,
		rt.ID, rt.Value, rt.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update rating: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRatingNotFound
	}
	return nil
}

// Summary promedio sin redondear y cantidad; una tienda sin calificaciones da (0, 0).
func (r *RatingRepo) Summary(ctx context.Context, storeID string) (repository.RatingSummary, error) {
	var s repository.RatingSummary
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(AVG(rating), 0), COUNT(*) FROM ratings WHERE store_id = $1`, storeID,
	).Scan(&s.Average, &s.Count)
	if err != nil {
		return s, fmt.Errorf("rating summary: %w", err)
	}
	return s, nil
}

// ListRaters usuarios que calificaron la tienda, la primera calificación más reciente primero.
func (r *RatingRepo) ListRaters(ctx context.Context, storeID string) ([]repository.RaterRow, error) {
	rows, err := r.q.Query(ctx, `
		SELECT u.id, u.name, u.email, r.rating, r.created_at, r.updated_at
		FROM ratings r
		JOIN users u ON u.id = r.user_id
		WHERE r.store_id = $1
		ORDER BY r.created_at DESC, u.id ASC`, storeID)
	if err != nil {
		return nil, fmt.Errorf("list raters: %w", err)
	}
	defer rows.Close()
	list := make([]repository.RaterRow, 0)
	for rows.Next() {
		var rr repository.RaterRow
		if err := rows.Scan(&rr.UserID, &rr.Name, &rr.Email, &rr.Value, &rr.CreatedAt, &rr.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan rater: %w", err)
		}
		list = append(list, rr)
	}
	return list, rows.Err()
}
