package memory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/StoreRating-api/internal/domain"
	"github.com/jhoicas/StoreRating-api/internal/domain/entity"
	"github.com/jhoicas/StoreRating-api/internal/domain/repository"
)

var _ repository.RatingRepository = (*RatingRepo)(nil)

// RatingRepo calificaciones en memoria, indexadas por (usuario, tienda).
type RatingRepo struct {
	c conn
}

// NewRatingRepository construye el repositorio sobre db.
func NewRatingRepository(db *DB) *RatingRepo {
	return &RatingRepo{c: conn{db: db}}
}

func (r *RatingRepo) GetByUserAndStore(_ context.Context, userID, storeID string) (*entity.Rating, error) {
	var out *entity.Rating
	err := r.c.read(func(d *dataset) error {
		if rt, ok := d.ratings[ratingKey{userID, storeID}]; ok {
			out = &rt
		}
		return nil
	})
	return out, err
}

// GetByUserAndStoreForUpdate dentro de TxRunner el lock de la base ya está tomado.
func (r *RatingRepo) GetByUserAndStoreForUpdate(ctx context.Context, userID, storeID string) (*entity.Rating, error) {
	return r.GetByUserAndStore(ctx, userID, storeID)
}

func (r *RatingRepo) Create(_ context.Context, rt *entity.Rating) (bool, error) {
	inserted := false
	err := r.c.write(func(d *dataset) error {
		if _, ok := d.stores[rt.StoreID]; !ok {
			return domain.ErrStoreNotFound
		}
		k := ratingKey{rt.UserID, rt.StoreID}
		if existing, ok := d.ratings[k]; ok {
			existing.Value = rt.Value
			existing.UpdatedAt = rt.UpdatedAt
			d.ratings[k] = existing
			rt.ID = existing.ID
			rt.CreatedAt = existing.CreatedAt
			return nil
		}
		d.ratings[k] = *rt
		inserted = true
		return nil
	})
	return inserted, err
}

func (r *RatingRepo) Update(_ context.Context, rt *entity.Rating) error {
	return r.c.write(func(d *dataset) error {
		k := ratingKey{rt.UserID, rt.StoreID}
		existing, ok := d.ratings[k]
		if !ok || existing.ID != rt.ID {
			return domain.ErrRatingNotFound
		}
		existing.Value = rt.Value
		existing.UpdatedAt = rt.UpdatedAt
		d.ratings[k] = existing
		return nil
	})
}

func (r *RatingRepo) Summary(_ context.Context, storeID string) (repository.RatingSummary, error) {
	var out repository.RatingSummary
	err := r.c.read(func(d *dataset) error {
		var sum int64
		for k, rt := range d.ratings {
			if k.storeID == storeID {
				sum += int64(rt.Value)
				out.Count++
			}
		}
		if out.Count > 0 {
			out.Average = decimal.NewFromInt(sum).Div(decimal.NewFromInt(out.Count))
		}
		return nil
	})
	return out, err
}

func (r *RatingRepo) ListRaters(_ context.Context, storeID string) ([]repository.RaterRow, error) {
	list := make([]repository.RaterRow, 0)
	err := r.c.read(func(d *dataset) error {
		for k, rt := range d.ratings {
			if k.storeID != storeID {
				continue
			}
			u := d.users[k.userID]
			list = append(list, repository.RaterRow{
				UserID:    k.userID,
				Name:      u.Name,
				Email:     u.Email,
				Value:     rt.Value,
				CreatedAt: rt.CreatedAt,
				UpdatedAt: rt.UpdatedAt,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].UserID < list[j].UserID
	})
	return list, nil
}
