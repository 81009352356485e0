package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/StoreRating-api/internal/domain"
	"github.com/jhoicas/StoreRating-api/internal/domain/entity"
	domrating "github.com/jhoicas/StoreRating-api/internal/domain/rating"
	"github.com/jhoicas/StoreRating-api/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo tiendas en memoria.
type StoreRepo struct {
	c conn
}

// NewStoreRepository construye el repositorio sobre db.
func NewStoreRepository(db *DB) *StoreRepo {
	return &StoreRepo{c: conn{db: db}}
}

func (r *StoreRepo) Create(_ context.Context, store *entity.Store) error {
	return r.c.write(func(d *dataset) error {
		if _, ok := d.storeEmails[store.Email]; ok {
			return domain.ErrDuplicate
		}
		if _, ok := d.stores[store.ID]; ok {
			return domain.ErrDuplicate
		}
		d.stores[store.ID] = cloneStore(*store)
		d.storeEmails[store.Email] = store.ID
		return nil
	})
}

func (r *StoreRepo) GetByID(_ context.Context, id string) (*entity.Store, error) {
	var out *entity.Store
	err := r.c.read(func(d *dataset) error {
		if s, ok := d.stores[id]; ok {
			s = cloneStore(s)
			out = &s
		}
		return nil
	})
	return out, err
}

func (r *StoreRepo) GetByOwner(_ context.Context, ownerID string) (*entity.Store, error) {
	var out *entity.Store
	err := r.c.read(func(d *dataset) error {
		for _, s := range d.stores {
			if s.OwnerID == nil || *s.OwnerID != ownerID {
				continue
			}
			if out == nil || s.CreatedAt.Before(out.CreatedAt) ||
				(s.CreatedAt.Equal(out.CreatedAt) && s.ID < out.ID) {
				c := cloneStore(s)
				out = &c
			}
		}
		return nil
	})
	return out, err
}

func (r *StoreRepo) ListForUser(_ context.Context, callerID string, filter repository.StoreFilter, s domrating.Sort) ([]repository.StoreListRow, error) {
	filter.Email = ""
	return r.list(filter, s, &callerID)
}

func (r *StoreRepo) ListForAdmin(_ context.Context, filter repository.StoreFilter, s domrating.Sort) ([]repository.StoreListRow, error) {
	return r.list(filter, s, nil)
}

func (r *StoreRepo) list(filter repository.StoreFilter, s domrating.Sort, callerID *string) ([]repository.StoreListRow, error) {
	list := make([]repository.StoreListRow, 0)
	err := r.c.read(func(d *dataset) error {
		for _, st := range d.stores {
			if !domrating.ContainsFold(st.Name, filter.Name) ||
				!domrating.ContainsFold(st.Email, filter.Email) ||
				!domrating.ContainsFold(st.Address, filter.Address) {
				continue
			}
			row := repository.StoreListRow{
				ID:      st.ID,
				Name:    st.Name,
				Email:   st.Email,
				Address: st.Address,
				OwnerID: cloneStore(st).OwnerID,
			}
			var values []int
			for k, rt := range d.ratings {
				if k.storeID != st.ID {
					continue
				}
				values = append(values, rt.Value)
				if callerID != nil && k.userID == *callerID {
					v := rt.Value
					row.UserRating = &v
				}
			}
			row.OverallRating = domrating.Average(values)
			row.TotalRatings = int64(len(values))
			list = append(list, row)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(list, func(i, j int) bool {
		a, b := list[i], list[j]
		var cmp int
		switch s.Key {
		case domrating.SortByEmail:
			cmp = domrating.CompareText(a.Email, b.Email)
		case domrating.SortByAddress:
			cmp = domrating.CompareText(a.Address, b.Address)
		case domrating.SortByRating:
			cmp = a.OverallRating.Cmp(b.OverallRating)
		default:
			cmp = domrating.CompareText(a.Name, b.Name)
		}
		return less(cmp, s, a.ID, b.ID)
	})
	return list, nil
}
