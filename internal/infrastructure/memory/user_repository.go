package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/StoreRating-api/internal/domain"
	"github.com/jhoicas/StoreRating-api/internal/domain/entity"
	domrating "github.com/jhoicas/StoreRating-api/internal/domain/rating"
	"github.com/jhoicas/StoreRating-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo usuarios en memoria.
type UserRepo struct {
	c conn
}

// NewUserRepository construye el repositorio sobre db.
func NewUserRepository(db *DB) *UserRepo {
	return &UserRepo{c: conn{db: db}}
}

func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	return r.c.write(func(d *dataset) error {
		if _, ok := d.userEmails[user.Email]; ok {
			return domain.ErrEmailAlreadyExists
		}
		if _, ok := d.users[user.ID]; ok {
			return domain.ErrDuplicate
		}
		d.users[user.ID] = *user
		d.userEmails[user.Email] = user.ID
		return nil
	})
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	var out *entity.User
	err := r.c.read(func(d *dataset) error {
		if u, ok := d.users[id]; ok {
			out = &u
		}
		return nil
	})
	return out, err
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	var out *entity.User
	err := r.c.read(func(d *dataset) error {
		if id, ok := d.userEmails[email]; ok {
			u := d.users[id]
			out = &u
		}
		return nil
	})
	return out, err
}

func (r *UserRepo) UpdatePassword(_ context.Context, id, passwordHash string, updatedAt time.Time) error {
	return r.c.write(func(d *dataset) error {
		u, ok := d.users[id]
		if !ok {
			return domain.ErrUserNotFound
		}
		u.PasswordHash = passwordHash
		u.UpdatedAt = updatedAt
		d.users[id] = u
		return nil
	})
}

func (r *UserRepo) List(_ context.Context, filter repository.UserFilter, s domrating.Sort) ([]repository.UserListRow, error) {
	list := make([]repository.UserListRow, 0)
	err := r.c.read(func(d *dataset) error {
		for _, u := range d.users {
			if !matchUser(u, filter) {
				continue
			}
			list = append(list, userRow(d, u))
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
		case domrating.SortByRole:
			cmp = strings.Compare(string(a.Role), string(b.Role))
		case domrating.SortByRating:
			cmp = a.Rating.Cmp(b.Rating)
		default:
			cmp = domrating.CompareText(a.Name, b.Name)
		}
		return less(cmp, s, a.ID, b.ID)
	})
	return list, nil
}

func (r *UserRepo) GetSummary(_ context.Context, id string) (*repository.UserListRow, error) {
	var out *repository.UserListRow
	err := r.c.read(func(d *dataset) error {
		if u, ok := d.users[id]; ok {
			row := userRow(d, u)
			out = &row
		}
		return nil
	})
	return out, err
}

func matchUser(u entity.User, f repository.UserFilter) bool {
	if f.Role != nil && u.Role != *f.Role {
		return false
	}
	return domrating.ContainsFold(u.Name, f.Name) &&
		domrating.ContainsFold(u.Email, f.Email) &&
		domrating.ContainsFold(u.Address, f.Address)
}

// userRow promedio de todas las calificaciones de las tiendas que posee u.
func userRow(d *dataset, u entity.User) repository.UserListRow {
	var values []int
	for _, s := range d.stores {
		if s.OwnerID == nil || *s.OwnerID != u.ID {
			continue
		}
		for k, rt := range d.ratings {
			if k.storeID == s.ID {
				values = append(values, rt.Value)
			}
		}
	}
	return repository.UserListRow{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Address: u.Address,
		Role:    u.Role,
		Rating:  domrating.Average(values),
	}
}
