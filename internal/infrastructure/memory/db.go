// Package memory implementa los puertos de persistencia en memoria.
// Lo usan los tests y STORAGE_DRIVER=memory; los datos se pierden al reiniciar.
package memory

import (
	"sync"

	"github.com/jhoicas/StoreRating-api/internal/domain/entity"
)

type ratingKey struct {
	userID  string
	storeID string
}

type dataset struct {
	users       map[string]entity.User
	userEmails  map[string]string // email -> id
	stores      map[string]entity.Store
	storeEmails map[string]string
	ratings     map[ratingKey]entity.Rating
}

func newDataset() *dataset {
	return &dataset{
		users:       make(map[string]entity.User),
		userEmails:  make(map[string]string),
		stores:      make(map[string]entity.Store),
		storeEmails: make(map[string]string),
		ratings:     make(map[ratingKey]entity.Rating),
	}
}

func (d *dataset) clone() *dataset {
	c := newDataset()
	for k, v := range d.users {
		c.users[k] = v
	}
	for k, v := range d.userEmails {
		c.userEmails[k] = v
	}
	for k, v := range d.stores {
		c.stores[k] = cloneStore(v)
	}
	for k, v := range d.storeEmails {
		c.storeEmails[k] = v
	}
	for k, v := range d.ratings {
		c.ratings[k] = v
	}
	return c
}

func cloneStore(s entity.Store) entity.Store {
	if s.OwnerID != nil {
		id := *s.OwnerID
		s.OwnerID = &id
	}
	return s
}

// DB estado compartido por los repositorios en memoria.
// Una transacción toma el lock de escritura durante todo el callback y trabaja sobre una copia
// que solo reemplaza al estado si el callback termina sin error.
type DB struct {
	mu   sync.RWMutex
	data *dataset
}

// NewDB construye una base vacía.
func NewDB() *DB {
	return &DB{data: newDataset()}
}

// conn vista de la base: fuera de transacción usa el lock; dentro, la copia de la transacción.
type conn struct {
	db *DB
	tx *dataset
}

func (c conn) read(fn func(d *dataset) error) error {
	if c.tx != nil {
		return fn(c.tx)
	}
	c.db.mu.RLock()
	defer c.db.mu.RUnlock()
	return fn(c.db.data)
}

func (c conn) write(fn func(d *dataset) error) error {
	if c.tx != nil {
		return fn(c.tx)
	}
	c.db.mu.Lock()
	defer c.db.mu.Unlock()
	return fn(c.db.data)
}
