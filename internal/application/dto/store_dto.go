package dto

import (
	"strings"
	"time"
)

// CreateStoreRequest entrada para que un admin cree una tienda junto con su dueño.
type CreateStoreRequest struct {
	Name          string `json:"name" validate:"required,min=4,max=60"`
	Email         string `json:"email" validate:"required,email,max=255"`
	Address       string `json:"address" validate:"required,max=400"`
	OwnerName     string `json:"ownerName" validate:"required,min=4,max=60"`
	OwnerPassword string `json:"ownerPassword" validate:"required,password"`
}

// StoreResponse salida de una tienda.
type StoreResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	OwnerID   *string   `json:"owner_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StoreUserItem fila del listado de tiendas del usuario normal.
type StoreUserItem struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Address       string `json:"address"`
	OverallRating string `json:"overall_rating"`
	UserRating    *int   `json:"user_rating"`
}

// StoreUserListResponse listado de tiendas para el usuario normal.
type StoreUserListResponse struct {
	Items []StoreUserItem `json:"items"`
	Total int             `json:"total"`
}

// StoreAdminItem fila del listado de tiendas del administrador.
type StoreAdminItem struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Address       string  `json:"address"`
	OwnerID       *string `json:"owner_id,omitempty"`
	OverallRating string  `json:"overall_rating"`
	TotalRatings  int64   `json:"total_ratings"`
}

// StoreAdminListResponse listado de tiendas para el administrador.
type StoreAdminListResponse struct {
	Items []StoreAdminItem `json:"items"`
	Total int              `json:"total"`
}

// Normalize recorta espacios de nombre, dirección y nombre del dueño; el email va en minúsculas.
func (r *CreateStoreRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = normalizeEmail(r.Email)
	r.Address = strings.TrimSpace(r.Address)
	r.OwnerName = strings.TrimSpace(r.OwnerName)
}
