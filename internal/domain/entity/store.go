package entity

import "time"

// Store tienda calificable. OwnerID es una referencia débil a un User con rol store_owner.
type Store struct {
	ID        string
	Name      string
	Email     string
	Address   string
	OwnerID   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
