package entity

import "time"

// Rating calificación de 1 a 5 de un usuario sobre una tienda.
// Invariante: a lo sumo una fila por (UserID, StoreID).
type Rating struct {
	ID        string
	UserID    string
	StoreID   string
	Value     int
	CreatedAt time.Time
	UpdatedAt time.Time
}
