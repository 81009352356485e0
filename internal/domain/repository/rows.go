package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/StoreRating-api/internal/domain/entity"
)

// StoreFilter filtros "contiene" sin distinguir mayúsculas. Campos vacíos no filtran.
type StoreFilter struct {
	Name    string
	Email   string
	Address string
}

// UserFilter filtros de la vista de usuarios. Role filtra por igualdad exacta.
type UserFilter struct {
	Name    string
	Email   string
	Address string
	Role    *entity.Role
}

// StoreListRow tienda con su agregado de calificaciones.
// OverallRating ya viene redondeado a un decimal; UserRating es nil si el usuario no calificó
// (o en la vista de administrador).
type StoreListRow struct {
	ID            string
	Name          string
	Email         string
	Address       string
	OwnerID       *string
	OverallRating decimal.Decimal
	TotalRatings  int64
	UserRating    *int
}

// UserListRow usuario con el promedio de las tiendas que posee (0 si no posee o no tienen calificaciones).
type UserListRow struct {
	ID      string
	Name    string
	Email   string
	Address string
	Role    entity.Role
	Rating  decimal.Decimal
}

// RatingSummary agregado de una tienda.
type RatingSummary struct {
	Average decimal.Decimal
	Count   int64
}

// RaterRow usuario que calificó una tienda.
type RaterRow struct {
	UserID    string
	Name      string
	Email     string
	Value     int
	CreatedAt time.Time
	UpdatedAt time.Time
}
