package dto

import "time"

// SubmitRatingRequest entrada de POST /api/ratings.
type SubmitRatingRequest struct {
	StoreID string `json:"storeId" validate:"required"`
	Rating  int    `json:"rating"`
}

// SubmitRatingResponse promedio recalculado de la tienda y eco de la calificación del usuario.
type SubmitRatingResponse struct {
	StoreID       string `json:"store_id"`
	AverageRating string `json:"average_rating"`
	TotalRatings  int64  `json:"total_ratings"`
	UserRating    int    `json:"user_rating"`
	Created       bool   `json:"created"`
}

// UserRatingResponse calificación propia de un usuario sobre una tienda.
type UserRatingResponse struct {
	StoreID   string    `json:"store_id"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
