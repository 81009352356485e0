package dto

import "time"

// AdminDashboardResponse totales del sistema para GET /api/admin/dashboard.
type AdminDashboardResponse struct {
	TotalUsers   int64 `json:"total_users"`
	TotalStores  int64 `json:"total_stores"`
	TotalRatings int64 `json:"total_ratings"`
}

// RaterDTO usuario que calificó la tienda del dueño.
type RaterDTO struct {
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OwnerDashboardResponse panel del dueño de tienda.
type OwnerDashboardResponse struct {
	Store         StoreResponse `json:"store"`
	AverageRating string        `json:"average_rating"`
	TotalRatings  int64         `json:"total_ratings"`
	Raters        []RaterDTO    `json:"raters"`
}
