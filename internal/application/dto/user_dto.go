package dto

import (
	"strings"
	"time"
)

// RegisterRequest entrada para auto-registro (rol normal_user).
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=4,max=60"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Address  string `json:"address" validate:"required,max=400"`
	Password string `json:"password" validate:"required,password"`
}

// CreateUserRequest entrada para que un admin cree un usuario con cualquier rol.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=4,max=60"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Address  string `json:"address" validate:"required,max=400"`
	Password string `json:"password" validate:"required,password"`
	Role     string `json:"role" validate:"required,oneof=admin normal_user store_owner"`
}

// UpdatePasswordRequest entrada para cambiar la contraseña propia.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,password"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserListItem fila del listado de usuarios del administrador.
// Rating es el promedio de la tienda que posee el usuario, con un decimal.
type UserListItem struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Role    string `json:"role"`
	Rating  string `json:"rating"`
}

// UserListResponse listado de usuarios.
type UserListResponse struct {
	Items []UserListItem `json:"items"`
	Total int            `json:"total"`
}

// CreateUserResponse salida de la creación por administrador; StoreID se informa si se creó tienda.
type CreateUserResponse struct {
	User    UserResponse `json:"user"`
	StoreID *string      `json:"store_id,omitempty"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// Normalize recorta espacios de los campos de texto y pasa el email a minúsculas.
// Se aplica antes de Validate para que las longitudes se midan sobre el valor que se guarda.
func (r *RegisterRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = normalizeEmail(r.Email)
	r.Address = strings.TrimSpace(r.Address)
}

// Normalize ver RegisterRequest.Normalize.
func (r *CreateUserRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = normalizeEmail(r.Email)
	r.Address = strings.TrimSpace(r.Address)
	r.Role = strings.TrimSpace(r.Role)
}

// Normalize ver RegisterRequest.Normalize.
func (r *LoginRequest) Normalize() {
	r.Email = normalizeEmail(r.Email)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
