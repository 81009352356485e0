package entity

import "time"

// Role rol cerrado de un usuario. Solo los valores declarados abajo son válidos.
type Role string

// Roles válidos para User.
const (
	RoleAdmin      Role = "admin"
	RoleNormalUser Role = "normal_user"
	RoleStoreOwner Role = "store_owner"
)

// Roles lista completa de roles, en orden estable.
var Roles = []Role{RoleAdmin, RoleNormalUser, RoleStoreOwner}

// ParseRole convierte un string en Role; ok es false si el valor no es un rol conocido.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	return r, r.Valid()
}

// Valid informa si el rol es uno de los declarados.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleNormalUser, RoleStoreOwner:
		return true
	}
	return false
}

// String implementa fmt.Stringer.
func (r Role) String() string { return string(r) }

// User representa una cuenta del sistema.
type User struct {
	ID           string
	Name         string
	Email        string
	Address      string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
