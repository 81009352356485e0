package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los errores específicos envuelven a su categoría: errors.Is(ErrStoreNotFound, ErrNotFound) es verdadero.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual, reintente")

	ErrUserNotFound   error = &kindError{kind: ErrNotFound, msg: "usuario no encontrado"}
	ErrStoreNotFound  error = &kindError{kind: ErrNotFound, msg: "tienda no encontrada"}
	ErrRatingNotFound error = &kindError{kind: ErrNotFound, msg: "calificación no encontrada"}

	ErrInvalidRating    error = &kindError{kind: ErrInvalidInput, msg: "la calificación debe ser un entero entre 1 y 5"}
	ErrInvalidSortKey   error = &kindError{kind: ErrInvalidInput, msg: "columna de ordenamiento no permitida"}
	ErrInvalidSortOrder error = &kindError{kind: ErrInvalidInput, msg: "dirección de ordenamiento inválida"}
	ErrInvalidPassword  error = &kindError{kind: ErrInvalidInput, msg: "la contraseña actual es incorrecta"}

	ErrInvalidCredentials error = &kindError{kind: ErrUnauthorized, msg: "credenciales inválidas"}
)

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

// ValidationError describe una entrada inválida con el campo afectado.
// errors.Is(err, ErrInvalidInput) es verdadero para cualquier ValidationError.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// Unwrap permite clasificar el error como ErrInvalidInput.
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// NewValidationError construye un ValidationError.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
