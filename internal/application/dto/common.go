package dto

// ListQuery parámetros de consulta comunes a los listados (?sortBy=&sortOrder=&name=...).
type ListQuery struct {
	SortBy    string `query:"sortBy"`
	SortOrder string `query:"sortOrder"`
	Name      string `query:"name"`
	Email     string `query:"email"`
	Address   string `query:"address"`
	Role      string `query:"role"`
}

// ErrorResponse cuerpo de error HTTP.
// Retryable indica que la operación se revirtió por un conflicto de concurrencia y puede reintentarse.
type ErrorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable,omitempty"`
}

// MessageResponse respuesta simple de confirmación.
type MessageResponse struct {
	Message string `json:"message"`
}
