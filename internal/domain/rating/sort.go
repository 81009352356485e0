package rating

import (
	"strings"

	"github.com/jhoicas/StoreRating-api/internal/domain"
)

// SortKey columna lógica de ordenamiento de los listados.
type SortKey string

// Columnas de ordenamiento conocidas.
const (
	SortByName    SortKey = "name"
	SortByEmail   SortKey = "email"
	SortByAddress SortKey = "address"
	SortByRole    SortKey = "role"
	SortByRating  SortKey = "rating"
)

// Listas permitidas por vista. Cualquier otra columna es rechazada antes de llegar a la consulta.
var (
	StoreSortKeys      = []SortKey{SortByName, SortByAddress, SortByRating}
	AdminStoreSortKeys = []SortKey{SortByName, SortByEmail, SortByAddress, SortByRating}
	UserSortKeys       = []SortKey{SortByName, SortByEmail, SortByRole, SortByRating}
)

// Sort criterio de ordenamiento validado. El desempate por id ascendente es implícito.
type Sort struct {
	Key  SortKey
	Desc bool
}

// DefaultSort ordena por nombre ascendente.
var DefaultSort = Sort{Key: SortByName}

// ParseSort valida sortBy y sortOrder contra la lista permitida.
// Valores vacíos toman el default (name, asc); sortOrder no distingue mayúsculas.
func ParseSort(sortBy, sortOrder string, allowed []SortKey) (Sort, error) {
	s := DefaultSort
	if k := strings.TrimSpace(sortBy); k != "" {
		key := SortKey(k)
		if !containsKey(allowed, key) {
			return Sort{}, domain.ErrInvalidSortKey
		}
		s.Key = key
	}
	switch strings.ToUpper(strings.TrimSpace(sortOrder)) {
	case "", "ASC":
		s.Desc = false
	case "DESC":
		s.Desc = true
	default:
		return Sort{}, domain.ErrInvalidSortOrder
	}
	return s, nil
}

// Direction devuelve "ASC" o "DESC".
func (s Sort) Direction() string {
	if s.Desc {
		return "DESC"
	}
	return "ASC"
}

func containsKey(keys []SortKey, k SortKey) bool {
	for _, allowed := range keys {
		if allowed == k {
			return true
		}
	}
	return false
}
