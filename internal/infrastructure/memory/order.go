package memory

import domrating "github.com/jhoicas/StoreRating-api/internal/domain/rating"

// less aplica la dirección solo a la comparación principal; el desempate es id ascendente.
func less(cmp int, sort domrating.Sort, idA, idB string) bool {
	if cmp != 0 {
		if sort.Desc {
			return cmp > 0
		}
		return cmp < 0
	}
	return idA < idB
}
