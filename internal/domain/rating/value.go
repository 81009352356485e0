// Package rating reúne las reglas puras del libro de calificaciones:
// rango permitido, promedio redondeado, listas de ordenamiento permitidas
// y comparación de filtros. No depende de la persistencia.
package rating

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/StoreRating-api/internal/domain"
)

// Rango permitido para una calificación.
const (
	MinValue = 1
	MaxValue = 5
)

// averagePlaces decimales con los que se publica el promedio.
const averagePlaces = 1

// ValidateValue verifica que v sea un entero en [MinValue, MaxValue].
func ValidateValue(v int) error {
	if v < MinValue || v > MaxValue {
		return domain.ErrInvalidRating
	}
	return nil
}

// Average calcula la media aritmética de values redondeada a un decimal.
// Sin valores devuelve cero.
func Average(values []int) decimal.Decimal {
	if len(values) == 0 {
		return decimal.Zero
	}
	var sum int64
	for _, v := range values {
		sum += int64(v)
	}
	return RoundAverage(decimal.NewFromInt(sum).Div(decimal.NewFromInt(int64(len(values)))))
}

// RoundAverage redondea un promedio a un decimal (mitad lejos de cero, igual que ROUND de PostgreSQL).
func RoundAverage(avg decimal.Decimal) decimal.Decimal {
	return avg.Round(averagePlaces)
}

// FormatAverage representa el promedio con exactamente un decimal, ej. "4.0".
func FormatAverage(avg decimal.Decimal) string {
	return RoundAverage(avg).StringFixed(averagePlaces)
}
