package rating

import (
	"strings"

	"golang.org/x/text/cases"
)

// ContainsFold informa si needle aparece en s sin distinguir mayúsculas (plegado Unicode).
// Un needle vacío siempre coincide.
func ContainsFold(s, needle string) bool {
	if needle == "" {
		return true
	}
	c := cases.Fold()
	return strings.Contains(c.String(s), c.String(needle))
}

// CompareText compara dos textos para ordenamiento sin distinguir mayúsculas, como LOWER(col) en SQL.
// Textos que solo difieren en mayúsculas son iguales; el desempate lo decide quien ordena.
func CompareText(a, b string) int {
	c := cases.Fold()
	return strings.Compare(c.String(a), c.String(b))
}
