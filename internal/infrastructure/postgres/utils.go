package postgres

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/StoreRating-api/internal/domain"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return pgCode(err) == "23505"
}

// isCheckViolation verifica si el error es una violación de CHECK (23514).
func isCheckViolation(err error) bool {
	return pgCode(err) == "23514"
}

// checkViolationError traduce una violación de CHECK a error de validación con el nombre del constraint.
func checkViolationError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.ConstraintName != "" {
		return domain.NewValidationError(pgErr.ConstraintName, "valor fuera de las reglas del campo")
	}
	return domain.NewValidationError("", "valor fuera de las reglas del campo")
}

// isRetryable serialization_failure (40001) o deadlock_detected (40P01).
func isRetryable(err error) bool {
	switch pgCode(err) {
	case "40001", "40P01":
		return true
	}
	return false
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func mapTxError(err error) error {
	if isRetryable(err) {
		return fmt.Errorf("%w: %v", domain.ErrConflict, err)
	}
	return err
}

// likeEscaper escapa los comodines de LIKE; la consulta usa ESCAPE '\'.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern patrón ILIKE "contiene" con el texto del usuario escapado.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// whereBuilder acumula condiciones con placeholders numerados ($n).
type whereBuilder struct {
	conds []string
	args  []any
}

func newWhereBuilder(args ...any) *whereBuilder {
	return &whereBuilder{args: args}
}

// arg registra un argumento y devuelve su placeholder.
func (w *whereBuilder) arg(v any) string {
	w.args = append(w.args, v)
	return "$" + strconv.Itoa(len(w.args))
}

// contains agrega "column ILIKE %needle%" si needle no está vacío.
func (w *whereBuilder) contains(column, needle string) {
	if needle == "" {
		return
	}
	w.conds = append(w.conds, column+` ILIKE `+w.arg(containsPattern(needle))+` ESCAPE '\'`)
}

func (w *whereBuilder) equals(column string, v any) {
	w.conds = append(w.conds, column+" = "+w.arg(v))
}

// clause devuelve " WHERE a AND b" o "" si no hay condiciones.
func (w *whereBuilder) clause() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}
