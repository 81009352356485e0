package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/StoreRating-api/internal/domain"
	domrating "github.com/jhoicas/StoreRating-api/internal/domain/rating"
)

func sortOf(key string, desc bool) domrating.Sort {
	return domrating.Sort{Key: domrating.SortKey(key), Desc: desc}
}

func TestContainsPattern_EscapaComodines(t *testing.T) {
	assert.Equal(t, "%Mart%", containsPattern("Mart"))
	assert.Equal(t, `%100\%%`, containsPattern("100%"))
	assert.Equal(t, `%a\_b%`, containsPattern("a_b"))
	assert.Equal(t, `%c:\\x%`, containsPattern(`c:\x`))
}

func TestWhereBuilder(t *testing.T) {
	w := newWhereBuilder("caller")
	assert.Equal(t, "", w.clause())

	w.contains("s.name", "mart")
	w.contains("s.email", "")
	w.contains("s.address", "calle")
	assert.Equal(t, ` WHERE s.name ILIKE $2 ESCAPE '\' AND s.address ILIKE $3 ESCAPE '\'`, w.clause())
	assert.Equal(t, []any{"caller", "%mart%", "%calle%"}, w.args)
}

func TestMapTxError(t *testing.T) {
	ser := fmt.Errorf("update: %w", &pgconn.PgError{Code: "40001"})
	assert.ErrorIs(t, mapTxError(ser), domain.ErrConflict)

	dead := &pgconn.PgError{Code: "40P01"}
	assert.ErrorIs(t, mapTxError(dead), domain.ErrConflict)

	other := errors.New("otro")
	assert.Equal(t, other, mapTxError(other))
	assert.Equal(t, domain.ErrStoreNotFound, mapTxError(domain.ErrStoreNotFound))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, isUniqueViolation(errors.New("23505 en el texto no cuenta")))
}

func TestCheckViolation_EsErrorDeValidacion(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23514", ConstraintName: "users_name_check"})
	assert.True(t, isCheckViolation(err))

	mapped := checkViolationError(err)
	assert.ErrorIs(t, mapped, domain.ErrInvalidInput)
	var ve *domain.ValidationError
	if assert.ErrorAs(t, mapped, &ve) {
		assert.Equal(t, "users_name_check", ve.Field)
	}

	assert.False(t, isCheckViolation(&pgconn.PgError{Code: "23505"}))
}

func TestOrderClauses(t *testing.T) {
	assert.Equal(t, " ORDER BY LOWER(s.name) ASC, s.id ASC", storeOrderBy(sortOf("name", false)))
	assert.Equal(t, " ORDER BY overall_rating DESC, s.id ASC", storeOrderBy(sortOf("rating", true)))
	assert.Equal(t, " ORDER BY u.role ASC, u.id ASC", userOrderBy(sortOf("role", false)))
	assert.Equal(t, " ORDER BY avg_rating DESC, u.id ASC", userOrderBy(sortOf("rating", true)))
}
