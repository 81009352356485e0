package rating_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/StoreRating-api/internal/application/dto"
	apprating "github.com/jhoicas/StoreRating-api/internal/application/rating"
	"github.com/jhoicas/StoreRating-api/internal/domain"
	"github.com/jhoicas/StoreRating-api/internal/domain/entity"
	"github.com/jhoicas/StoreRating-api/internal/infrastructure/memory"
)

type fixture struct {
	uc      *apprating.SubmitRatingUseCase
	storeID string
	users   []string
}

func newFixture(t *testing.T, nUsers int) fixture {
	t.Helper()
	ctx := context.Background()
	db := memory.NewDB()
	userRepo := memory.NewUserRepository(db)
	f := fixture{
		uc:      apprating.NewSubmitRatingUseCase(memory.NewTxRunner(db), memory.NewRatingRepository(db)),
		storeID: uuid.NewString(),
	}
	for i := 0; i < nUsers; i++ {
		id := uuid.NewString()
		require.NoError(t, userRepo.Create(ctx, &entity.User{
			ID: id, Name: "Usuario Prueba", Email: id + "@example.com", Role: entity.RoleNormalUser,
		}))
		f.users = append(f.users, id)
	}
	require.NoError(t, memory.NewStoreRepository(db).Create(ctx, &entity.Store{
		ID: f.storeID, Name: "SuperMart", Email: "mart@example.com", Address: "Calle 1",
	}))
	return f
}

func (f fixture) submit(t *testing.T, user string, v int) (string, int64, bool) {
	t.Helper()
	out, err := f.uc.Submit(context.Background(), apprating.SubmitRatingInput{UserID: user, StoreID: f.storeID, Value: v})
	require.NoError(t, err)
	return out.AverageRating, out.TotalRatings, out.Created
}

func TestSubmit_EscenarioPromedio(t *testing.T) {
	f := newFixture(t, 4)

	f.submit(t, f.users[0], 4)
	f.submit(t, f.users[1], 5)
	avg, n, _ := f.submit(t, f.users[2], 3)
	assert.Equal(t, "4.0", avg)
	assert.Equal(t, int64(3), n)

	avg, n, created := f.submit(t, f.users[3], 2)
	assert.Equal(t, "3.5", avg)
	assert.Equal(t, int64(4), n)
	assert.True(t, created)

	// El primer usuario cambia 4 → 5: (5+5+3+2)/4 = 3.75 → 3.8, sin fila nueva
	avg, n, created = f.submit(t, f.users[0], 5)
	assert.Equal(t, "3.8", avg)
	assert.Equal(t, int64(4), n)
	assert.False(t, created)
}

func TestSubmit_ActualizaConservaCreatedAt(t *testing.T) {
	f := newFixture(t, 1)
	f.submit(t, f.users[0], 2)
	first, err := f.uc.GetUserRating(context.Background(), f.users[0], f.storeID)
	require.NoError(t, err)

	f.submit(t, f.users[0], 4)
	second, err := f.uc.GetUserRating(context.Background(), f.users[0], f.storeID)
	require.NoError(t, err)
	assert.Equal(t, 4, second.Rating)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.False(t, second.UpdatedAt.Before(first.UpdatedAt))
}

func TestSubmit_ValorInvalidoNoCambiaNada(t *testing.T) {
	f := newFixture(t, 1)
	f.submit(t, f.users[0], 3)

	for _, v := range []int{0, 6, -2} {
		_, err := f.uc.Submit(context.Background(), apprating.SubmitRatingInput{UserID: f.users[0], StoreID: f.storeID, Value: v})
		assert.ErrorIs(t, err, domain.ErrInvalidRating)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}

	r, err := f.uc.GetUserRating(context.Background(), f.users[0], f.storeID)
	require.NoError(t, err)
	assert.Equal(t, 3, r.Rating)
}

func TestSubmit_TiendaInexistente(t *testing.T) {
	f := newFixture(t, 1)
	_, err := f.uc.Submit(context.Background(), apprating.SubmitRatingInput{
		UserID: f.users[0], StoreID: uuid.NewString(), Value: 4,
	})
	assert.ErrorIs(t, err, domain.ErrStoreNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSubmit_IDTiendaMalFormado(t *testing.T) {
	f := newFixture(t, 1)
	_, err := f.uc.Submit(context.Background(), apprating.SubmitRatingInput{
		UserID: f.users[0], StoreID: "no-es-un-uuid", Value: 4,
	})
	var ve *domain.ValidationError
	assert.ErrorAs(t, err, &ve)
	assert.Equal(t, "storeId", ve.Field)
}

func TestGetUserRating_SinCalificacion(t *testing.T) {
	f := newFixture(t, 1)
	_, err := f.uc.GetUserRating(context.Background(), f.users[0], f.storeID)
	assert.ErrorIs(t, err, domain.ErrRatingNotFound)
}

func TestSubmit_ConcurrenteMismoUsuarioUnaSolaFila(t *testing.T) {
	const workers = 16
	f := newFixture(t, 1)
	user := f.users[0]

	type result struct {
		out *dto.SubmitRatingResponse
		err error
	}
	results := make([]result, workers)
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			out, err := f.uc.Submit(context.Background(), apprating.SubmitRatingInput{
				UserID: user, StoreID: f.storeID, Value: i%5 + 1,
			})
			results[i] = result{out: out, err: err}
		}(i)
	}
	close(start)
	wg.Wait()

	created := 0
	for _, r := range results {
		require.NoError(t, r.err)
		assert.Equal(t, int64(1), r.out.TotalRatings)
		if r.out.Created {
			created++
		}
	}
	assert.Equal(t, 1, created, "solo la primera escritura crea la fila")

	mine, err := f.uc.GetUserRating(context.Background(), user, f.storeID)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, mine.Rating, 1)
	assert.LessOrEqual(t, mine.Rating, 5)
}

func TestSubmit_ConcurrenteVariosUsuarios(t *testing.T) {
	const users = 12
	f := newFixture(t, users)

	var wg sync.WaitGroup
	errs := make([]error, users)
	for i, u := range f.users {
		wg.Add(1)
		go func(i int, u string) {
			defer wg.Done()
			_, errs[i] = f.uc.Submit(context.Background(), apprating.SubmitRatingInput{UserID: u, StoreID: f.storeID, Value: 4})
		}(i, u)
	}
	wg.Wait()
	for _, err := range errs {
		require.NoError(t, err)
	}

	avg, n, created := f.submit(t, f.users[0], 4)
	assert.Equal(t, "4.0", avg)
	assert.Equal(t, int64(users), n)
	assert.False(t, created)
}
