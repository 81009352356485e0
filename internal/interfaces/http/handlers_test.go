package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/StoreRating-api/internal/application/analytics"
	"github.com/jhoicas/StoreRating-api/internal/application/auth"
	"github.com/jhoicas/StoreRating-api/internal/application/dto"
	apprating "github.com/jhoicas/StoreRating-api/internal/application/rating"
	"github.com/jhoicas/StoreRating-api/internal/application/report"
	"github.com/jhoicas/StoreRating-api/internal/application/usecase"
	"github.com/jhoicas/StoreRating-api/internal/domain/entity"
	"github.com/jhoicas/StoreRating-api/internal/infrastructure/memory"
	"github.com/jhoicas/StoreRating-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/StoreRating-api/internal/interfaces/http"
	"github.com/jhoicas/StoreRating-api/pkg/logger"
)

const (
	adminEmail    = "root@example.com"
	adminPassword = "Admin#Pass1"
	userPassword  = "Usuario#123"
)

// buildAPI arma la API completa sobre el backend en memoria, con un admin sembrado.
func buildAPI(t *testing.T, authPerMinute, authBurst int) *fiber.App {
	t.Helper()
	db := memory.NewDB()
	tx := memory.NewTxRunner(db)
	userRepo := memory.NewUserRepository(db)
	storeRepo := memory.NewStoreRepository(db)
	ratingRepo := memory.NewRatingRepository(db)

	hash, err := auth.HashPassword(adminPassword)
	require.NoError(t, err)
	require.NoError(t, userRepo.Create(context.Background(), &entity.User{
		ID: uuid.NewString(), Name: "System Administrator", Email: adminEmail, Address: "N/A",
		PasswordHash: hash, Role: entity.RoleAdmin,
	}))

	ownerUC := usecase.NewOwnerUseCase(storeRepo, ratingRepo)
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:         auth.NewAuthUseCase(userRepo, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}),
		UserUC:         usecase.NewUserUseCase(userRepo, tx),
		StoreUC:        usecase.NewStoreUseCase(storeRepo, tx),
		OwnerUC:        ownerUC,
		RatingUC:       apprating.NewSubmitRatingUseCase(tx, ratingRepo),
		DashboardUC:    appanalytics.NewDashboardUseCase(memory.NewStatsRepository(db)),
		ReportUC:       report.NewPDFUseCase(ownerUC, pdf.NewMarotoReportGenerator()),
		Logger:         logger.Nop(),
		RequestTimeout: 5 * time.Second,
		AuthPerMinute:  authPerMinute,
		AuthBurst:      authBurst,
	})
	return app
}

// call envía JSON y decodifica la respuesta en out (si no es nil).
func call(t *testing.T, app *fiber.App, method, path, token string, body, out interface{}) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	if out != nil {
		defer resp.Body.Close()
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func login(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()
	var out dto.LoginResponse
	resp := call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: email, Password: password}, &out)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, out.Token)
	return out.Token
}

func register(t *testing.T, app *fiber.App, name, email string) string {
	t.Helper()
	resp := call(t, app, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Name: name, Email: email, Address: "Calle 10 # 4-20", Password: userPassword,
	}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return login(t, app, email, userPassword)
}

func createStore(t *testing.T, app *fiber.App, adminTok, name, email string) dto.StoreResponse {
	t.Helper()
	var out dto.StoreResponse
	resp := call(t, app, http.MethodPost, "/api/admin/stores", adminTok, dto.CreateStoreRequest{
		Name: name, Email: email, Address: "Av " + name, OwnerName: "Dueño " + name, OwnerPassword: userPassword,
	}, &out)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return out
}

func TestFlujoCompleto_CalificarYListar(t *testing.T) {
	app := buildAPI(t, 0, 0)
	adminTok := login(t, app, adminEmail, adminPassword)
	store := createStore(t, app, adminTok, "SuperMart", "mart@example.com")
	createStore(t, app, adminTok, "Corner Shop", "corner@example.com")

	ana := register(t, app, "Ana Gomez", "ana@example.com")
	luis := register(t, app, "Luis Perez", "luis@example.com")

	var sub dto.SubmitRatingResponse
	resp := call(t, app, http.MethodPost, "/api/ratings", ana, dto.SubmitRatingRequest{StoreID: store.ID, Rating: 4}, &sub)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, sub.Created)
	assert.Equal(t, "4.0", sub.AverageRating)

	resp = call(t, app, http.MethodPost, "/api/ratings", luis, dto.SubmitRatingRequest{StoreID: store.ID, Rating: 3}, &sub)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "3.5", sub.AverageRating)

	// Segundo envío de Ana: actualiza, no crea
	resp = call(t, app, http.MethodPost, "/api/ratings", ana, dto.SubmitRatingRequest{StoreID: store.ID, Rating: 5}, &sub)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, sub.Created)
	assert.Equal(t, "4.0", sub.AverageRating)
	assert.Equal(t, int64(2), sub.TotalRatings)

	var stores dto.StoreUserListResponse
	resp = call(t, app, http.MethodGet, "/api/stores?name=mart", ana, nil, &stores)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 1, stores.Total)
	assert.Equal(t, "4.0", stores.Items[0].OverallRating)
	require.NotNil(t, stores.Items[0].UserRating)
	assert.Equal(t, 5, *stores.Items[0].UserRating)

	var mine dto.UserRatingResponse
	resp = call(t, app, http.MethodGet, "/api/stores/"+store.ID+"/rating", luis, nil, &mine)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 3, mine.Rating)

	var admin dto.StoreAdminListResponse
	resp = call(t, app, http.MethodGet, "/api/admin/stores?sortBy=rating&sortOrder=desc", adminTok, nil, &admin)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 2, admin.Total)
	assert.Equal(t, store.ID, admin.Items[0].ID)
	assert.Equal(t, int64(2), admin.Items[0].TotalRatings)

	var dash dto.AdminDashboardResponse
	resp = call(t, app, http.MethodGet, "/api/admin/dashboard", adminTok, nil, &dash)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(5), dash.TotalUsers, "admin + 2 dueños + 2 usuarios")
	assert.Equal(t, int64(2), dash.TotalStores)
	assert.Equal(t, int64(2), dash.TotalRatings)
}

func TestSubmitRating_Errores(t *testing.T) {
	app := buildAPI(t, 0, 0)
	adminTok := login(t, app, adminEmail, adminPassword)
	store := createStore(t, app, adminTok, "SuperMart", "mart@example.com")
	ana := register(t, app, "Ana Gomez", "ana@example.com")

	var e dto.ErrorResponse
	resp := call(t, app, http.MethodPost, "/api/ratings", ana, dto.SubmitRatingRequest{StoreID: store.ID, Rating: 6}, &e)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_RATING", e.Code)

	resp = call(t, app, http.MethodPost, "/api/ratings", ana, dto.SubmitRatingRequest{StoreID: uuid.NewString(), Rating: 4}, &e)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "STORE_NOT_FOUND", e.Code)

	resp = call(t, app, http.MethodPost, "/api/ratings", ana, map[string]interface{}{"storeId": store.ID, "rating": 4.5}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "valor no entero")

	resp = call(t, app, http.MethodGet, "/api/stores/"+store.ID+"/rating", ana, nil, &e)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Un admin no puede calificar
	resp = call(t, app, http.MethodPost, "/api/ratings", adminTok, dto.SubmitRatingRequest{StoreID: store.ID, Rating: 4}, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestListados_OrdenNoPermitido(t *testing.T) {
	app := buildAPI(t, 0, 0)
	adminTok := login(t, app, adminEmail, adminPassword)
	ana := register(t, app, "Ana Gomez", "ana@example.com")

	var e dto.ErrorResponse
	resp := call(t, app, http.MethodGet, "/api/admin/users?sortBy=password", adminTok, nil, &e)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_SORT", e.Code)

	resp = call(t, app, http.MethodGet, "/api/stores?sortOrder=sideways", ana, nil, &e)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_SORT_ORDER", e.Code)

	resp = call(t, app, http.MethodGet, "/api/admin/users", ana, nil, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAdminUsuarios_CrearListarDetalle(t *testing.T) {
	app := buildAPI(t, 0, 0)
	adminTok := login(t, app, adminEmail, adminPassword)

	var created dto.CreateUserResponse
	resp := call(t, app, http.MethodPost, "/api/admin/users", adminTok, dto.CreateUserRequest{
		Name: "Olga Owner", Email: "olga@example.com", Address: "Calle 1", Password: userPassword, Role: "store_owner",
	}, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotNil(t, created.StoreID)

	resp = call(t, app, http.MethodPost, "/api/admin/users", adminTok, dto.CreateUserRequest{
		Name: "Olga Otra", Email: "olga@example.com", Address: "Calle 1", Password: userPassword, Role: "admin",
	}, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var list dto.UserListResponse
	resp = call(t, app, http.MethodGet, "/api/admin/users?role=store_owner", adminTok, nil, &list)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "0.0", list.Items[0].Rating)

	var item dto.UserListItem
	resp = call(t, app, http.MethodGet, "/api/admin/users/"+created.User.ID, adminTok, nil, &item)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "olga@example.com", item.Email)

	resp = call(t, app, http.MethodGet, "/api/admin/users/"+uuid.NewString(), adminTok, nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDueño_PanelYPDF(t *testing.T) {
	app := buildAPI(t, 0, 0)
	adminTok := login(t, app, adminEmail, adminPassword)
	store := createStore(t, app, adminTok, "SuperMart", "mart@example.com")
	ana := register(t, app, "Ana Gomez", "ana@example.com")
	call(t, app, http.MethodPost, "/api/ratings", ana, dto.SubmitRatingRequest{StoreID: store.ID, Rating: 4}, nil)

	ownerTok := login(t, app, "mart@example.com", userPassword)
	var dash dto.OwnerDashboardResponse
	resp := call(t, app, http.MethodGet, "/api/store-owner/dashboard", ownerTok, nil, &dash)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, store.ID, dash.Store.ID)
	assert.Equal(t, "4.0", dash.AverageRating)
	require.Len(t, dash.Raters, 1)
	assert.Equal(t, "Ana Gomez", dash.Raters[0].Name)

	req := httptest.NewRequest(http.MethodGet, "/api/store-owner/dashboard/pdf", nil)
	req.Header.Set("Authorization", "Bearer "+ownerTok)
	pdfResp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer pdfResp.Body.Close()
	assert.Equal(t, http.StatusOK, pdfResp.StatusCode)
	assert.Equal(t, "application/pdf", pdfResp.Header.Get("Content-Type"))
	assert.Contains(t, pdfResp.Header.Get("Content-Disposition"), "calificaciones_supermart_")

	resp = call(t, app, http.MethodGet, "/api/store-owner/dashboard", ana, nil, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAuth_VerifyYCambioDeContraseña(t *testing.T) {
	app := buildAPI(t, 0, 0)
	ana := register(t, app, "Ana Gomez", "ana@example.com")

	var me dto.UserResponse
	resp := call(t, app, http.MethodGet, "/api/auth/verify", ana, nil, &me)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "normal_user", me.Role)

	var e dto.ErrorResponse
	resp = call(t, app, http.MethodPut, "/api/users/password", ana, dto.UpdatePasswordRequest{
		CurrentPassword: "Incorrecta#1", NewPassword: "Nueva#Clave9",
	}, &e)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_PASSWORD", e.Code)

	resp = call(t, app, http.MethodPut, "/api/users/password", ana, dto.UpdatePasswordRequest{
		CurrentPassword: userPassword, NewPassword: "Nueva#Clave9",
	}, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	login(t, app, "ana@example.com", "Nueva#Clave9")

	resp = call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "ana@example.com", Password: userPassword}, &e)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRegister_ValidacionYDuplicado(t *testing.T) {
	app := buildAPI(t, 0, 0)
	register(t, app, "Ana Gomez", "ana@example.com")

	resp := call(t, app, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Name: "Ana Gomez", Email: "ana@example.com", Address: "x", Password: userPassword,
	}, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var e dto.ErrorResponse
	resp = call(t, app, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Name: "Ana Gomez", Email: "otra@example.com", Address: "x", Password: "corta",
	}, &e)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", e.Code)
}

func TestRateLimit_Auth(t *testing.T) {
	app := buildAPI(t, 1, 1)
	body := dto.LoginRequest{Email: adminEmail, Password: adminPassword}

	resp := call(t, app, http.MethodPost, "/api/auth/login", "", body, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var e dto.ErrorResponse
	resp = call(t, app, http.MethodPost, "/api/auth/login", "", body, &e)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "RATE_LIMITED", e.Code)
	assert.True(t, e.Retryable)
}
