package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/StoreRating-api/internal/application/auth"
	"github.com/jhoicas/StoreRating-api/internal/domain/entity"
	"github.com/jhoicas/StoreRating-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/StoreRating-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/StoreRating-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "store-rating-test"
	testExpMin    = 60
)

var testUserIDs = map[entity.Role]string{
	entity.RoleAdmin:      "00000000-0000-0000-0000-000000000001",
	entity.RoleNormalUser: "00000000-0000-0000-0000-000000000002",
	entity.RoleStoreOwner: "00000000-0000-0000-0000-000000000003",
}

// newResolver crea un AuthUseCase sobre memoria con un usuario por rol.
func newResolver(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	db := memory.NewDB()
	repo := memory.NewUserRepository(db)
	for role, id := range testUserIDs {
		require.NoError(t, repo.Create(context.Background(), &entity.User{
			ID: id, Name: "Usuario " + role.String(), Email: role.String() + "@example.com", Role: role,
		}))
	}
	return auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer})
}

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para resolver el token al usuario guardado
//   - RequireRole para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(t *testing.T, allowedRoles ...entity.Role) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(newResolver(t)),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":      true,
				"role":    apphttp.GetRole(c),
				"user_id": apphttp.GetUserID(c),
			})
		},
	)
	return app
}

// tokenFor genera un JWT para userID con el claim de rol indicado.
func tokenFor(t *testing.T, userID, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, userID, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func tokenForRole(t *testing.T, role entity.Role) string {
	return tokenFor(t, testUserIDs[role], role.String())
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	app := buildTestApp(t, entity.RoleAdmin)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "admin", body["role"])
	assert.Equal(t, testUserIDs[entity.RoleAdmin], body["user_id"])
}

func TestRequireRole_DueñoAccedeRutaMultiRol(t *testing.T) {
	app := buildTestApp(t, entity.RoleAdmin, entity.RoleStoreOwner)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleStoreOwner))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_UsuarioNormalBloqueadoEnRutaAdmin(t *testing.T) {
	app := buildTestApp(t, entity.RoleAdmin)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleNormalUser))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

// El claim de rol no concede permisos: manda el rol del usuario guardado.
func TestRequireRole_ClaimDeRolFalsificadoNoEleva(t *testing.T) {
	app := buildTestApp(t, entity.RoleAdmin)
	resp := doRequest(t, app, tokenFor(t, testUserIDs[entity.RoleNormalUser], "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAuthMiddleware_UsuarioInexistente_Retorna401(t *testing.T) {
	app := buildTestApp(t, entity.RoleAdmin)
	resp := doRequest(t, app, tokenFor(t, "00000000-0000-0000-0000-0000000000ff", "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

func TestAuthMiddleware_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp(t, entity.RoleAdmin)
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(t, entity.RoleAdmin)
	for _, h := range []string{"Bearer token.invalido.aqui", "Basic abc", "Bearer"} {
		resp := doRequest(t, app, h)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, h)
		resp.Body.Close()
	}
}

func TestAuthMiddleware_TokenExpirado_Retorna401(t *testing.T) {
	app := buildTestApp(t, entity.RoleAdmin)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserIDs[entity.RoleAdmin], "admin", testIssuer, -1)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
