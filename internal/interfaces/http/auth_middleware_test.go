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

	apphttp "github.com/jhoicas/fieldforce-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/fieldforce-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testCompanyID = "00000000-0000-0000-0000-000000000002"
	testIssuer    = "fieldforce-test"
	testExpMin    = 60
)

// fakeRevoker simula la blacklist de tokens en memoria.
type fakeRevoker struct {
	revoked map[string]bool
	err     error
}

func (f *fakeRevoker) IsBlacklisted(_ context.Context, jti string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.revoked[jti], nil
}

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - RequireRole para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret, nil),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenForRole genera un JWT con el rol indicado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testCompanyID, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
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

// Caso 1: El usuario tiene el rol requerido → debe pasar (HTTP 200).
func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	app := buildTestApp("company_admin")
	resp := doRequest(t, app, tokenForRole(t, "company_admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"company_admin debe poder acceder a ruta restringida a company_admin")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"], "la respuesta debe incluir ok:true")
	assert.Equal(t, "company_admin", body["role"], "el role debe ser company_admin")
}

// Caso 1b: El usuario tiene uno de los roles permitidos (multi-rol) → HTTP 200.
func TestRequireRole_ManagerAccedeRutaAdminOManager(t *testing.T) {
	app := buildTestApp("company_admin", "area_manager")
	resp := doRequest(t, app, tokenForRole(t, "area_manager"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"area_manager debe poder acceder a ruta que permite admin o manager")
}

// Caso 2: El usuario tiene un rol diferente al requerido → HTTP 403 Forbidden.
func TestRequireRole_AgenteBloqueadoEnRutaAdmin(t *testing.T) {
	app := buildTestApp("company_admin")
	resp := doRequest(t, app, tokenForRole(t, "field_agent"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"field_agent no debe poder acceder a ruta restringida a company_admin")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"la respuesta de error debe incluir el código FORBIDDEN")
}

// Caso 2b: area_manager bloqueado en ruta solo super_admin → HTTP 403.
func TestRequireRole_ManagerBloqueadoEnRutaSuperAdmin(t *testing.T) {
	app := buildTestApp("super_admin")
	resp := doRequest(t, app, tokenForRole(t, "area_manager"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Caso 3: Token sin claim de rol (emulado con rol vacío) → HTTP 401.
func TestRequireRole_TokenSinRol_Retorna401(t *testing.T) {
	app := buildTestApp("company_admin")
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testCompanyID, "", testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"token sin rol debe retornar 401")
}

// Caso 4: Sin header Authorization → HTTP 401 MISSING_TOKEN.
func TestRequireRole_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp("company_admin")
	resp := doRequest(t, app, "") // sin header
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

// Caso 5: Token inválido / malformado → HTTP 401 INVALID_TOKEN.
func TestRequireRole_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp("company_admin")
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — extracción de claims y revocación
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret, nil), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":    apphttp.GetUserID(c),
			"company_id": apphttp.GetCompanyID(c),
			"role":       apphttp.GetRole(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenForRole(t, "company_admin"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testCompanyID, body["company_id"])
	assert.Equal(t, "company_admin", body["role"])
}

func TestAuthMiddleware_TokenRevocado_Retorna401(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testCompanyID, "field_agent", testIssuer, testExpMin)
	require.NoError(t, err)
	claims, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	revoker := &fakeRevoker{revoked: map[string]bool{claims.ID: true}}
	app := fiber.New()
	app.Get("/protected", apphttp.AuthMiddleware(testJWTSecret, revoker), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"un token en la blacklist no debe pasar el middleware")
}

func TestAuthMiddleware_TokenNoRevocado_Pasa(t *testing.T) {
	revoker := &fakeRevoker{revoked: map[string]bool{}}
	app := fiber.New()
	app.Get("/protected", apphttp.AuthMiddleware(testJWTSecret, revoker), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", tokenForRole(t, "field_agent"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
