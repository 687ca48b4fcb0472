package http_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/fieldforce-api/internal/interfaces/http"
)

// fakeModuleChecker simula el servicio de módulos.
type fakeModuleChecker struct {
	active map[string]bool // moduleName → activo
	err    error
}

func (f *fakeModuleChecker) HasActiveModule(_ context.Context, _, moduleName string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.active[moduleName], nil
}

func buildModuleApp(moduleName string, checker *fakeModuleChecker) *fiber.App {
	app := fiber.New()
	app.Get("/gated",
		apphttp.AuthMiddleware(testJWTSecret, nil),
		apphttp.RequireModule(moduleName, checker),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)
	return app
}

func doGated(t *testing.T, app *fiber.App, role string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	req.Header.Set("Authorization", tokenForRole(t, role))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestRequireModule_ModuloActivoPasa(t *testing.T) {
	checker := &fakeModuleChecker{active: map[string]bool{"field_sales": true}}
	app := buildModuleApp("field_sales", checker)

	resp := doGated(t, app, "field_agent")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireModule_ModuloInactivoRetorna403(t *testing.T) {
	checker := &fakeModuleChecker{active: map[string]bool{}}
	app := buildModuleApp("promotions", checker)

	resp := doGated(t, app, "company_admin")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"módulo no contratado debe retornar 403")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MODULE_DISABLED")
}

func TestRequireModule_FalloDeInfraRetorna503(t *testing.T) {
	checker := &fakeModuleChecker{err: errors.New("db caída")}
	app := buildModuleApp("reporting", checker)

	resp := doGated(t, app, "company_admin")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MODULE_CHECK_FAILED")
}

// super_admin no tiene módulos contratados propios: pasa sin verificación.
func TestRequireModule_SuperAdminPasaSinVerificar(t *testing.T) {
	checker := &fakeModuleChecker{active: map[string]bool{}}
	app := buildModuleApp("field_sales", checker)

	resp := doGated(t, app, "super_admin")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
