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

// fakeLimiter simula el limitador de login con ventana fija.
type fakeLimiter struct {
	max   int
	count int
	err   error
}

func (f *fakeLimiter) Allow(_ context.Context, _ string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	f.count++
	return f.count <= f.max, nil
}

func buildLoginApp(limiter *fakeLimiter) *fiber.App {
	app := fiber.New()
	app.Post("/login", apphttp.LoginRateLimit(limiter), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func postLogin(t *testing.T, app *fiber.App) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestLoginRateLimit_DentroDelCupoPasa(t *testing.T) {
	app := buildLoginApp(&fakeLimiter{max: 5})

	for i := 0; i < 5; i++ {
		resp := postLogin(t, app)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}
}

func TestLoginRateLimit_CupoAgotadoRetorna429(t *testing.T) {
	app := buildLoginApp(&fakeLimiter{max: 2})

	for i := 0; i < 2; i++ {
		resp := postLogin(t, app)
		resp.Body.Close()
	}
	resp := postLogin(t, app)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode,
		"el tercer intento debe ser rechazado")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "RATE_LIMITED")
}

// Redis caído no debe bloquear el login.
func TestLoginRateLimit_FalloDeRedisDejaPasar(t *testing.T) {
	app := buildLoginApp(&fakeLimiter{err: errors.New("redis caído")})

	resp := postLogin(t, app)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
