package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"vesselhub/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func prodConfig() *config.Config {
	return &config.Config{
		AppMode: "prod",
		Port:    "8000",
		JWT: config.JWTConfig{
			Secret:          "middleware-test-secret",
			AccessTokenMins: 30,
		},
		UploadDir: "uploads",
	}
}

func TestProdCORSWildcardWithoutCredentials(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "")

	app := fiber.New()
	Setup(app, prodConfig())
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://anywhere.example.com")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Credentials"))
}

func TestProdCORSExplicitOriginAllowsCredentials(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "https://fleet.example.com")

	app := fiber.New()
	Setup(app, prodConfig())
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://fleet.example.com")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "https://fleet.example.com", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))
}
