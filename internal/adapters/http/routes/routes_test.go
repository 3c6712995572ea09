package routes_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"vesselhub/internal/adapters/http/middleware"
	"vesselhub/internal/adapters/http/routes"
	"vesselhub/internal/adapters/persistence/memory"
	"vesselhub/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := &config.Config{
		AppMode: "dev",
		Port:    "8000",
		JWT: config.JWTConfig{
			Secret:          "routes-test-secret",
			AccessTokenMins: 30,
		},
		UploadDir: t.TempDir(),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.CustomErrorHandler,
	})
	routes.Setup(app, memory.NewStore(), cfg)
	return app
}

func performRequest(t *testing.T, app *fiber.App, method, path string, body interface{}, token string) (*http.Response, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = json.Unmarshal(raw, &env)

	return resp, env
}

func login(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()

	resp, env := performRequest(t, app, http.MethodPost, "/auth/login", fiber.Map{
		"email":    email,
		"password": password,
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.AccessToken)
	return data.AccessToken
}

func TestHealthz(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthFlow(t *testing.T) {
	app := newTestApp(t)

	// Successful registration
	resp, env := performRequest(t, app, http.MethodPost, "/auth/register", fiber.Map{
		"email":      "sailor@example.com",
		"password":   "password123",
		"first_name": "Jonas",
		"surname":    "Berg",
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, env.Success)

	// Duplicate email
	resp, _ = performRequest(t, app, http.MethodPost, "/auth/register", fiber.Map{
		"email":    "sailor@example.com",
		"password": "password456",
	}, "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Login and call an authenticated endpoint
	token := login(t, app, "sailor@example.com", "password123")

	resp, env = performRequest(t, app, http.MethodGet, "/auth/me", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var me struct {
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, "sailor@example.com", me.Email)
	assert.Equal(t, "crew", me.Role)

	// No token and bad token are both rejected
	resp, _ = performRequest(t, app, http.MethodGet, "/auth/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = performRequest(t, app, http.MethodGet, "/auth/me", nil, "bogus-token")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRegisterValidation(t *testing.T) {
	app := newTestApp(t)

	// Bad email
	resp, _ := performRequest(t, app, http.MethodPost, "/auth/register", fiber.Map{
		"email":    "not-an-email",
		"password": "password123",
	}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Short password
	resp, _ = performRequest(t, app, http.MethodPost, "/auth/register", fiber.Map{
		"email":    "short@example.com",
		"password": "short",
	}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Unknown role
	resp, _ = performRequest(t, app, http.MethodPost, "/auth/register", fiber.Map{
		"email":    "role@example.com",
		"password": "password123",
		"role":     "pirate",
	}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestVesselRoleGate(t *testing.T) {
	app := newTestApp(t)

	resp, _ := performRequest(t, app, http.MethodPost, "/auth/register", fiber.Map{
		"email":    "crew@example.com",
		"password": "password123",
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	crewToken := login(t, app, "crew@example.com", "password123")

	resp, _ = performRequest(t, app, http.MethodPost, "/auth/register", fiber.Map{
		"email":    "admin@example.com",
		"password": "password123",
		"role":     "admin",
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	adminToken := login(t, app, "admin@example.com", "password123")

	vessel := fiber.Map{
		"name":        "MV Test Vessel",
		"vessel_type": "Tanker",
		"flag_state":  "Malta",
	}

	// Crew cannot create vessels
	resp, _ = performRequest(t, app, http.MethodPost, "/vessels", vessel, crewToken)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Admin can
	resp, _ = performRequest(t, app, http.MethodPost, "/vessels", vessel, adminToken)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	// Everyone authenticated can read the registry
	resp, env := performRequest(t, app, http.MethodGet, "/vessels", nil, crewToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var vessels []json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &vessels))
	assert.Len(t, vessels, 2) // seeded vessel plus the new one
}

func TestCrewProfileEndpoints(t *testing.T) {
	app := newTestApp(t)

	resp, _ := performRequest(t, app, http.MethodPost, "/auth/register", fiber.Map{
		"email":    "profile@example.com",
		"password": "password123",
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	token := login(t, app, "profile@example.com", "password123")

	// A fresh account has an empty profile
	resp, env := performRequest(t, app, http.MethodGet, "/profile", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, "{}", string(env.Data))

	// First write creates, second merges
	resp, _ = performRequest(t, app, http.MethodPut, "/profile", fiber.Map{
		"first_name":  "Nina",
		"nationality": "Danish",
	}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env = performRequest(t, app, http.MethodPut, "/profile", fiber.Map{
		"city_town": "Copenhagen",
	}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var profile struct {
		FirstName   string `json:"first_name"`
		Nationality string `json:"nationality"`
		CityTown    string `json:"city_town"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &profile))
	assert.Equal(t, "Nina", profile.FirstName)
	assert.Equal(t, "Danish", profile.Nationality)
	assert.Equal(t, "Copenhagen", profile.CityTown)

	// Malformed date is rejected
	resp, _ = performRequest(t, app, http.MethodPut, "/profile", fiber.Map{
		"date_of_birth": "12/04/1990",
	}, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAssignmentEndpoints(t *testing.T) {
	app := newTestApp(t)

	resp, _ := performRequest(t, app, http.MethodPost, "/auth/register", fiber.Map{
		"email":    "assign@example.com",
		"password": "password123",
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	token := login(t, app, "assign@example.com", "password123")

	// No assignment yet
	resp, env := performRequest(t, app, http.MethodGet, "/my-assignment", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "No active assignment", env.Message)

	// Unknown vessel is rejected
	resp, _ = performRequest(t, app, http.MethodPost, "/crew-assignments", fiber.Map{
		"vessel_id":  9999,
		"position":   "Deckhand",
		"start_date": "2026-09-01",
	}, token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Assign to the seeded vessel
	resp, _ = performRequest(t, app, http.MethodPost, "/crew-assignments", fiber.Map{
		"vessel_id":  1,
		"position":   "Deckhand",
		"start_date": "2026-09-01",
	}, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, env = performRequest(t, app, http.MethodGet, "/my-assignment", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var current struct {
		Assignment struct {
			Position string `json:"position"`
			IsActive bool   `json:"is_active"`
		} `json:"assignment"`
		Vessel struct {
			Name string `json:"name"`
		} `json:"vessel"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &current))
	assert.Equal(t, "Deckhand", current.Assignment.Position)
	assert.True(t, current.Assignment.IsActive)
	assert.Equal(t, "MV Ocean Explorer", current.Vessel.Name)
}

func TestMaintenanceEndpoints(t *testing.T) {
	app := newTestApp(t)

	resp, _ := performRequest(t, app, http.MethodPost, "/auth/register", fiber.Map{
		"email":    "ops@example.com",
		"password": "password123",
		"role":     "manager",
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	token := login(t, app, "ops@example.com", "password123")

	// Seeded record is visible
	resp, env := performRequest(t, app, http.MethodGet, "/maintenance", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var records []struct {
		ID    uint   `json:"id"`
		Title string `json:"title"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &records))
	require.Len(t, records, 1)
	assert.Equal(t, "Engine Oil Change", records[0].Title)

	// Status update
	resp, env = performRequest(t, app, http.MethodPut, "/maintenance/2", fiber.Map{
		"status": "completed",
	}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "completed", updated.Status)

	resp, _ = performRequest(t, app, http.MethodPut, "/maintenance/9999", fiber.Map{
		"status": "completed",
	}, token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Manager may file QHSE audits, dashboard reflects state
	resp, _ = performRequest(t, app, http.MethodPost, "/qhse", fiber.Map{
		"vessel_id":  1,
		"audit_type": "Internal",
		"audit_date": "2026-08-01",
		"auditor":    "J. Smith",
		"findings":   "No findings",
	}, token)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, env = performRequest(t, app, http.MethodGet, "/dashboard", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var dash struct {
		TotalVessels       int `json:"total_vessels"`
		PendingMaintenance int `json:"pending_maintenance"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &dash))
	assert.Equal(t, 1, dash.TotalVessels)
	assert.Equal(t, 0, dash.PendingMaintenance) // the seeded job was completed above
}
