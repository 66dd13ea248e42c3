package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"greenloop/carbon"
	"greenloop/config"
	"greenloop/database"
	"greenloop/store"
)

// setupTestApp monte l'application complète sur une base SQLite en mémoire.
func setupTestApp(t *testing.T) (*fiber.App, config.Config) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := config.Config{Env: "test", JWTSecret: "test-secret"}

	app := fiber.New()
	emissionStore := store.NewEmissionStore(db)
	table := carbon.DefaultFactorTable()
	engine := carbon.NewEngine(emissionStore, carbon.DefaultEngineConfig())

	SetupAuthRoutes(app, db, cfg)
	SetupEmissionRoutes(app, emissionStore, table, cfg)
	SetupDashboardRoutes(app, engine, cfg)

	return app, cfg
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

type authResult struct {
	Token string `json:"token"`
	User  struct {
		ID   uint   `json:"ID"`
		Slug string `json:"slug"`
	} `json:"user"`
}

// registerTestUser crée un utilisateur via l'API et retourne son token et son id.
func registerTestUser(t *testing.T, app *fiber.App, email string) (string, uint) {
	t.Helper()

	resp := doJSON(t, app, http.MethodPost, "/auth/register", "", fiber.Map{
		"name":     "Test User",
		"email":    email,
		"password": "motdepasse",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var result authResult
	decodeBody(t, resp, &result)
	require.NotEmpty(t, result.Token)
	require.NotZero(t, result.User.ID)
	return result.Token, result.User.ID
}
