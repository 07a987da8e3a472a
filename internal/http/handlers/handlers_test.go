package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"lookdehoje/internal/config"
	"lookdehoje/internal/http/handlers"
	applog "lookdehoje/internal/log"
	"lookdehoje/internal/repos"
)

// newApp wires the API against an in-memory database and a throwaway
// upload directory, mirroring the route table in cmd/lookdehoje.
func newApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := sqlx.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, repos.EnsureSchema(db))

	cfg := config.Config{
		UploadDir:     t.TempDir(),
		PublicBaseURL: "http://test.local",
	}
	deps, err := handlers.NewDeps(db, cfg)
	require.NoError(t, err)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal server error"})
		},
	})
	app.Use(requestid.New())

	api := app.Group("/api")
	api.Get("/categories", deps.Categories.List)
	api.Post("/categories", deps.Categories.Create)
	api.Put("/categories/:id", deps.Categories.Update)
	api.Delete("/categories/:id", deps.Categories.Delete)

	api.Get("/pieces", deps.Pieces.List)
	api.Post("/pieces/upload-images", deps.Uploads.UploadImages)
	api.Post("/pieces", deps.Pieces.Create)
	api.Get("/pieces/:id", deps.Pieces.Get)
	api.Put("/pieces/:id/toggle-status", deps.Pieces.ToggleStatus)
	api.Put("/pieces/:id", deps.Pieces.Update)
	api.Delete("/pieces/:id", deps.Pieces.Delete)

	api.Get("/hero", deps.Hero.Get)
	api.Put("/hero", deps.Hero.Replace)

	api.Get("/admin/settings", deps.Admin.GetSettings)
	api.Put("/admin/settings", deps.Admin.UpdateSettings)
	api.Put("/admin/password", deps.Admin.ChangePassword)

	return app
}

func jsonReq(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func do(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := app.Test(req)
	require.NoError(t, err)
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	_ = json.Unmarshal(b, &out)
	return resp, out
}
