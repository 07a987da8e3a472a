package handlers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminSettingsRoutes(t *testing.T) {
	app := newApp(t)

	// Never configured: empty object, not an error.
	resp, body := do(t, app, jsonReq(t, "GET", "/api/admin/settings", nil))
	require.Equal(t, 200, resp.StatusCode)
	assert.Empty(t, body)

	// store_name is mandatory.
	resp, _ = do(t, app, jsonReq(t, "PUT", "/api/admin/settings", map[string]any{
		"instagram_url": "https://instagram.com/looksdehoje",
	}))
	assert.Equal(t, 400, resp.StatusCode)

	// First write creates the singleton.
	resp, body = do(t, app, jsonReq(t, "PUT", "/api/admin/settings", map[string]any{
		"store_name": "Looks de Hoje",
		"email":      "contato@looksdehoje.com",
	}))
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "settings", body["id"])

	// Patch preserves what the patch omits.
	resp, body = do(t, app, jsonReq(t, "PUT", "/api/admin/settings", map[string]any{
		"store_name":   "Looks de Hoje",
		"whatsapp_url": "https://wa.me/5511999999999",
	}))
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "contato@looksdehoje.com", body["email"])
	assert.Equal(t, "https://wa.me/5511999999999", body["whatsapp_url"])
}

func TestAdminPasswordRouteDisabled(t *testing.T) {
	app := newApp(t)

	resp, body := do(t, app, jsonReq(t, "PUT", "/api/admin/password", map[string]any{
		"current_password": "a",
		"new_password":     "b",
		"confirm_password": "b",
	}))
	assert.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, "password change is disabled because login has been removed", body["message"])
}
