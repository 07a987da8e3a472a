package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "lookdehoje/internal/log"
	"lookdehoje/internal/services"
)

type AdminHandler struct {
	Store *services.StoreService
}

// GET /api/admin/settings
func (h *AdminHandler) GetSettings(c *fiber.Ctx) error {
	s, err := h.Store.Get()
	if err != nil {
		return fail(c, "admin.settings.get.fail", err)
	}
	if s == nil {
		// Never configured: callers treat the empty object as "use defaults".
		return c.JSON(fiber.Map{})
	}
	return c.JSON(s)
}

// PUT /api/admin/settings
func (h *AdminHandler) UpdateSettings(c *fiber.Ctx) error {
	var req services.UpdateStoreInput
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	s, err := h.Store.Update(req)
	if err != nil {
		return fail(c, "admin.settings.update.fail", err)
	}
	applog.Audit(c, "admin.settings.update", map[string]any{"store_name": s.StoreName})
	return c.JSON(s)
}

// PUT /api/admin/password
//
// Login was removed from the product, so there is no password to change.
// The route stays registered so old dashboard builds get a clear answer.
func (h *AdminHandler) ChangePassword(c *fiber.Ctx) error {
	return badRequest(c, "password change is disabled because login has been removed")
}
