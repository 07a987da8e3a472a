package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "lookdehoje/internal/log"
	"lookdehoje/internal/services"
)

type HeroHandler struct {
	Hero *services.HeroService
}

// GET /api/hero
func (h *HeroHandler) Get(c *fiber.Ctx) error {
	view, err := h.Hero.Get()
	if err != nil {
		return fail(c, "hero.get.fail", err)
	}
	return c.JSON(view)
}

// PUT /api/hero
func (h *HeroHandler) Replace(c *fiber.Ctx) error {
	var req services.ReplaceHeroInput
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	view, err := h.Hero.ReplaceAll(req)
	if err != nil {
		return fail(c, "hero.replace.fail", err)
	}
	applog.Audit(c, "hero.replace", map[string]any{"slides": len(view.Slides)})
	return c.JSON(view)
}
