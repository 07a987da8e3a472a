package handlers

import (
	"github.com/gofiber/fiber/v2"

	"lookdehoje/internal/domain"
	applog "lookdehoje/internal/log"
	"lookdehoje/internal/services"
	"lookdehoje/internal/validate"
)

type CategoryHandler struct {
	Cats *services.CategoryService
}

// GET /api/categories
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	cats, err := h.Cats.List()
	if err != nil {
		return fail(c, "categories.list.fail", err)
	}
	return c.JSON(cats)
}

// POST /api/categories
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var req struct {
		Name     string `json:"name"`
		IsActive *bool  `json:"is_active"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	cat, err := h.Cats.Create(req.Name, req.IsActive)
	if err != nil {
		return fail(c, "categories.create.fail", err)
	}
	applog.Audit(c, "categories.create", map[string]any{"id": cat.ID, "slug": cat.Slug})
	return c.Status(fiber.StatusCreated).JSON(cat)
}

// PUT /api/categories/:id
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid category id")
	}
	var req services.UpdateCategoryInput
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	cat, err := h.Cats.Update(id, req)
	if err != nil {
		return fail(c, "categories.update.fail", err)
	}
	applog.Audit(c, "categories.update", map[string]any{"id": id})
	return c.JSON(cat)
}

// DELETE /api/categories/:id
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid category id")
	}

	if err := h.Cats.Delete(id); err != nil {
		// A still-referenced category is a client error on this route,
		// not a 409: the admin UI relies on the 400.
		if domain.IsConflict(err) {
			applog.Security(c, "categories.delete.blocked", map[string]any{"id": id})
			return badRequest(c, err.Error())
		}
		return fail(c, "categories.delete.fail", err)
	}
	applog.Audit(c, "categories.delete", map[string]any{"id": id})
	return c.SendStatus(fiber.StatusNoContent)
}
