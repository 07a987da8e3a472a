package handlers

import (
	"github.com/gofiber/fiber/v2"

	"lookdehoje/internal/domain"
	applog "lookdehoje/internal/log"
	"lookdehoje/internal/services"
	"lookdehoje/internal/validate"
)

type PieceHandler struct {
	Pieces *services.PieceService
}

// The admin form submits images as objects; only the url matters here.
type imageRef struct {
	URL string `json:"url"`
}

func urlsOf(images []imageRef) []string {
	out := make([]string, 0, len(images))
	for _, img := range images {
		out = append(out, img.URL)
	}
	return out
}

// GET /api/pieces
func (h *PieceHandler) List(c *fiber.Ctx) error {
	pieces, err := h.Pieces.List()
	if err != nil {
		return fail(c, "pieces.list.fail", err)
	}
	return c.JSON(pieces)
}

// GET /api/pieces/:id
func (h *PieceHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "piece not found"})
	}
	p, err := h.Pieces.Get(id)
	if err != nil {
		return fail(c, "pieces.get.fail", err)
	}
	return c.JSON(p)
}

// POST /api/pieces
func (h *PieceHandler) Create(c *fiber.Ctx) error {
	var req struct {
		Name        string     `json:"name"`
		Description string     `json:"description"`
		Price       *float64   `json:"price"`
		Status      string     `json:"status"`
		CategoryID  string     `json:"category_id"`
		Images      []imageRef `json:"images"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	// Unpriced pieces rent for the house default.
	price := 100.0
	if req.Price != nil {
		price = *req.Price
	}

	p, err := h.Pieces.Create(services.CreatePieceInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		Available:   req.Status == domain.StatusAvailable,
		CategoryID:  req.CategoryID,
		ImageURLs:   urlsOf(req.Images),
	})
	if err != nil {
		return fail(c, "pieces.create.fail", err)
	}
	applog.Audit(c, "pieces.create", map[string]any{"id": p.ID})
	return c.Status(fiber.StatusCreated).JSON(p)
}

// PUT /api/pieces/:id
func (h *PieceHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid piece id")
	}
	var req struct {
		Name        *string     `json:"name"`
		Description *string     `json:"description"`
		Price       *float64    `json:"price"`
		Status      *string     `json:"status"`
		CategoryID  *string     `json:"category_id"`
		Images      *[]imageRef `json:"images"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	in := services.UpdatePieceInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
	}
	if req.Status != nil {
		available := *req.Status == domain.StatusAvailable
		in.Available = &available
	}
	if req.Images != nil {
		urls := urlsOf(*req.Images)
		in.ImageURLs = &urls
	}

	p, err := h.Pieces.Update(id, in)
	if err != nil {
		return fail(c, "pieces.update.fail", err)
	}
	applog.Audit(c, "pieces.update", map[string]any{"id": id})
	return c.JSON(p)
}

// PUT /api/pieces/:id/toggle-status
func (h *PieceHandler) ToggleStatus(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid piece id")
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	status, ok := validate.Status(req.Status)
	if !ok {
		return badRequest(c, "status must be \"available\" or \"rented\"")
	}

	p, err := h.Pieces.ToggleStatus(id, status)
	if err != nil {
		return fail(c, "pieces.toggle.fail", err)
	}
	applog.Audit(c, "pieces.toggle", map[string]any{"id": id, "status": p.Status})
	return c.JSON(p)
}

// DELETE /api/pieces/:id
func (h *PieceHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return badRequest(c, "invalid piece id")
	}
	if err := h.Pieces.Delete(id); err != nil {
		return fail(c, "pieces.delete.fail", err)
	}
	applog.Audit(c, "pieces.delete", map[string]any{"id": id})
	return c.SendStatus(fiber.StatusNoContent)
}
