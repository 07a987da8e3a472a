package handlers

import (
	"github.com/gofiber/fiber/v2"

	"lookdehoje/internal/domain"
	applog "lookdehoje/internal/log"
)

// fail maps a service error to the HTTP surface. Validation → 400,
// not-found → 404, conflict → 409. Anything outside the taxonomy is a
// storage failure: logged in full, answered with a generic 500.
func fail(c *fiber.Ctx, action string, err error) error {
	switch {
	case domain.IsValidation(err):
		applog.Security(c, action, map[string]any{"reason": err.Error()})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	case domain.IsNotFound(err):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
	case domain.IsConflict(err):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})
	}
	applog.Error(c, action, err, nil)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal server error"})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msg})
}
