package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/soul-eater04/talentflow-api/internal/models"
)

// respondError maps the service error taxonomy onto status codes. The body
// carries a machine-readable code so callers can branch on the condition
// instead of pattern-matching message text. NoStageChange gets 409: it is a
// legitimate no-op, not a server fault, and must stay distinguishable from
// the retryable 500s the chaos layer produces.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, models.ErrNoStageChange):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
			"code":  "no_stage_change",
		})
	case errors.Is(err, models.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
			"code":  "not_found",
		})
	case errors.Is(err, models.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
			"code":  "validation_error",
		})
	default:
		log.Printf("❌ Internal error: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
			"code":  "internal_error",
		})
	}
}
