package api

import (
	"errors"
	"strconv"

	"github.com/antonkovh/medminder/internal/services"
	"github.com/gofiber/fiber/v2"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || parsed == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(parsed), nil
}

// respondMedicationError maps service sentinels onto HTTP statuses; not-found
// is a 404 outcome, validation a 400, anything else a 500.
func respondMedicationError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrMedicationNotFound):
		return apiError(c, fiber.StatusNotFound, "medication not found")
	case errors.Is(err, services.ErrInvalidMedicationInput):
		return apiError(c, fiber.StatusBadRequest, "invalid medication input")
	default:
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
}
