package api

import (
	"errors"

	"github.com/antonkovh/medminder/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListHealthLogs(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	entries, err := handler.healthLogs.ListRange(user.ID, c.Query("start"), c.Query("end"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidHealthLogInput) {
			return apiError(c, fiber.StatusBadRequest, "invalid date range")
		}
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
	return c.JSON(entries)
}

func (handler *Handler) UpsertHealthLog(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	input := services.HealthLogInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	entry, err := handler.healthLogs.UpsertEntry(user.ID, c.Params("date"), input)
	if err != nil {
		if errors.Is(err, services.ErrInvalidHealthLogInput) {
			return apiError(c, fiber.StatusBadRequest, "invalid health log input")
		}
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
	return c.JSON(entry)
}
