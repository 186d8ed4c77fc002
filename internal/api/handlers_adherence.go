package api

import (
	"errors"

	"github.com/antonkovh/medminder/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetAdherence(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	startDate := c.Query("start")
	endDate := c.Query("end")

	report, err := handler.adherence.Adherence(user.ID, startDate, endDate)
	if err != nil {
		if errors.Is(err, services.ErrInvalidDateRange) {
			return apiError(c, fiber.StatusBadRequest, "invalid date range")
		}
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
	return c.JSON(report)
}
