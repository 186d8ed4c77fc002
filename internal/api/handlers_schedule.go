package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetTodaysSchedule(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	schedules, err := handler.schedule.TodaysSchedule(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
	return c.JSON(schedules)
}

func (handler *Handler) GetReminderStats(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	stats, err := handler.schedule.TodaysReminderStats(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
	return c.JSON(stats)
}

// GetPatientSchedule lets a linked caregiver read a patient's schedule.
func (handler *Handler) GetPatientSchedule(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	patientID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid patient id")
	}

	linked, err := handler.care.CanView(user.ID, patientID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
	if !linked {
		return apiError(c, fiber.StatusForbidden, "patient not linked")
	}

	schedules, err := handler.schedule.TodaysSchedule(patientID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
	return c.JSON(schedules)
}
