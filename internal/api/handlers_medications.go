package api

import (
	"github.com/antonkovh/medminder/internal/services"
	"github.com/gofiber/fiber/v2"
)

type markTakenInput struct {
	Date string `json:"date"`
	Slot string `json:"slot"`
}

type reminderSettingsInput struct {
	Enabled bool `json:"enabled"`
}

func (handler *Handler) ListMedications(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	medications, err := handler.medications.List(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
	return c.JSON(medications)
}

func (handler *Handler) GetMedication(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	medicationID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid medication id")
	}

	medication, err := handler.medications.Get(medicationID, user.ID)
	if err != nil {
		return respondMedicationError(c, err)
	}
	return c.JSON(medication)
}

func (handler *Handler) CreateMedication(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	input := services.MedicationInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	medication, err := handler.medications.Create(user.ID, input)
	if err != nil {
		return respondMedicationError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(medication)
}

func (handler *Handler) UpdateMedication(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	medicationID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid medication id")
	}

	input := services.MedicationInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	medication, err := handler.medications.Update(medicationID, user.ID, input)
	if err != nil {
		return respondMedicationError(c, err)
	}
	return c.JSON(medication)
}

func (handler *Handler) DeleteMedication(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	medicationID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid medication id")
	}

	if err := handler.medications.Delete(medicationID, user.ID); err != nil {
		return respondMedicationError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) MarkMedicationTaken(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	medicationID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid medication id")
	}

	input := markTakenInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	medication, err := handler.medications.MarkTaken(medicationID, user.ID, input.Date, input.Slot)
	if err != nil {
		return respondMedicationError(c, err)
	}
	return c.JSON(medication)
}

func (handler *Handler) UpdateReminderSettings(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	medicationID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid medication id")
	}

	input := reminderSettingsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	medication, err := handler.medications.UpdateReminderSettings(medicationID, user.ID, input.Enabled)
	if err != nil {
		return respondMedicationError(c, err)
	}
	return c.JSON(medication)
}
