package api

import (
	"errors"

	"github.com/antonkovh/medminder/internal/services"
	"github.com/gofiber/fiber/v2"
)

type careLinkInput struct {
	PatientEmail string `json:"patientEmail"`
}

func (handler *Handler) CreateCareLink(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	input := careLinkInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	patient, err := handler.care.LinkPatient(user.ID, input.PatientEmail)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPatientNotFound):
			return apiError(c, fiber.StatusNotFound, "patient not found")
		case errors.Is(err, services.ErrCareLinkExists):
			return apiError(c, fiber.StatusConflict, "care link already exists")
		case errors.Is(err, services.ErrSelfCareLink):
			return apiError(c, fiber.StatusBadRequest, "cannot link to yourself")
		default:
			return apiError(c, fiber.StatusInternalServerError, "internal error")
		}
	}
	return c.Status(fiber.StatusCreated).JSON(patient)
}

func (handler *Handler) ListLinkedPatients(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	patients, err := handler.care.ListPatients(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
	return c.JSON(patients)
}
