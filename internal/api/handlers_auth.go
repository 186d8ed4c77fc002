package api

import (
	"errors"

	"github.com/antonkovh/medminder/internal/services"
	"github.com/gofiber/fiber/v2"
)

type registerInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	input := registerInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if input.Role == "" {
		input.Role = "patient"
	}

	user, err := handler.auth.Register(input.Email, input.Password, input.Name, input.Role)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			return apiError(c, fiber.StatusConflict, "email already registered")
		case errors.Is(err, services.ErrInvalidAuthInput):
			return apiError(c, fiber.StatusBadRequest, "invalid registration input")
		default:
			return apiError(c, fiber.StatusInternalServerError, "internal error")
		}
	}

	token, err := handler.buildToken(&user)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"token": token, "user": user})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := loginInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	user, err := handler.auth.Login(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
		}
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}

	token, err := handler.buildToken(&user)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
	return c.JSON(fiber.Map{"token": token, "user": user})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(user)
}
