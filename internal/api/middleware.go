package api

import (
	"strings"

	"github.com/antonkovh/medminder/internal/models"
	"github.com/gofiber/fiber/v2"
)

const contextUserKey = "current_user"

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	claims, err := handler.parseToken(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	user, found, err := handler.auth.FindByID(claims.UserID)
	if err != nil || !found {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	c.Locals(contextUserKey, &user)
	return c.Next()
}

// CaregiverOnly guards routes that act on linked patients.
func (handler *Handler) CaregiverOnly(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok || user.Role != models.RoleCaregiver {
		return apiError(c, fiber.StatusForbidden, "caregiver role required")
	}
	return c.Next()
}
