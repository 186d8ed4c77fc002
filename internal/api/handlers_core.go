package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// RunReminders triggers one scan tick on demand. Per-item failures are logged
// inside the scan; the trigger itself always acknowledges.
func (handler *Handler) RunReminders(c *fiber.Ctx) error {
	handler.reminders.CheckAndSendReminders(c.UserContext())
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"ok": true})
}
