package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Get("/me", handler.AuthRequired, handler.Me)

	medications := api.Group("/medications", handler.AuthRequired)
	medications.Get("", handler.ListMedications)
	medications.Post("", handler.CreateMedication)
	medications.Get("/:id", handler.GetMedication)
	medications.Put("/:id", handler.UpdateMedication)
	medications.Delete("/:id", handler.DeleteMedication)
	medications.Post("/:id/taken", handler.MarkMedicationTaken)
	medications.Patch("/:id/reminders", handler.UpdateReminderSettings)

	schedule := api.Group("/schedule", handler.AuthRequired)
	schedule.Get("/today", handler.GetTodaysSchedule)
	schedule.Get("/stats", handler.GetReminderStats)

	api.Get("/adherence", handler.AuthRequired, handler.GetAdherence)

	logs := api.Group("/logs", handler.AuthRequired)
	logs.Get("", handler.ListHealthLogs)
	logs.Put("/:date", handler.UpsertHealthLog)

	care := api.Group("/care-links", handler.AuthRequired, handler.CaregiverOnly)
	care.Post("", handler.CreateCareLink)
	care.Get("/patients", handler.ListLinkedPatients)
	api.Get("/patients/:id/schedule", handler.AuthRequired, handler.CaregiverOnly, handler.GetPatientSchedule)

	api.Post("/reminders/run", handler.AuthRequired, handler.RunReminders)
}
