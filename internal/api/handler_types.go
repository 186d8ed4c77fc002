package api

import (
	"github.com/antonkovh/medminder/internal/services"
)

type Handler struct {
	auth        *services.AuthService
	medications *services.MedicationService
	schedule    *services.ScheduleService
	adherence   *services.AdherenceService
	healthLogs  *services.HealthLogService
	care        *services.CareService
	reminders   *services.ReminderService
	secretKey   []byte
}

func NewHandler(
	auth *services.AuthService,
	medications *services.MedicationService,
	schedule *services.ScheduleService,
	adherence *services.AdherenceService,
	healthLogs *services.HealthLogService,
	care *services.CareService,
	reminders *services.ReminderService,
	secretKey string,
) *Handler {
	return &Handler{
		auth:        auth,
		medications: medications,
		schedule:    schedule,
		adherence:   adherence,
		healthLogs:  healthLogs,
		care:        care,
		reminders:   reminders,
		secretKey:   []byte(secretKey),
	}
}
