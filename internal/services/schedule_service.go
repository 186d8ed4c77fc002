package services

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/antonkovh/medminder/internal/models"
)

type ScheduleSlot struct {
	Slot          string     `json:"slot"`
	ScheduledTime string     `json:"scheduledTime"`
	Taken         bool       `json:"taken"`
	ReminderSent  bool       `json:"reminderSent"`
	TakenAt       *time.Time `json:"takenAt"`
}

type MedicationSchedule struct {
	Medication models.Medication `json:"medication"`
	Slots      []ScheduleSlot    `json:"slots"`
}

type ReminderStats struct {
	Total         int     `json:"total"`
	Taken         int     `json:"taken"`
	Pending       int     `json:"pending"`
	AdherenceRate float64 `json:"adherenceRate"`
}

type ScheduleMedicationReader interface {
	ListActiveReminderEnabledForUser(userID uint, date string) ([]models.Medication, error)
}

type ScheduleDoseLogReader interface {
	ListByMedicationAndDate(medicationID uint, date string) ([]models.DoseLog, error)
}

type ScheduleService struct {
	medications ScheduleMedicationReader
	doseLogs    ScheduleDoseLogReader
	clock       Clock
}

func NewScheduleService(medications ScheduleMedicationReader, doseLogs ScheduleDoseLogReader, clock Clock) *ScheduleService {
	return &ScheduleService{
		medications: medications,
		doseLogs:    doseLogs,
		clock:       clock,
	}
}

// BuildDaySchedule projects one medication's configured slots onto the
// ledger rows recorded for the day. Slots without a ledger row fall back to
// untaken defaults. The result is ordered by scheduled time; "HH:MM" strings
// compare lexically in chronological order.
func BuildDaySchedule(medication models.Medication, entries []models.DoseLog) []ScheduleSlot {
	recorded := make(map[string]models.DoseLog, len(entries))
	for _, entry := range entries {
		recorded[entry.Slot] = entry
	}

	slots := make([]ScheduleSlot, 0, len(medication.Times))
	for slot, scheduled := range medication.Times {
		if strings.TrimSpace(scheduled) == "" {
			continue
		}
		projected := ScheduleSlot{
			Slot:          slot,
			ScheduledTime: scheduled,
		}
		if entry, ok := recorded[slot]; ok {
			projected.Taken = entry.Taken
			projected.ReminderSent = entry.ReminderSent
			projected.TakenAt = entry.TakenAt
		}
		slots = append(slots, projected)
	}

	sort.Slice(slots, func(i, j int) bool {
		if slots[i].ScheduledTime == slots[j].ScheduledTime {
			return slots[i].Slot < slots[j].Slot
		}
		return slots[i].ScheduledTime < slots[j].ScheduledTime
	})
	return slots
}

func (service *ScheduleService) TodaysSchedule(userID uint) ([]MedicationSchedule, error) {
	return service.ScheduleForDate(userID, service.clock.Today())
}

func (service *ScheduleService) ScheduleForDate(userID uint, date string) ([]MedicationSchedule, error) {
	medications, err := service.medications.ListActiveReminderEnabledForUser(userID, date)
	if err != nil {
		return nil, err
	}

	schedules := make([]MedicationSchedule, 0, len(medications))
	for _, medication := range medications {
		entries, err := service.doseLogs.ListByMedicationAndDate(medication.ID, date)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, MedicationSchedule{
			Medication: medication,
			Slots:      BuildDaySchedule(medication, entries),
		})
	}
	return schedules, nil
}

func (service *ScheduleService) TodaysReminderStats(userID uint) (ReminderStats, error) {
	schedules, err := service.TodaysSchedule(userID)
	if err != nil {
		return ReminderStats{}, err
	}
	return BuildReminderStats(schedules), nil
}

func BuildReminderStats(schedules []MedicationSchedule) ReminderStats {
	stats := ReminderStats{}
	for _, schedule := range schedules {
		for _, slot := range schedule.Slots {
			stats.Total++
			if slot.Taken {
				stats.Taken++
			}
		}
	}
	stats.Pending = stats.Total - stats.Taken
	stats.AdherenceRate = roundedRate(stats.Taken, stats.Total)
	return stats
}

// roundedRate is taken/total as a percentage rounded to two decimal places,
// 0 when there is nothing to count.
func roundedRate(taken int, total int) float64 {
	if total == 0 {
		return 0
	}
	rate := float64(taken) / float64(total) * 100
	return math.Round(rate*100) / 100
}
