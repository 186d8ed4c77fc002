package services

import (
	"testing"
	"time"

	"github.com/antonkovh/medminder/internal/models"
)

func TestBuildDayScheduleSortsByScheduledTime(t *testing.T) {
	medication := models.Medication{
		ID: 1,
		Times: map[string]string{
			"evening":   "20:00",
			"morning":   "08:00",
			"afternoon": "14:00",
		},
	}

	slots := BuildDaySchedule(medication, nil)
	if len(slots) != 3 {
		t.Fatalf("expected three slots, got %d", len(slots))
	}
	if slots[0].ScheduledTime != "08:00" || slots[1].ScheduledTime != "14:00" || slots[2].ScheduledTime != "20:00" {
		t.Fatalf("expected chronological order, got %q %q %q", slots[0].ScheduledTime, slots[1].ScheduledTime, slots[2].ScheduledTime)
	}
}

func TestBuildDayScheduleDefaultsWithoutLedgerRow(t *testing.T) {
	medication := models.Medication{ID: 1, Times: map[string]string{"morning": "08:00"}}

	slots := BuildDaySchedule(medication, nil)
	if len(slots) != 1 {
		t.Fatalf("expected one slot, got %d", len(slots))
	}
	slot := slots[0]
	if slot.Taken || slot.ReminderSent || slot.TakenAt != nil {
		t.Fatalf("expected untaken defaults, got %+v", slot)
	}
}

func TestBuildDayScheduleProjectsLedgerState(t *testing.T) {
	takenAt := time.Date(2024, 3, 2, 8, 3, 0, 0, time.UTC)
	medication := models.Medication{ID: 1, Times: map[string]string{"morning": "08:00", "evening": "20:00"}}
	entries := []models.DoseLog{
		{MedicationID: 1, Date: "2024-03-02", Slot: "morning", Taken: true, ReminderSent: true, TakenAt: &takenAt},
	}

	slots := BuildDaySchedule(medication, entries)
	if len(slots) != 2 {
		t.Fatalf("expected two slots, got %d", len(slots))
	}
	if !slots[0].Taken || !slots[0].ReminderSent || slots[0].TakenAt == nil {
		t.Fatalf("expected morning slot to carry ledger state, got %+v", slots[0])
	}
	if slots[1].Taken || slots[1].ReminderSent {
		t.Fatalf("expected evening slot untouched, got %+v", slots[1])
	}
}

func TestBuildDayScheduleSkipsEmptyTimes(t *testing.T) {
	medication := models.Medication{ID: 1, Times: map[string]string{"morning": "08:00", "night": ""}}

	slots := BuildDaySchedule(medication, nil)
	if len(slots) != 1 || slots[0].Slot != "morning" {
		t.Fatalf("expected only the morning slot, got %+v", slots)
	}
}

func TestBuildReminderStatsRounding(t *testing.T) {
	schedules := []MedicationSchedule{
		{Slots: []ScheduleSlot{
			{Slot: "morning", Taken: true},
			{Slot: "afternoon"},
			{Slot: "evening"},
		}},
	}

	stats := BuildReminderStats(schedules)
	if stats.Total != 3 || stats.Taken != 1 || stats.Pending != 2 {
		t.Fatalf("expected 3/1/2, got %d/%d/%d", stats.Total, stats.Taken, stats.Pending)
	}
	if stats.AdherenceRate != 33.33 {
		t.Fatalf("expected adherence 33.33, got %v", stats.AdherenceRate)
	}
}

func TestBuildReminderStatsZeroTotal(t *testing.T) {
	stats := BuildReminderStats(nil)
	if stats.Total != 0 || stats.AdherenceRate != 0 {
		t.Fatalf("expected zero stats, got %+v", stats)
	}
}

type stubScheduleMedicationReader struct {
	medications []models.Medication
}

func (stub *stubScheduleMedicationReader) ListActiveReminderEnabledForUser(userID uint, date string) ([]models.Medication, error) {
	matched := make([]models.Medication, 0, len(stub.medications))
	for _, medication := range stub.medications {
		if medication.UserID == userID && medication.ReminderEnabled && medication.ActiveOn(date) {
			matched = append(matched, medication)
		}
	}
	return matched, nil
}

type stubScheduleDoseLogReader struct {
	entries []models.DoseLog
}

func (stub *stubScheduleDoseLogReader) ListByMedicationAndDate(medicationID uint, date string) ([]models.DoseLog, error) {
	matched := make([]models.DoseLog, 0, len(stub.entries))
	for _, entry := range stub.entries {
		if entry.MedicationID == medicationID && entry.Date == date {
			matched = append(matched, entry)
		}
	}
	return matched, nil
}

func TestTodaysScheduleExcludesReminderDisabled(t *testing.T) {
	enabled := models.Medication{
		ID: 1, UserID: 7, Name: "Metformin", ReminderEnabled: true,
		StartDate: "2024-01-01", EndDate: "2024-12-31",
		Times: map[string]string{"morning": "08:00"},
	}
	disabled := enabled
	disabled.ID = 2
	disabled.Name = "Lisinopril"
	disabled.ReminderEnabled = false

	clock := &fixedClock{today: "2024-03-02"}
	service := NewScheduleService(
		&stubScheduleMedicationReader{medications: []models.Medication{enabled, disabled}},
		&stubScheduleDoseLogReader{},
		clock,
	)

	schedules, err := service.TodaysSchedule(7)
	if err != nil {
		t.Fatalf("todays schedule failed: %v", err)
	}
	if len(schedules) != 1 || schedules[0].Medication.ID != enabled.ID {
		t.Fatalf("expected only the reminder-enabled medication, got %+v", schedules)
	}
}
