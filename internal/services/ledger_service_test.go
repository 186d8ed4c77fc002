package services

import (
	"errors"
	"testing"
	"time"

	"github.com/antonkovh/medminder/internal/models"
)

func boolPtr(value bool) *bool {
	return &value
}

func newLedgerFixture() (*LedgerService, *memoryDoseLogRepository, *fixedClock) {
	medications := &stubMedicationSource{medications: []models.Medication{
		{ID: 1, UserID: 7, Name: "Metformin", StartDate: "2024-01-01", EndDate: "2024-12-31", ReminderEnabled: true},
	}}
	doseLogs := newMemoryDoseLogRepository()
	clock := &fixedClock{today: "2024-03-02", minute: 480, now: time.Date(2024, 3, 2, 8, 0, 0, 0, time.UTC)}
	return NewLedgerService(medications, doseLogs, clock), doseLogs, clock
}

func TestUpsertEntryCreatesWithDefaults(t *testing.T) {
	ledger, doseLogs, _ := newLedgerFixture()

	entry, err := ledger.UpsertEntry(1, "2024-03-02", "morning", DoseLogPatch{ReminderSent: boolPtr(true)})
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if !entry.ReminderSent || entry.Taken || entry.TakenAt != nil {
		t.Fatalf("expected fresh entry with only reminderSent set, got %+v", entry)
	}
	if doseLogs.count() != 1 {
		t.Fatalf("expected one ledger row, got %d", doseLogs.count())
	}
}

func TestUpsertEntryReminderSentTwiceIsIdempotent(t *testing.T) {
	ledger, doseLogs, _ := newLedgerFixture()

	patch := DoseLogPatch{ReminderSent: boolPtr(true)}
	if _, err := ledger.UpsertEntry(1, "2024-03-02", "morning", patch); err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	entry, err := ledger.UpsertEntry(1, "2024-03-02", "morning", patch)
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	if doseLogs.count() != 1 {
		t.Fatalf("expected exactly one ledger row, got %d", doseLogs.count())
	}
	if !entry.ReminderSent || entry.Taken || entry.TakenAt != nil {
		t.Fatalf("expected reminderSent only, got %+v", entry)
	}
}

func TestUpsertEntryTakenStampsTakenAt(t *testing.T) {
	ledger, _, clock := newLedgerFixture()

	entry, err := ledger.UpsertEntry(1, "2024-03-02", "morning", DoseLogPatch{Taken: boolPtr(true)})
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if !entry.Taken || entry.TakenAt == nil {
		t.Fatalf("expected taken entry with timestamp, got %+v", entry)
	}
	if !entry.TakenAt.Equal(clock.now) {
		t.Fatalf("expected takenAt %v, got %v", clock.now, *entry.TakenAt)
	}
}

func TestUpsertEntryReminderSentPreservesTaken(t *testing.T) {
	ledger, _, clock := newLedgerFixture()

	if _, err := ledger.UpsertEntry(1, "2024-03-02", "morning", DoseLogPatch{Taken: boolPtr(true)}); err != nil {
		t.Fatalf("taken upsert failed: %v", err)
	}
	entry, err := ledger.UpsertEntry(1, "2024-03-02", "morning", DoseLogPatch{ReminderSent: boolPtr(true)})
	if err != nil {
		t.Fatalf("reminder upsert failed: %v", err)
	}

	if !entry.Taken {
		t.Fatal("expected taken to survive a reminder-sent patch")
	}
	if entry.TakenAt == nil || !entry.TakenAt.Equal(clock.now) {
		t.Fatalf("expected takenAt preserved, got %v", entry.TakenAt)
	}
	if !entry.ReminderSent {
		t.Fatal("expected reminderSent set")
	}
}

func TestUpsertEntrySeparateSlotsGetSeparateRows(t *testing.T) {
	ledger, doseLogs, _ := newLedgerFixture()

	if _, err := ledger.UpsertEntry(1, "2024-03-02", "morning", DoseLogPatch{ReminderSent: boolPtr(true)}); err != nil {
		t.Fatalf("morning upsert failed: %v", err)
	}
	if _, err := ledger.UpsertEntry(1, "2024-03-02", "evening", DoseLogPatch{ReminderSent: boolPtr(true)}); err != nil {
		t.Fatalf("evening upsert failed: %v", err)
	}
	if _, err := ledger.UpsertEntry(1, "2024-03-03", "morning", DoseLogPatch{ReminderSent: boolPtr(true)}); err != nil {
		t.Fatalf("next-day upsert failed: %v", err)
	}

	if doseLogs.count() != 3 {
		t.Fatalf("expected three ledger rows, got %d", doseLogs.count())
	}
}

func TestUpsertEntryUnknownMedicationIsNotFound(t *testing.T) {
	ledger, _, _ := newLedgerFixture()

	_, err := ledger.UpsertEntry(99, "2024-03-02", "morning", DoseLogPatch{Taken: boolPtr(true)})
	if !errors.Is(err, ErrMedicationNotFound) {
		t.Fatalf("expected ErrMedicationNotFound, got %v", err)
	}
}

// racingDoseLogRepository simulates a concurrent writer that inserts the row
// between our miss and our create: CreateIfAbsent hits the unique index and
// the engine must pick up the racer's row on re-read instead of duplicating.
type racingDoseLogRepository struct {
	*memoryDoseLogRepository
	raced bool
}

func (repo *racingDoseLogRepository) FindBy(medicationID uint, date string, slot string) (models.DoseLog, bool, error) {
	entry, found, err := repo.memoryDoseLogRepository.FindBy(medicationID, date, slot)
	if err != nil || found {
		return entry, found, err
	}
	if !repo.raced {
		repo.raced = true
		racer := models.DoseLog{MedicationID: medicationID, Date: date, Slot: slot, ReminderSent: true}
		if err := repo.memoryDoseLogRepository.CreateIfAbsent(&racer); err != nil {
			return models.DoseLog{}, false, err
		}
		return models.DoseLog{}, false, nil
	}
	return models.DoseLog{}, false, nil
}

func TestUpsertEntrySurvivesCreateRace(t *testing.T) {
	medications := &stubMedicationSource{medications: []models.Medication{
		{ID: 1, UserID: 7, Name: "Metformin", StartDate: "2024-01-01", EndDate: "2024-12-31", ReminderEnabled: true},
	}}
	doseLogs := &racingDoseLogRepository{memoryDoseLogRepository: newMemoryDoseLogRepository()}
	clock := &fixedClock{today: "2024-03-02", now: time.Date(2024, 3, 2, 8, 0, 0, 0, time.UTC)}
	ledger := NewLedgerService(medications, doseLogs, clock)

	entry, err := ledger.UpsertEntry(1, "2024-03-02", "morning", DoseLogPatch{Taken: boolPtr(true)})
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	if doseLogs.count() != 1 {
		t.Fatalf("expected a single row despite the race, got %d", doseLogs.count())
	}
	if !entry.Taken || !entry.ReminderSent {
		t.Fatalf("expected merged state from both writers, got %+v", entry)
	}
}
