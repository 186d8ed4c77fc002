package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/antonkovh/medminder/internal/models"
)

type fixedClock struct {
	today  string
	minute int
	now    time.Time
}

func (clock *fixedClock) Now() time.Time      { return clock.now }
func (clock *fixedClock) Today() string       { return clock.today }
func (clock *fixedClock) NowMinuteOfDay() int { return clock.minute }

// stubMedicationSource filters with the same predicate the SQL query uses so
// scan tests can cover the active-window and reminder-enabled gates.
type stubMedicationSource struct {
	medications []models.Medication
	listErr     error
}

func (stub *stubMedicationSource) ListActiveReminderEnabled(date string) ([]models.Medication, error) {
	if stub.listErr != nil {
		return nil, stub.listErr
	}
	matched := make([]models.Medication, 0, len(stub.medications))
	for _, medication := range stub.medications {
		if medication.ReminderEnabled && medication.ActiveOn(date) {
			matched = append(matched, medication)
		}
	}
	return matched, nil
}

func (stub *stubMedicationSource) FindByID(medicationID uint) (models.Medication, bool, error) {
	for _, medication := range stub.medications {
		if medication.ID == medicationID {
			return medication, true, nil
		}
	}
	return models.Medication{}, false, nil
}

type memoryDoseLogRepository struct {
	mu      sync.Mutex
	entries map[string]models.DoseLog
	nextID  uint
	failFor map[uint]bool
}

func newMemoryDoseLogRepository() *memoryDoseLogRepository {
	return &memoryDoseLogRepository{
		entries: make(map[string]models.DoseLog),
		failFor: make(map[uint]bool),
	}
}

func doseLogKey(medicationID uint, date string, slot string) string {
	return fmt.Sprintf("%d:%s:%s", medicationID, date, slot)
}

func (repo *memoryDoseLogRepository) FindBy(medicationID uint, date string, slot string) (models.DoseLog, bool, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.failFor[medicationID] {
		return models.DoseLog{}, false, errors.New("store unavailable")
	}
	entry, ok := repo.entries[doseLogKey(medicationID, date, slot)]
	return entry, ok, nil
}

func (repo *memoryDoseLogRepository) CreateIfAbsent(entry *models.DoseLog) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.failFor[entry.MedicationID] {
		return errors.New("store unavailable")
	}
	key := doseLogKey(entry.MedicationID, entry.Date, entry.Slot)
	if _, exists := repo.entries[key]; exists {
		return nil
	}
	repo.nextID++
	entry.ID = repo.nextID
	repo.entries[key] = *entry
	return nil
}

func (repo *memoryDoseLogRepository) Save(entry *models.DoseLog) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.failFor[entry.MedicationID] {
		return errors.New("store unavailable")
	}
	repo.entries[doseLogKey(entry.MedicationID, entry.Date, entry.Slot)] = *entry
	return nil
}

func (repo *memoryDoseLogRepository) count() int {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	return len(repo.entries)
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []ReminderPayload
	err  error
}

func (notifier *recordingNotifier) Send(_ context.Context, payload ReminderPayload) error {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	notifier.sent = append(notifier.sent, payload)
	return notifier.err
}

func (notifier *recordingNotifier) sentCount() int {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	return len(notifier.sent)
}
