package services

import (
	"errors"

	"github.com/antonkovh/medminder/internal/models"
)

var (
	ErrMedicationNotFound = errors.New("medication not found")
	ErrDoseLogLoadFailed  = errors.New("load dose log failed")
	ErrDoseLogWriteFailed = errors.New("write dose log failed")
)

// DoseLogPatch is a partial ledger update. Nil fields are left untouched.
type DoseLogPatch struct {
	Taken        *bool
	ReminderSent *bool
}

type LedgerMedicationRepository interface {
	FindByID(medicationID uint) (models.Medication, bool, error)
}

type LedgerDoseLogRepository interface {
	FindBy(medicationID uint, date string, slot string) (models.DoseLog, bool, error)
	CreateIfAbsent(entry *models.DoseLog) error
	Save(entry *models.DoseLog) error
}

// LedgerService is the single write path for dose-ledger rows. Both the user
// "mark as taken" action and the scheduler "reminder sent" action go through
// UpsertEntry, which keeps the one-row-per-(date, slot) invariant.
type LedgerService struct {
	medications LedgerMedicationRepository
	doseLogs    LedgerDoseLogRepository
	clock       Clock
}

func NewLedgerService(medications LedgerMedicationRepository, doseLogs LedgerDoseLogRepository, clock Clock) *LedgerService {
	return &LedgerService{
		medications: medications,
		doseLogs:    doseLogs,
		clock:       clock,
	}
}

// UpsertEntry finds or lazily creates the ledger row for (date, slot) and
// applies the patch. Setting taken stamps TakenAt; a reminder-sent patch never
// touches taken or TakenAt. Re-applying an identical patch is a no-op.
func (service *LedgerService) UpsertEntry(medicationID uint, date string, slot string, patch DoseLogPatch) (models.DoseLog, error) {
	_, found, err := service.medications.FindByID(medicationID)
	if err != nil {
		return models.DoseLog{}, ErrDoseLogLoadFailed
	}
	if !found {
		return models.DoseLog{}, ErrMedicationNotFound
	}

	entry, err := service.findOrCreateEntry(medicationID, date, slot)
	if err != nil {
		return models.DoseLog{}, err
	}

	if patch.Taken != nil {
		entry.Taken = *patch.Taken
		if entry.Taken {
			now := service.clock.Now()
			entry.TakenAt = &now
		} else {
			entry.TakenAt = nil
		}
	}
	if patch.ReminderSent != nil {
		entry.ReminderSent = *patch.ReminderSent
	}

	if err := service.doseLogs.Save(&entry); err != nil {
		return models.DoseLog{}, ErrDoseLogWriteFailed
	}
	return entry, nil
}

// FindEntry reports the ledger row for (date, slot), if one exists yet.
func (service *LedgerService) FindEntry(medicationID uint, date string, slot string) (models.DoseLog, bool, error) {
	return service.doseLogs.FindBy(medicationID, date, slot)
}

func (service *LedgerService) findOrCreateEntry(medicationID uint, date string, slot string) (models.DoseLog, error) {
	entry, found, err := service.doseLogs.FindBy(medicationID, date, slot)
	if err != nil {
		return models.DoseLog{}, ErrDoseLogLoadFailed
	}
	if found {
		return entry, nil
	}

	fresh := models.DoseLog{
		MedicationID: medicationID,
		Date:         date,
		Slot:         slot,
	}
	if err := service.doseLogs.CreateIfAbsent(&fresh); err != nil {
		return models.DoseLog{}, ErrDoseLogWriteFailed
	}

	// Re-read after the insert: a racing writer may have won the unique
	// index, in which case the conflict left our struct without the row id.
	entry, found, err = service.doseLogs.FindBy(medicationID, date, slot)
	if err != nil {
		return models.DoseLog{}, ErrDoseLogLoadFailed
	}
	if !found {
		return models.DoseLog{}, ErrDoseLogWriteFailed
	}
	return entry, nil
}
