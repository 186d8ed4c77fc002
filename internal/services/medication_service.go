package services

import (
	"errors"
	"strings"

	"github.com/antonkovh/medminder/internal/models"
)

var (
	ErrInvalidMedicationInput = errors.New("invalid medication input")
	ErrMedicationStoreFailed  = errors.New("medication store failed")
)

type MedicationInput struct {
	Name            string            `json:"name"`
	Dosage          string            `json:"dosage"`
	Instruction     string            `json:"instruction"`
	Kind            string            `json:"kind"`
	Times           map[string]string `json:"times"`
	Frequency       string            `json:"frequency"`
	StartDate       string            `json:"startDate"`
	EndDate         string            `json:"endDate"`
	ReminderEnabled bool              `json:"reminderEnabled"`
}

type MedicationRepository interface {
	ListByUser(userID uint) ([]models.Medication, error)
	FindByID(medicationID uint) (models.Medication, bool, error)
	FindByIDWithDoseLogs(medicationID uint) (models.Medication, bool, error)
	Create(medication *models.Medication) error
	Save(medication *models.Medication) error
	DeleteByIDForUser(medicationID uint, userID uint) (bool, error)
}

type MedicationService struct {
	medications MedicationRepository
	ledger      *LedgerService
}

func NewMedicationService(medications MedicationRepository, ledger *LedgerService) *MedicationService {
	return &MedicationService{
		medications: medications,
		ledger:      ledger,
	}
}

func ValidateMedicationInput(input MedicationInput) error {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Dosage) == "" {
		return ErrInvalidMedicationInput
	}
	if !models.IsValidKind(input.Kind) || !models.IsValidFrequency(input.Frequency) {
		return ErrInvalidMedicationInput
	}
	if !IsValidDate(input.StartDate) || !IsValidDate(input.EndDate) || input.StartDate > input.EndDate {
		return ErrInvalidMedicationInput
	}
	for slot, scheduled := range input.Times {
		if strings.TrimSpace(slot) == "" {
			return ErrInvalidMedicationInput
		}
		// Empty times are allowed: the slot simply never fires.
		if strings.TrimSpace(scheduled) != "" && !IsValidClockTime(scheduled) {
			return ErrInvalidMedicationInput
		}
	}
	return nil
}

func (service *MedicationService) List(userID uint) ([]models.Medication, error) {
	return service.medications.ListByUser(userID)
}

func (service *MedicationService) Get(medicationID uint, userID uint) (models.Medication, error) {
	medication, found, err := service.medications.FindByIDWithDoseLogs(medicationID)
	if err != nil {
		return models.Medication{}, ErrMedicationStoreFailed
	}
	if !found || medication.UserID != userID {
		return models.Medication{}, ErrMedicationNotFound
	}
	return medication, nil
}

func (service *MedicationService) Create(userID uint, input MedicationInput) (models.Medication, error) {
	if err := ValidateMedicationInput(input); err != nil {
		return models.Medication{}, err
	}

	medication := models.Medication{
		UserID:          userID,
		Name:            strings.TrimSpace(input.Name),
		Dosage:          strings.TrimSpace(input.Dosage),
		Instruction:     strings.TrimSpace(input.Instruction),
		Kind:            input.Kind,
		Times:           input.Times,
		Frequency:       input.Frequency,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		ReminderEnabled: input.ReminderEnabled,
	}
	if medication.Times == nil {
		medication.Times = map[string]string{}
	}
	if err := service.medications.Create(&medication); err != nil {
		return models.Medication{}, ErrMedicationStoreFailed
	}
	return medication, nil
}

func (service *MedicationService) Update(medicationID uint, userID uint, input MedicationInput) (models.Medication, error) {
	if err := ValidateMedicationInput(input); err != nil {
		return models.Medication{}, err
	}

	medication, found, err := service.medications.FindByID(medicationID)
	if err != nil {
		return models.Medication{}, ErrMedicationStoreFailed
	}
	if !found || medication.UserID != userID {
		return models.Medication{}, ErrMedicationNotFound
	}

	medication.Name = strings.TrimSpace(input.Name)
	medication.Dosage = strings.TrimSpace(input.Dosage)
	medication.Instruction = strings.TrimSpace(input.Instruction)
	medication.Kind = input.Kind
	medication.Times = input.Times
	medication.Frequency = input.Frequency
	medication.StartDate = input.StartDate
	medication.EndDate = input.EndDate
	medication.ReminderEnabled = input.ReminderEnabled
	if medication.Times == nil {
		medication.Times = map[string]string{}
	}

	if err := service.medications.Save(&medication); err != nil {
		return models.Medication{}, ErrMedicationStoreFailed
	}
	return medication, nil
}

// Delete removes the medication and, through the cascade, its whole ledger.
func (service *MedicationService) Delete(medicationID uint, userID uint) error {
	deleted, err := service.medications.DeleteByIDForUser(medicationID, userID)
	if err != nil {
		return ErrMedicationStoreFailed
	}
	if !deleted {
		return ErrMedicationNotFound
	}
	return nil
}

// MarkTaken records a taken dose for (date, slot) through the ledger engine
// and returns the medication with its refreshed ledger.
func (service *MedicationService) MarkTaken(medicationID uint, userID uint, date string, slot string) (models.Medication, error) {
	if !IsValidDate(date) || strings.TrimSpace(slot) == "" {
		return models.Medication{}, ErrInvalidMedicationInput
	}

	medication, found, err := service.medications.FindByID(medicationID)
	if err != nil {
		return models.Medication{}, ErrMedicationStoreFailed
	}
	if !found || medication.UserID != userID {
		return models.Medication{}, ErrMedicationNotFound
	}

	taken := true
	if _, err := service.ledger.UpsertEntry(medicationID, date, slot, DoseLogPatch{Taken: &taken}); err != nil {
		return models.Medication{}, err
	}

	refreshed, _, err := service.medications.FindByIDWithDoseLogs(medicationID)
	if err != nil {
		return models.Medication{}, ErrMedicationStoreFailed
	}
	return refreshed, nil
}

func (service *MedicationService) UpdateReminderSettings(medicationID uint, userID uint, enabled bool) (models.Medication, error) {
	medication, found, err := service.medications.FindByID(medicationID)
	if err != nil {
		return models.Medication{}, ErrMedicationStoreFailed
	}
	if !found || medication.UserID != userID {
		return models.Medication{}, ErrMedicationNotFound
	}

	medication.ReminderEnabled = enabled
	if err := service.medications.Save(&medication); err != nil {
		return models.Medication{}, ErrMedicationStoreFailed
	}
	return medication, nil
}
