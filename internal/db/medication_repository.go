package db

import (
	"github.com/antonkovh/medminder/internal/models"
	"gorm.io/gorm"
)

type MedicationRepository struct {
	database *gorm.DB
}

func NewMedicationRepository(database *gorm.DB) *MedicationRepository {
	return &MedicationRepository{database: database}
}

func (repo *MedicationRepository) ListByUser(userID uint) ([]models.Medication, error) {
	medications := make([]models.Medication, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("name ASC, id ASC").Find(&medications).Error; err != nil {
		return nil, err
	}
	return medications, nil
}

func (repo *MedicationRepository) FindByID(medicationID uint) (models.Medication, bool, error) {
	medication := models.Medication{}
	result := repo.database.Limit(1).Find(&medication, medicationID)
	if result.Error != nil {
		return models.Medication{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Medication{}, false, nil
	}
	return medication, true, nil
}

func (repo *MedicationRepository) FindByIDWithDoseLogs(medicationID uint) (models.Medication, bool, error) {
	medication := models.Medication{}
	result := repo.database.Preload("DoseLogs").Limit(1).Find(&medication, medicationID)
	if result.Error != nil {
		return models.Medication{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Medication{}, false, nil
	}
	return medication, true, nil
}

// ListActiveReminderEnabled feeds the scan loop: reminder-enabled medications
// whose inclusive start/end window covers the day. Dates are "YYYY-MM-DD"
// strings, so plain comparison is chronological.
func (repo *MedicationRepository) ListActiveReminderEnabled(date string) ([]models.Medication, error) {
	medications := make([]models.Medication, 0)
	if err := repo.database.
		Where("reminder_enabled = ? AND start_date <= ? AND end_date >= ?", true, date, date).
		Order("id ASC").
		Find(&medications).Error; err != nil {
		return nil, err
	}
	return medications, nil
}

func (repo *MedicationRepository) ListActiveReminderEnabledForUser(userID uint, date string) ([]models.Medication, error) {
	medications := make([]models.Medication, 0)
	if err := repo.database.
		Where("user_id = ? AND reminder_enabled = ? AND start_date <= ? AND end_date >= ?", userID, true, date, date).
		Order("name ASC, id ASC").
		Find(&medications).Error; err != nil {
		return nil, err
	}
	return medications, nil
}

func (repo *MedicationRepository) ListOverlapping(userID uint, from string, to string) ([]models.Medication, error) {
	medications := make([]models.Medication, 0)
	if err := repo.database.
		Where("user_id = ? AND start_date <= ? AND end_date >= ?", userID, to, from).
		Order("name ASC, id ASC").
		Find(&medications).Error; err != nil {
		return nil, err
	}
	return medications, nil
}

func (repo *MedicationRepository) Create(medication *models.Medication) error {
	return repo.database.Create(medication).Error
}

func (repo *MedicationRepository) Save(medication *models.Medication) error {
	return repo.database.Save(medication).Error
}

func (repo *MedicationRepository) DeleteByIDForUser(medicationID uint, userID uint) (bool, error) {
	result := repo.database.Where("id = ? AND user_id = ?", medicationID, userID).Delete(&models.Medication{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
