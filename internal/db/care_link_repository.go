package db

import (
	"github.com/antonkovh/medminder/internal/models"
	"gorm.io/gorm"
)

type CareLinkRepository struct {
	database *gorm.DB
}

func NewCareLinkRepository(database *gorm.DB) *CareLinkRepository {
	return &CareLinkRepository{database: database}
}

func (repo *CareLinkRepository) Create(link *models.CareLink) error {
	return repo.database.Create(link).Error
}

func (repo *CareLinkRepository) Exists(caregiverID uint, patientID uint) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.CareLink{}).
		Where("caregiver_id = ? AND patient_id = ?", caregiverID, patientID).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *CareLinkRepository) ListPatients(caregiverID uint) ([]models.User, error) {
	patients := make([]models.User, 0)
	if err := repo.database.Model(&models.User{}).
		Joins("JOIN care_links ON care_links.patient_id = users.id").
		Where("care_links.caregiver_id = ?", caregiverID).
		Order("users.name ASC").
		Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}
