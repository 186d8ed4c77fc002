package db

import (
	"github.com/antonkovh/medminder/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DoseLogRepository struct {
	database *gorm.DB
}

func NewDoseLogRepository(database *gorm.DB) *DoseLogRepository {
	return &DoseLogRepository{database: database}
}

func (repo *DoseLogRepository) FindBy(medicationID uint, date string, slot string) (models.DoseLog, bool, error) {
	entry := models.DoseLog{}
	result := repo.database.
		Where("medication_id = ? AND date = ? AND slot = ?", medicationID, date, slot).
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.DoseLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DoseLog{}, false, nil
	}
	return entry, true, nil
}

// CreateIfAbsent inserts the row unless the (medication, date, slot) unique
// index already holds one. Racing writers both land on the same row; callers
// re-read after a conflict.
func (repo *DoseLogRepository) CreateIfAbsent(entry *models.DoseLog) error {
	return repo.database.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "medication_id"}, {Name: "date"}, {Name: "slot"}},
			DoNothing: true,
		}).
		Create(entry).Error
}

func (repo *DoseLogRepository) Save(entry *models.DoseLog) error {
	return repo.database.Save(entry).Error
}

func (repo *DoseLogRepository) ListByMedicationAndDate(medicationID uint, date string) ([]models.DoseLog, error) {
	entries := make([]models.DoseLog, 0)
	if err := repo.database.
		Where("medication_id = ? AND date = ?", medicationID, date).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *DoseLogRepository) ListTakenByMedicationRange(medicationID uint, from string, to string) ([]models.DoseLog, error) {
	entries := make([]models.DoseLog, 0)
	if err := repo.database.
		Where("medication_id = ? AND taken = ? AND date >= ? AND date <= ?", medicationID, true, from, to).
		Order("date ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
