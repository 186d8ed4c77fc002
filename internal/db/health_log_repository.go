package db

import (
	"github.com/antonkovh/medminder/internal/models"
	"gorm.io/gorm"
)

type HealthLogRepository struct {
	database *gorm.DB
}

func NewHealthLogRepository(database *gorm.DB) *HealthLogRepository {
	return &HealthLogRepository{database: database}
}

func (repo *HealthLogRepository) FindByUserAndDate(userID uint, date string) (models.HealthLog, bool, error) {
	entry := models.HealthLog{}
	result := repo.database.
		Where("user_id = ? AND date = ?", userID, date).
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.HealthLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.HealthLog{}, false, nil
	}
	return entry, true, nil
}

func (repo *HealthLogRepository) ListByUserRange(userID uint, from string, to string) ([]models.HealthLog, error) {
	entries := make([]models.HealthLog, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *HealthLogRepository) Create(entry *models.HealthLog) error {
	return repo.database.Create(entry).Error
}

func (repo *HealthLogRepository) Save(entry *models.HealthLog) error {
	return repo.database.Save(entry).Error
}
