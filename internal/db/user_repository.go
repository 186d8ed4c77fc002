package db

import (
	"github.com/antonkovh/medminder/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) FindByID(userID uint) (models.User, bool, error) {
	user := models.User{}
	result := repo.database.Limit(1).Find(&user, userID)
	if result.Error != nil {
		return models.User{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.User{}, false, nil
	}
	return user, true, nil
}

func (repo *UserRepository) FindByNormalizedEmail(email string) (models.User, bool, error) {
	user := models.User{}
	result := repo.database.Where("lower(trim(email)) = ?", email).Limit(1).Find(&user)
	if result.Error != nil {
		return models.User{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.User{}, false, nil
	}
	return user, true, nil
}

func (repo *UserRepository) ExistsByNormalizedEmail(email string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where("lower(trim(email)) = ?", email).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}
