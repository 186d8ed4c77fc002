package services

import (
	"errors"

	"github.com/antonkovh/medminder/internal/models"
)

var (
	ErrInvalidHealthLogInput = errors.New("invalid health log input")
	ErrHealthLogStoreFailed  = errors.New("health log store failed")
)

type HealthLogInput struct {
	WeightKg   float64 `json:"weightKg"`
	Systolic   int     `json:"systolic"`
	Diastolic  int     `json:"diastolic"`
	HeartRate  int     `json:"heartRate"`
	SleepHours float64 `json:"sleepHours"`
	WaterML    int     `json:"waterMl"`
	Mood       string  `json:"mood"`
	Notes      string  `json:"notes"`
}

type HealthLogRepository interface {
	FindByUserAndDate(userID uint, date string) (models.HealthLog, bool, error)
	ListByUserRange(userID uint, from string, to string) ([]models.HealthLog, error)
	Create(entry *models.HealthLog) error
	Save(entry *models.HealthLog) error
}

type HealthLogService struct {
	logs HealthLogRepository
}

func NewHealthLogService(logs HealthLogRepository) *HealthLogService {
	return &HealthLogService{logs: logs}
}

func validateHealthLogInput(input HealthLogInput) error {
	if input.WeightKg < 0 || input.SleepHours < 0 || input.WaterML < 0 {
		return ErrInvalidHealthLogInput
	}
	if input.Systolic < 0 || input.Diastolic < 0 || input.HeartRate < 0 {
		return ErrInvalidHealthLogInput
	}
	return nil
}

// UpsertEntry keeps one health log per (user, day), updating in place on
// repeat submissions.
func (service *HealthLogService) UpsertEntry(userID uint, date string, input HealthLogInput) (models.HealthLog, error) {
	if !IsValidDate(date) {
		return models.HealthLog{}, ErrInvalidHealthLogInput
	}
	if err := validateHealthLogInput(input); err != nil {
		return models.HealthLog{}, err
	}

	entry, found, err := service.logs.FindByUserAndDate(userID, date)
	if err != nil {
		return models.HealthLog{}, ErrHealthLogStoreFailed
	}

	if !found {
		entry = models.HealthLog{UserID: userID, Date: date}
	}
	entry.WeightKg = input.WeightKg
	entry.Systolic = input.Systolic
	entry.Diastolic = input.Diastolic
	entry.HeartRate = input.HeartRate
	entry.SleepHours = input.SleepHours
	entry.WaterML = input.WaterML
	entry.Mood = input.Mood
	entry.Notes = input.Notes

	if found {
		err = service.logs.Save(&entry)
	} else {
		err = service.logs.Create(&entry)
	}
	if err != nil {
		return models.HealthLog{}, ErrHealthLogStoreFailed
	}
	return entry, nil
}

func (service *HealthLogService) ListRange(userID uint, from string, to string) ([]models.HealthLog, error) {
	if !IsValidDate(from) || !IsValidDate(to) || from > to {
		return nil, ErrInvalidHealthLogInput
	}
	entries, err := service.logs.ListByUserRange(userID, from, to)
	if err != nil {
		return nil, ErrHealthLogStoreFailed
	}
	return entries, nil
}
