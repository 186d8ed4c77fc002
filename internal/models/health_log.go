package models

import "time"

type HealthLog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;uniqueIndex:uidx_user_log_date" json:"userId"`
	Date       string    `gorm:"not null;uniqueIndex:uidx_user_log_date" json:"date"`
	WeightKg   float64   `json:"weightKg"`
	Systolic   int       `json:"systolic"`
	Diastolic  int       `json:"diastolic"`
	HeartRate  int       `json:"heartRate"`
	SleepHours float64   `json:"sleepHours"`
	WaterML    int       `json:"waterMl"`
	Mood       string    `json:"mood"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
