package models

import "time"

const (
	RolePatient   = "patient"
	RoleCaregiver = "caregiver"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Name         string    `gorm:"not null" json:"name"`
	Role         string    `gorm:"not null;default:patient" json:"role"`
	CreatedAt    time.Time `gorm:"not null" json:"createdAt"`
}

func IsValidRole(role string) bool {
	return role == RolePatient || role == RoleCaregiver
}
