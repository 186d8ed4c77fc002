package models

import "time"

// CareLink grants a caregiver read access to a patient's schedule.
type CareLink struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CaregiverID uint      `gorm:"not null;uniqueIndex:uidx_caregiver_patient" json:"caregiverId"`
	PatientID   uint      `gorm:"not null;uniqueIndex:uidx_caregiver_patient" json:"patientId"`
	CreatedAt   time.Time `json:"createdAt"`
}
