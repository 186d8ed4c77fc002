package models

import "time"

// DoseLog is one ledger row per (medication, date, slot). The unique index is
// what makes concurrent find-or-create safe: a second writer hits the index
// instead of inserting a duplicate.
type DoseLog struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	MedicationID uint       `gorm:"not null;uniqueIndex:uidx_med_date_slot" json:"medicationId"`
	Date         string     `gorm:"not null;uniqueIndex:uidx_med_date_slot" json:"date"`
	Slot         string     `gorm:"not null;uniqueIndex:uidx_med_date_slot" json:"slot"`
	Taken        bool       `gorm:"not null;default:false" json:"taken"`
	ReminderSent bool       `gorm:"not null;default:false" json:"reminderSent"`
	TakenAt      *time.Time `json:"takenAt"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}
