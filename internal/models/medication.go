package models

import "time"

const (
	KindTablet    = "tablet"
	KindCapsule   = "capsule"
	KindLiquid    = "liquid"
	KindInjection = "injection"
)

const (
	FrequencyDaily   = "daily"
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
)

// Medication dates are stored as "YYYY-MM-DD" strings; lexical comparison on
// that form is chronological, which keeps the active-window checks plain
// string comparisons both here and in SQL.
type Medication struct {
	ID              uint              `gorm:"primaryKey" json:"id"`
	UserID          uint              `gorm:"not null;index" json:"userId"`
	Name            string            `gorm:"not null" json:"name"`
	Dosage          string            `gorm:"not null" json:"dosage"`
	Instruction     string            `json:"instruction"`
	Kind            string            `gorm:"not null;default:tablet" json:"kind"`
	Times           map[string]string `gorm:"serializer:json" json:"times"`
	Frequency       string            `gorm:"not null;default:daily" json:"frequency"`
	StartDate       string            `gorm:"not null" json:"startDate"`
	EndDate         string            `gorm:"not null" json:"endDate"`
	ReminderEnabled bool              `gorm:"not null;default:true" json:"reminderEnabled"`
	DoseLogs        []DoseLog         `gorm:"constraint:OnDelete:CASCADE" json:"doseLogs,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

// ActiveOn reports whether the inclusive start/end window covers the day.
func (medication Medication) ActiveOn(date string) bool {
	return medication.StartDate <= date && date <= medication.EndDate
}

func IsValidKind(kind string) bool {
	switch kind {
	case KindTablet, KindCapsule, KindLiquid, KindInjection:
		return true
	default:
		return false
	}
}

func IsValidFrequency(frequency string) bool {
	switch frequency {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	default:
		return false
	}
}
