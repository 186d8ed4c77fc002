package services

import (
	"errors"
	"strings"

	"github.com/antonkovh/medminder/internal/models"
)

var ErrInvalidDateRange = errors.New("invalid date range")

type MedicationAdherence struct {
	MedicationID  uint    `json:"medicationId"`
	Name          string  `json:"name"`
	ExpectedDoses int     `json:"expectedDoses"`
	TakenDoses    int     `json:"takenDoses"`
	AdherenceRate float64 `json:"adherenceRate"`
}

type AdherenceReport struct {
	StartDate     string                `json:"startDate"`
	EndDate       string                `json:"endDate"`
	Medications   []MedicationAdherence `json:"medications"`
	ExpectedDoses int                   `json:"expectedDoses"`
	TakenDoses    int                   `json:"takenDoses"`
	AdherenceRate float64               `json:"adherenceRate"`
}

type AdherenceMedicationReader interface {
	ListOverlapping(userID uint, from string, to string) ([]models.Medication, error)
}

type AdherenceDoseLogReader interface {
	ListTakenByMedicationRange(medicationID uint, from string, to string) ([]models.DoseLog, error)
}

type AdherenceService struct {
	medications AdherenceMedicationReader
	doseLogs    AdherenceDoseLogReader
}

func NewAdherenceService(medications AdherenceMedicationReader, doseLogs AdherenceDoseLogReader) *AdherenceService {
	return &AdherenceService{
		medications: medications,
		doseLogs:    doseLogs,
	}
}

// Adherence reduces the ledger over [startDate, endDate]: every day a
// medication is active contributes one expected dose per configured slot, and
// a taken dose for each ledger row with taken set. An empty range is a zero
// report, not a fault.
func (service *AdherenceService) Adherence(userID uint, startDate string, endDate string) (AdherenceReport, error) {
	if !IsValidDate(startDate) || !IsValidDate(endDate) || startDate > endDate {
		return AdherenceReport{}, ErrInvalidDateRange
	}

	medications, err := service.medications.ListOverlapping(userID, startDate, endDate)
	if err != nil {
		return AdherenceReport{}, err
	}

	report := AdherenceReport{
		StartDate:   startDate,
		EndDate:     endDate,
		Medications: make([]MedicationAdherence, 0, len(medications)),
	}

	for _, medication := range medications {
		breakdown, err := service.medicationAdherence(medication, startDate, endDate)
		if err != nil {
			return AdherenceReport{}, err
		}
		report.Medications = append(report.Medications, breakdown)
		report.ExpectedDoses += breakdown.ExpectedDoses
		report.TakenDoses += breakdown.TakenDoses
	}

	report.AdherenceRate = roundedRate(report.TakenDoses, report.ExpectedDoses)
	return report, nil
}

func (service *AdherenceService) medicationAdherence(medication models.Medication, startDate string, endDate string) (MedicationAdherence, error) {
	breakdown := MedicationAdherence{
		MedicationID: medication.ID,
		Name:         medication.Name,
	}

	slots := activeSlots(medication)
	activeFrom := maxDate(startDate, medication.StartDate)
	activeTo := minDate(endDate, medication.EndDate)
	activeDays := CountDays(activeFrom, activeTo)
	if activeDays == 0 || len(slots) == 0 {
		return breakdown, nil
	}

	breakdown.ExpectedDoses = activeDays * len(slots)

	entries, err := service.doseLogs.ListTakenByMedicationRange(medication.ID, activeFrom, activeTo)
	if err != nil {
		return MedicationAdherence{}, err
	}
	for _, entry := range entries {
		if _, configured := slots[entry.Slot]; configured {
			breakdown.TakenDoses++
		}
	}

	breakdown.AdherenceRate = roundedRate(breakdown.TakenDoses, breakdown.ExpectedDoses)
	return breakdown, nil
}

func activeSlots(medication models.Medication) map[string]struct{} {
	slots := make(map[string]struct{}, len(medication.Times))
	for slot, scheduled := range medication.Times {
		if strings.TrimSpace(scheduled) == "" {
			continue
		}
		slots[slot] = struct{}{}
	}
	return slots
}
