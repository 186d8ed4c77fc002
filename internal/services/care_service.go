package services

import (
	"errors"

	"github.com/antonkovh/medminder/internal/models"
)

var (
	ErrPatientNotFound = errors.New("patient not found")
	ErrCareLinkExists  = errors.New("care link already exists")
	ErrSelfCareLink    = errors.New("cannot link to yourself")
	ErrCareStoreFailed = errors.New("care store failed")
)

type CareUserRepository interface {
	FindByNormalizedEmail(email string) (models.User, bool, error)
}

type CareLinkRepository interface {
	Create(link *models.CareLink) error
	Exists(caregiverID uint, patientID uint) (bool, error)
	ListPatients(caregiverID uint) ([]models.User, error)
}

type CareService struct {
	users CareUserRepository
	links CareLinkRepository
}

func NewCareService(users CareUserRepository, links CareLinkRepository) *CareService {
	return &CareService{
		users: users,
		links: links,
	}
}

// LinkPatient connects a caregiver to the patient behind the given email.
func (service *CareService) LinkPatient(caregiverID uint, patientEmail string) (models.User, error) {
	patient, found, err := service.users.FindByNormalizedEmail(NormalizeEmail(patientEmail))
	if err != nil {
		return models.User{}, ErrCareStoreFailed
	}
	if !found || patient.Role != models.RolePatient {
		return models.User{}, ErrPatientNotFound
	}
	if patient.ID == caregiverID {
		return models.User{}, ErrSelfCareLink
	}

	exists, err := service.links.Exists(caregiverID, patient.ID)
	if err != nil {
		return models.User{}, ErrCareStoreFailed
	}
	if exists {
		return models.User{}, ErrCareLinkExists
	}

	link := models.CareLink{CaregiverID: caregiverID, PatientID: patient.ID}
	if err := service.links.Create(&link); err != nil {
		return models.User{}, ErrCareStoreFailed
	}
	return patient, nil
}

func (service *CareService) ListPatients(caregiverID uint) ([]models.User, error) {
	patients, err := service.links.ListPatients(caregiverID)
	if err != nil {
		return nil, ErrCareStoreFailed
	}
	return patients, nil
}

// CanView reports whether the caregiver is linked to the patient.
func (service *CareService) CanView(caregiverID uint, patientID uint) (bool, error) {
	linked, err := service.links.Exists(caregiverID, patientID)
	if err != nil {
		return false, ErrCareStoreFailed
	}
	return linked, nil
}
