// File: services/patient/service.go
package patient

import (
	"context"
	"fmt"

	appointmentRepo "cliniq/database/repository/appointment"
	patientRepo "cliniq/database/repository/patient"
	"cliniq/models"
)

// Service manages a hospital's patient records.
type Service interface {
	Create(ctx context.Context, hospitalID, createdBy string, req models.PatientCreateRequest) (*models.Patient, error)
	GetByID(ctx context.Context, id, hospitalID string) (*models.Patient, error)
	List(ctx context.Context, hospitalID, search string) ([]models.Patient, error)
	// ListForDoctor annotates each patient with the date of their most
	// recent visit to the doctor.
	ListForDoctor(ctx context.Context, doctorID, hospitalID, search string) ([]models.Patient, error)
}

// DefaultPatientService is the repository-backed Service implementation.
type DefaultPatientService struct {
	Repo         patientRepo.PatientRepository
	Appointments appointmentRepo.AppointmentRepository
}

func (s *DefaultPatientService) Create(ctx context.Context, hospitalID, createdBy string, req models.PatientCreateRequest) (*models.Patient, error) {
	p := &models.Patient{
		Name:           req.Name,
		Age:            req.Age,
		Gender:         req.Gender,
		Contact:        req.Contact,
		Address:        req.Address,
		MedicalHistory: req.MedicalHistory,
		CreatedBy:      createdBy,
		HospitalID:     hospitalID,
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}
	return p, nil
}

func (s *DefaultPatientService) GetByID(ctx context.Context, id, hospitalID string) (*models.Patient, error) {
	return s.Repo.GetByID(ctx, id, hospitalID)
}

func (s *DefaultPatientService) List(ctx context.Context, hospitalID, search string) ([]models.Patient, error) {
	return s.Repo.List(ctx, hospitalID, search)
}

func (s *DefaultPatientService) ListForDoctor(ctx context.Context, doctorID, hospitalID, search string) ([]models.Patient, error) {
	patients, err := s.Repo.List(ctx, hospitalID, search)
	if err != nil {
		return nil, err
	}
	lastVisits, err := s.Appointments.LastVisitDates(ctx, doctorID, hospitalID)
	if err != nil {
		return nil, fmt.Errorf("failed to load visit history: %w", err)
	}
	for i := range patients {
		patients[i].LastVisit = lastVisits[patients[i].ID]
	}
	return patients, nil
}
