// File: services/directory/service.go
package directory

import (
	"context"
	"fmt"

	patientRepo "cliniq/database/repository/patient"
	"cliniq/models"
)

// Service resolves exact patient names for the admin lookup box.
type Service interface {
	Lookup(ctx context.Context, hospitalID, name string) (*models.Patient, error)
}

// ErrNotFound is returned when no patient matches the queried name.
var ErrNotFound = fmt.Errorf("patient not found")

// DefaultDirectoryService backs the lookup with the sorted patient listing.
type DefaultDirectoryService struct {
	Patients patientRepo.PatientRepository
}

func (s *DefaultDirectoryService) Lookup(ctx context.Context, hospitalID, name string) (*models.Patient, error) {
	patients, err := s.Patients.ListByName(ctx, hospitalID)
	if err != nil {
		return nil, fmt.Errorf("failed to load patients: %w", err)
	}

	idx, ok := Search(patients, name)
	if !ok {
		return nil, ErrNotFound
	}
	return &patients[idx], nil
}
