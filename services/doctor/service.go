// File: services/doctor/service.go
package doctor

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	doctorRepo "cliniq/database/repository/doctor"
	"cliniq/models"
)

// ErrUsernameTaken is returned when a credentials username is already in use
// within the hospital.
var ErrUsernameTaken = errors.New("username already in use")

// Service manages a hospital's doctor roster.
type Service interface {
	Create(ctx context.Context, hospitalID, createdBy string, req models.DoctorCreateRequest) (*models.Doctor, error)
	GetByID(ctx context.Context, id, hospitalID string) (*models.Doctor, error)
	List(ctx context.Context, hospitalID, search string) ([]models.Doctor, error)
	SetCredentials(ctx context.Context, id, hospitalID string, req models.DoctorCredentialsRequest) error
	SetPhotoURL(ctx context.Context, id, hospitalID, photoURL string) error
}

// DefaultDoctorService is the repository-backed Service implementation.
type DefaultDoctorService struct {
	Repo doctorRepo.DoctorRepository
}

func (s *DefaultDoctorService) Create(ctx context.Context, hospitalID, createdBy string, req models.DoctorCreateRequest) (*models.Doctor, error) {
	d := &models.Doctor{
		Name:            req.Name,
		Specialization:  req.Specialization,
		Experience:      req.Experience,
		ConsultationFee: req.ConsultationFee,
		Contact:         req.Contact,
		Bio:             req.Bio,
		CreatedBy:       createdBy,
		HospitalID:      hospitalID,
	}
	if err := s.Repo.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("failed to create doctor: %w", err)
	}
	return d, nil
}

func (s *DefaultDoctorService) GetByID(ctx context.Context, id, hospitalID string) (*models.Doctor, error) {
	return s.Repo.GetByID(ctx, id, hospitalID)
}

func (s *DefaultDoctorService) List(ctx context.Context, hospitalID, search string) ([]models.Doctor, error) {
	return s.Repo.List(ctx, hospitalID, search)
}

// SetCredentials assigns or replaces a doctor's portal login. Length bounds
// are enforced by request binding; uniqueness is checked per hospital here.
func (s *DefaultDoctorService) SetCredentials(ctx context.Context, id, hospitalID string, req models.DoctorCredentialsRequest) error {
	taken, err := s.Repo.UsernameTaken(ctx, req.Username, id, hospitalID)
	if err != nil {
		return fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.Repo.SetCredentials(ctx, id, hospitalID, req.Username, string(hash)); err != nil {
		return fmt.Errorf("failed to update credentials: %w", err)
	}
	return nil
}

func (s *DefaultDoctorService) SetPhotoURL(ctx context.Context, id, hospitalID, photoURL string) error {
	if err := s.Repo.SetPhotoURL(ctx, id, hospitalID, photoURL); err != nil {
		return fmt.Errorf("failed to update photo: %w", err)
	}
	return nil
}
