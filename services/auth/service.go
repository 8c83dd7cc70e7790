// File: services/auth/service.go
package auth

import (
	"context"

	doctorRepo "cliniq/database/repository/doctor"
	staffRepo "cliniq/database/repository/staff"
	"cliniq/models"
)

// Roles carried in token claims and session context.
const (
	RoleAdmin  = "admin"
	RoleDoctor = "doctor"
)

// Service authenticates staff (admin) and doctor accounts.
type Service interface {
	RegisterStaff(ctx context.Context, req models.StaffRegistrationRequest) (*models.Staff, error)
	AuthenticateStaff(ctx context.Context, email, password string) (*models.AuthResponse, error)
	AuthenticateDoctor(ctx context.Context, username, password string) (*models.AuthResponse, error)
	RevokeToken(ctx context.Context, role, id string) error
}

// DefaultAuthService is the repository-backed Service implementation.
type DefaultAuthService struct {
	Staff   staffRepo.StaffRepository
	Doctors doctorRepo.DoctorRepository
}
