// File: services/auth/doctor.go
package auth

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"cliniq/models"
	"cliniq/utils"
)

func (s *DefaultAuthService) AuthenticateDoctor(ctx context.Context, username, password string) (*models.AuthResponse, error) {
	doc, err := s.Doctors.GetByUsername(ctx, username)
	if err != nil {
		utils.GetLogger().Error("AuthenticateDoctor: lookup failed", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if doc == nil || doc.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(doc.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	hospital, err := s.Staff.GetByID(ctx, doc.HospitalID)
	if err != nil {
		utils.GetLogger().Error("AuthenticateDoctor: hospital lookup failed", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	token, err := utils.GenerateToken(doc.ID, RoleDoctor, utils.SessionTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	tokenHash := utils.HashToken(token)
	if err := s.Doctors.SetTokenHash(ctx, doc.ID, tokenHash); err != nil {
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	cacheTokenHash(ctx, RoleDoctor, doc.ID, tokenHash)

	return &models.AuthResponse{
		Token:        token,
		ID:           doc.ID,
		Name:         doc.Name,
		Role:         RoleDoctor,
		HospitalID:   doc.HospitalID,
		HospitalName: hospital.HospitalName,
	}, nil
}
