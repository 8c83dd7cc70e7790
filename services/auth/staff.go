// File: services/auth/staff.go
package auth

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	staffRepo "cliniq/database/repository/staff"
	"cliniq/models"
	"cliniq/utils"
)

// ErrInvalidCredentials is returned for any login failure so callers cannot
// distinguish unknown accounts from wrong passwords.
var ErrInvalidCredentials = errors.New("invalid credentials or account not setup")

func (s *DefaultAuthService) RegisterStaff(ctx context.Context, req models.StaffRegistrationRequest) (*models.Staff, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	st := &models.Staff{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		HospitalName: req.HospitalName,
	}
	if err := s.Staff.Create(ctx, st); err != nil {
		if errors.Is(err, staffRepo.ErrDuplicateEmail) {
			return nil, err
		}
		utils.GetLogger().Error("RegisterStaff: create failed", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	return st, nil
}

func (s *DefaultAuthService) AuthenticateStaff(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	st, err := s.Staff.GetByEmail(ctx, email)
	if err != nil {
		utils.GetLogger().Error("AuthenticateStaff: lookup failed", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if st == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(st.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(st.ID, RoleAdmin, utils.SessionTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	tokenHash := utils.HashToken(token)
	if err := s.Staff.SetTokenHash(ctx, st.ID, tokenHash); err != nil {
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	cacheTokenHash(ctx, RoleAdmin, st.ID, tokenHash)

	return &models.AuthResponse{
		Token:        token,
		ID:           st.ID,
		Name:         st.Name,
		Role:         RoleAdmin,
		HospitalID:   st.ID,
		HospitalName: st.HospitalName,
	}, nil
}

// cacheTokenHash best-effort caches the active token hash so the auth
// middleware can skip the database on repeat requests.
func cacheTokenHash(ctx context.Context, role, id, tokenHash string) {
	client := utils.GetAuthCacheClient()
	key := utils.AuthCachePrefix + role + ":" + id
	if err := client.Set(ctx, key, tokenHash, utils.AuthCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache token hash", zap.Error(err))
	}
}

// RevokeToken clears the stored token hash, signing the account out everywhere.
func (s *DefaultAuthService) RevokeToken(ctx context.Context, role, id string) error {
	var err error
	switch role {
	case RoleAdmin:
		err = s.Staff.SetTokenHash(ctx, id, "")
	case RoleDoctor:
		err = s.Doctors.SetTokenHash(ctx, id, "")
	default:
		return fmt.Errorf("unknown role %q", role)
	}
	if err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	client := utils.GetAuthCacheClient()
	key := utils.AuthCachePrefix + role + ":" + id
	if err := client.Del(ctx, key).Err(); err != nil {
		utils.GetLogger().Warn("failed to clear cached token hash", zap.Error(err))
	}
	return nil
}
