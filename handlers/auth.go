package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	staffRepo "cliniq/database/repository/staff"
	"cliniq/models"
	"cliniq/services/auth"
	"cliniq/utils"
)

// AuthHandler exposes staff and doctor authentication endpoints.
type AuthHandler struct {
	Service auth.Service
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(svc auth.Service) *AuthHandler {
	return &AuthHandler{Service: svc}
}

// RegisterStaffHandler handles POST /api/auth/register.
func (h *AuthHandler) RegisterStaffHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.StaffRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required", "message": err.Error()})
		return
	}

	st, err := h.Service.RegisterStaff(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, staffRepo.ErrDuplicateEmail) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already exists!"})
			return
		}
		logger.Error("Staff registration failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Registration successful! Please login.", "staff": st})
}

// StaffLoginHandler handles POST /api/auth/login. The username field carries
// the staff email.
func (h *AuthHandler) StaffLoginHandler(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	resp, err := h.Service.AuthenticateStaff(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DoctorLoginHandler handles POST /api/auth/doctor/login.
func (h *AuthHandler) DoctorLoginHandler(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	resp, err := h.Service.AuthenticateDoctor(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LogoutHandler handles POST logout for both roles, revoking the active token.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	if id, ok := c.Get("staffID"); ok {
		if err := h.Service.RevokeToken(c.Request.Context(), auth.RoleAdmin, id.(string)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
		return
	}
	if id, ok := c.Get("doctorID"); ok {
		if err := h.Service.RevokeToken(c.Request.Context(), auth.RoleDoctor, id.(string)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
		return
	}
	c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
}
