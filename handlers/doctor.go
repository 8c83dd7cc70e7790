package handlers

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"cliniq/models"
	"cliniq/services/doctor"
	"cliniq/services/storage"
	"cliniq/utils"
)

// maxPhotoSize caps doctor photo uploads at 2MB.
const maxPhotoSize = 2 << 20

var allowedPhotoExts = map[string]bool{".png": true, ".jpg": true, ".jpeg": true}

// DoctorHandler exposes the admin-side doctor roster endpoints.
type DoctorHandler struct {
	Service doctor.Service
	Storage storage.StorageService
}

// NewDoctorHandler constructs a DoctorHandler.
func NewDoctorHandler(svc doctor.Service, store storage.StorageService) *DoctorHandler {
	return &DoctorHandler{Service: svc, Storage: store}
}

// CreateDoctorHandler handles POST /api/admin/doctors.
func (h *DoctorHandler) CreateDoctorHandler(c *gin.Context) {
	logger := utils.GetLogger()
	hospitalID := c.GetString("hospitalID")
	staffID := c.GetString("staffID")

	var req models.DoctorCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Required fields are missing", "message": err.Error()})
		return
	}

	d, err := h.Service.Create(c.Request.Context(), hospitalID, staffID, req)
	if err != nil {
		logger.Error("Failed to create doctor", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error adding doctor"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Doctor added successfully!", "doctor": d})
}

// ListDoctorsHandler handles GET /api/admin/doctors?search=.
func (h *DoctorHandler) ListDoctorsHandler(c *gin.Context) {
	hospitalID := c.GetString("hospitalID")
	search := strings.TrimSpace(c.Query("search"))

	doctors, err := h.Service.List(c.Request.Context(), hospitalID, search)
	if err != nil {
		utils.GetLogger().Error("Failed to list doctors", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading doctors"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctors": doctors})
}

// GetDoctorHandler handles GET /api/admin/doctors/:id.
func (h *DoctorHandler) GetDoctorHandler(c *gin.Context) {
	hospitalID := c.GetString("hospitalID")
	id := c.Param("id")

	d, err := h.Service.GetByID(c.Request.Context(), id, hospitalID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
		return
	}
	c.JSON(http.StatusOK, d)
}

// SetCredentialsHandler handles PUT /api/admin/doctors/:id/credentials.
func (h *DoctorHandler) SetCredentialsHandler(c *gin.Context) {
	hospitalID := c.GetString("hospitalID")
	id := c.Param("id")

	var req models.DoctorCredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username must be at least 4 characters and password at least 8"})
		return
	}

	if err := h.Service.SetCredentials(c.Request.Context(), id, hospitalID, req); err != nil {
		if errors.Is(err, doctor.ErrUsernameTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "Username already in use"})
			return
		}
		utils.GetLogger().Error("Credential update failed", zap.String("doctorID", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update credentials"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Doctor credentials updated successfully!"})
}

// UploadPhotoHandler handles POST /api/admin/doctors/:id/photo with a
// multipart "image" field.
func (h *DoctorHandler) UploadPhotoHandler(c *gin.Context) {
	logger := utils.GetLogger()
	hospitalID := c.GetString("hospitalID")
	id := c.Param("id")

	if _, err := h.Service.GetByID(c.Request.Context(), id, hospitalID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing image file"})
		return
	}
	if fileHeader.Size > maxPhotoSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image exceeds the 2MB limit"})
		return
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedPhotoExts[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only png, jpg and jpeg images are allowed"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read image"})
		return
	}
	defer file.Close()

	publicID := id + "-" + uuid.New().String()
	url, err := h.Storage.UploadFile(c.Request.Context(), file, "doctors", publicID)
	if err != nil {
		logger.Error("Photo upload failed", zap.String("doctorID", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}

	if err := h.Service.SetPhotoURL(c.Request.Context(), id, hospitalID, url); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save photo"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Photo uploaded", "photoUrl": url})
}
