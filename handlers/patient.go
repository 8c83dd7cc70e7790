package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cliniq/models"
	"cliniq/services/directory"
	"cliniq/services/patient"
	"cliniq/utils"
)

// PatientHandler exposes patient record endpoints.
type PatientHandler struct {
	Service   patient.Service
	Directory directory.Service
}

// NewPatientHandler constructs a PatientHandler.
func NewPatientHandler(svc patient.Service, dir directory.Service) *PatientHandler {
	return &PatientHandler{Service: svc, Directory: dir}
}

// CreatePatientHandler handles POST /api/admin/patients.
func (h *PatientHandler) CreatePatientHandler(c *gin.Context) {
	hospitalID := c.GetString("hospitalID")
	staffID := c.GetString("staffID")

	var req models.PatientCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Required fields are missing", "message": err.Error()})
		return
	}

	p, err := h.Service.Create(c.Request.Context(), hospitalID, staffID, req)
	if err != nil {
		utils.GetLogger().Error("Failed to create patient", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error adding patient"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Patient added successfully!", "patient": p})
}

// ListPatientsHandler handles GET /api/admin/patients?search=.
func (h *PatientHandler) ListPatientsHandler(c *gin.Context) {
	hospitalID := c.GetString("hospitalID")
	search := strings.TrimSpace(c.Query("search"))

	patients, err := h.Service.List(c.Request.Context(), hospitalID, search)
	if err != nil {
		utils.GetLogger().Error("Failed to list patients", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading patients"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"patients": patients})
}

// GetPatientHandler handles GET /api/admin/patients/:id.
func (h *PatientHandler) GetPatientHandler(c *gin.Context) {
	hospitalID := c.GetString("hospitalID")
	id := c.Param("id")

	p, err := h.Service.GetByID(c.Request.Context(), id, hospitalID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// LookupPatientHandler handles GET /api/admin/patients/lookup?name=. It
// resolves an exact name match over the sorted patient directory.
func (h *PatientHandler) LookupPatientHandler(c *gin.Context) {
	hospitalID := c.GetString("hospitalID")
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing name parameter"})
		return
	}

	p, err := h.Directory.Lookup(c.Request.Context(), hospitalID, name)
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
			return
		}
		utils.GetLogger().Error("Patient lookup failed", zap.String("name", name), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading patients"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// DoctorPatientsHandler handles GET /api/doctor/patients?search=, annotating
// each patient with their last visit to the requesting doctor.
func (h *PatientHandler) DoctorPatientsHandler(c *gin.Context) {
	hospitalID := c.GetString("hospitalID")
	doctorID := c.GetString("doctorID")
	search := strings.TrimSpace(c.Query("search"))

	patients, err := h.Service.ListForDoctor(c.Request.Context(), doctorID, hospitalID, search)
	if err != nil {
		utils.GetLogger().Error("Failed to list doctor patients", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading patients"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"patients": patients})
}
