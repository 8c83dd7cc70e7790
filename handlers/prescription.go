package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cliniq/models"
	"cliniq/services/prescription"
	"cliniq/utils"
)

// PrescriptionHandler exposes the doctor-side prescription endpoints.
type PrescriptionHandler struct {
	Service prescription.Service
}

// NewPrescriptionHandler constructs a PrescriptionHandler.
func NewPrescriptionHandler(svc prescription.Service) *PrescriptionHandler {
	return &PrescriptionHandler{Service: svc}
}

// SaveHandler handles POST /api/doctor/appointments/:id/prescription with a
// JSON body.
func (h *PrescriptionHandler) SaveHandler(c *gin.Context) {
	hospitalID := c.GetString("hospitalID")
	doctorID := c.GetString("doctorID")
	appointmentID := c.Param("id")

	var req models.PrescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Diagnosis is required", "message": err.Error()})
		return
	}

	p, err := h.Service.Save(c.Request.Context(), appointmentID, doctorID, hospitalID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Prescription saved successfully!", "prescription": p})
}

// SaveFormHandler handles the form-encoded submission from the older portal
// pages: diagnosis, instructions and indexed medicine_name_{i} style fields
// counted by medicine_count.
func (h *PrescriptionHandler) SaveFormHandler(c *gin.Context) {
	hospitalID := c.GetString("hospitalID")
	doctorID := c.GetString("doctorID")
	appointmentID := c.Param("id")

	if err := c.Request.ParseForm(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form data"})
		return
	}
	diagnosis := strings.TrimSpace(c.Request.PostForm.Get("diagnosis"))
	if diagnosis == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Diagnosis is required"})
		return
	}

	req := models.PrescriptionRequest{
		Diagnosis:    diagnosis,
		Medicines:    prescription.ParseLegacyForm(c.Request.PostForm),
		Instructions: strings.TrimSpace(c.Request.PostForm.Get("instructions")),
	}

	p, err := h.Service.Save(c.Request.Context(), appointmentID, doctorID, hospitalID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Prescription saved successfully!", "prescription": p})
}

// GetHandler handles GET /api/doctor/appointments/:id/prescription.
func (h *PrescriptionHandler) GetHandler(c *gin.Context) {
	hospitalID := c.GetString("hospitalID")
	appointmentID := c.Param("id")

	p, err := h.Service.GetByAppointment(c.Request.Context(), appointmentID, hospitalID)
	if err != nil {
		utils.GetLogger().Error("Failed to load prescription", zap.String("appointmentID", appointmentID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading prescription"})
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Prescription not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// PatientHistoryHandler handles GET /api/doctor/patients/:id/history.
func (h *PrescriptionHandler) PatientHistoryHandler(c *gin.Context) {
	hospitalID := c.GetString("hospitalID")
	patientID := c.Param("id")

	history, err := h.Service.PatientHistory(c.Request.Context(), patientID, hospitalID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, history)
}

// PrintHandler handles GET /api/doctor/appointments/:id/prescription/print,
// returning the plain-text sheet the browser print view renders.
func (h *PrescriptionHandler) PrintHandler(c *gin.Context) {
	hospitalID := c.GetString("hospitalID")
	appointmentID := c.Param("id")

	sheet, err := h.Service.PrintSheet(c.Request.Context(), appointmentID, hospitalID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.String(http.StatusOK, sheet)
}
