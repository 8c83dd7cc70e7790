package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cliniq/models"
	"cliniq/services/appointment"
	"cliniq/utils"
)

// AppointmentHandler exposes appointment scheduling and listing endpoints.
type AppointmentHandler struct {
	Service appointment.Service
}

// NewAppointmentHandler constructs an AppointmentHandler.
func NewAppointmentHandler(svc appointment.Service) *AppointmentHandler {
	return &AppointmentHandler{Service: svc}
}

// ScheduleHandler handles POST /api/admin/appointments.
func (h *AppointmentHandler) ScheduleHandler(c *gin.Context) {
	hospitalID := c.GetString("hospitalID")

	var req models.AppointmentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Required fields are missing", "message": err.Error()})
		return
	}

	a, err := h.Service.Schedule(c.Request.Context(), hospitalID, req)
	if err != nil {
		utils.GetLogger().Error("Failed to schedule appointment", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Appointment scheduled successfully!", "appointment": a})
}

// ListHandler handles GET /api/admin/appointments?search=&status=.
func (h *AppointmentHandler) ListHandler(c *gin.Context) {
	hospitalID := c.GetString("hospitalID")
	filter := models.AppointmentFilter{
		Search: strings.TrimSpace(c.Query("search")),
		Status: strings.TrimSpace(c.Query("status")),
	}

	appts, err := h.Service.List(c.Request.Context(), hospitalID, filter)
	if err != nil {
		utils.GetLogger().Error("Failed to list appointments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading appointments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// DoctorListHandler handles GET /api/doctor/appointments?search=&status=,
// restricted to the requesting doctor.
func (h *AppointmentHandler) DoctorListHandler(c *gin.Context) {
	hospitalID := c.GetString("hospitalID")
	filter := models.AppointmentFilter{
		DoctorID: c.GetString("doctorID"),
		Search:   strings.TrimSpace(c.Query("search")),
		Status:   strings.TrimSpace(c.Query("status")),
	}

	appts, err := h.Service.List(c.Request.Context(), hospitalID, filter)
	if err != nil {
		utils.GetLogger().Error("Failed to list doctor appointments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading appointments"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// DeleteHandler handles DELETE /api/admin/appointments/:id.
func (h *AppointmentHandler) DeleteHandler(c *gin.Context) {
	hospitalID := c.GetString("hospitalID")
	id := c.Param("id")

	if err := h.Service.Delete(c.Request.Context(), id, hospitalID); err != nil {
		utils.GetLogger().Error("Failed to delete appointment", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting appointment"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully!"})
}

// UpdateStatusHandler handles PUT /api/doctor/appointments/:id/status.
func (h *AppointmentHandler) UpdateStatusHandler(c *gin.Context) {
	hospitalID := c.GetString("hospitalID")
	doctorID := c.GetString("doctorID")
	id := c.Param("id")

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status is required"})
		return
	}

	if err := h.Service.UpdateStatus(c.Request.Context(), id, doctorID, hospitalID, req.Status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment status updated successfully!"})
}

// AdminDashboardHandler handles GET /api/admin/dashboard.
func (h *AppointmentHandler) AdminDashboardHandler(c *gin.Context) {
	hospitalID := c.GetString("hospitalID")

	summary, err := h.Service.AdminDashboard(c.Request.Context(), hospitalID)
	if err != nil {
		utils.GetLogger().Error("Failed to build dashboard", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading dashboard data"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// DoctorDashboardHandler handles GET /api/doctor/dashboard.
func (h *AppointmentHandler) DoctorDashboardHandler(c *gin.Context) {
	hospitalID := c.GetString("hospitalID")
	doctorID := c.GetString("doctorID")

	dash, err := h.Service.DoctorDashboard(c.Request.Context(), doctorID, hospitalID)
	if err != nil {
		utils.GetLogger().Error("Failed to build doctor dashboard", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading dashboard data"})
		return
	}
	c.JSON(http.StatusOK, dash)
}

// ExportHandler handles GET /api/admin/appointments/export, streaming the
// xlsx workbook.
func (h *AppointmentHandler) ExportHandler(c *gin.Context) {
	hospitalID := c.GetString("hospitalID")

	data, err := h.Service.Export(c.Request.Context(), hospitalID)
	if err != nil {
		utils.GetLogger().Error("Failed to export appointments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error exporting appointments"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="appointments.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
