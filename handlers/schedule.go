package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cliniq/models"
	"cliniq/services/schedule"
	"cliniq/utils"
)

// ScheduleHandler exposes doctor availability endpoints.
type ScheduleHandler struct {
	Service schedule.Service
}

// NewScheduleHandler constructs a ScheduleHandler.
func NewScheduleHandler(svc schedule.Service) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

// SetWeeklyWindowHandler handles PUT /api/admin/doctors/:id/slots.
func (h *ScheduleHandler) SetWeeklyWindowHandler(c *gin.Context) {
	hospitalID := c.GetString("hospitalID")
	doctorID := c.Param("id")

	var req models.WeeklyWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Required fields are missing", "message": err.Error()})
		return
	}

	w, err := h.Service.SetWeeklyWindow(c.Request.Context(), doctorID, hospitalID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Doctor availability slots updated successfully!", "window": w})
}

// GetWeeklyScheduleHandler handles GET /api/admin/doctors/:id/slots.
func (h *ScheduleHandler) GetWeeklyScheduleHandler(c *gin.Context) {
	hospitalID := c.GetString("hospitalID")
	doctorID := c.Param("id")

	windows, err := h.Service.GetWeeklySchedule(c.Request.Context(), doctorID, hospitalID)
	if err != nil {
		utils.GetLogger().Error("Failed to load weekly schedule", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading doctor data"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": windows})
}

// GetDoctorSlotsHandler handles GET /admin/get_doctor_slots/:doctorID/:date,
// the availability endpoint the scheduling page polls. The response contract
// is positional: a body carrying "error" is a failure regardless of status,
// otherwise it carries "slots" and "booked_slots".
func (h *ScheduleHandler) GetDoctorSlotsHandler(c *gin.Context) {
	hospitalID := c.GetString("hospitalID")
	doctorID := c.Param("doctorID")
	date := c.Param("date")

	resp, err := h.Service.DayAvailability(c.Request.Context(), doctorID, date, hospitalID)
	if err != nil {
		utils.GetLogger().Error("Get slots failed", zap.String("doctorID", doctorID), zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.SlotAvailabilityResponse{Error: "Server error"})
		return
	}
	if resp.Error == schedule.MsgInvalidDate {
		c.JSON(http.StatusBadRequest, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetClassifiedSlotsHandler handles GET /api/admin/doctors/:id/availability/:date,
// the same data with each slot pre-classified bookable or booked.
func (h *ScheduleHandler) GetClassifiedSlotsHandler(c *gin.Context) {
	hospitalID := c.GetString("hospitalID")
	doctorID := c.Param("id")
	date := c.Param("date")

	classified, errMsg, err := h.Service.ClassifiedAvailability(c.Request.Context(), doctorID, date, hospitalID)
	if err != nil {
		utils.GetLogger().Error("Get availability failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	if errMsg != "" {
		status := http.StatusOK
		if errMsg == schedule.MsgInvalidDate {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": errMsg})
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": classified})
}
