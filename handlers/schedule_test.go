package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"cliniq/models"
	"cliniq/services/schedule"
)

type fakeScheduleService struct {
	resp       *models.SlotAvailabilityResponse
	classified []models.ClassifiedSlot
	errMsg     string
	err        error
}

func (f *fakeScheduleService) SetWeeklyWindow(ctx context.Context, doctorID, hospitalID string, req models.WeeklyWindowRequest) (*models.WeeklyWindow, error) {
	return nil, nil
}

func (f *fakeScheduleService) GetWeeklySchedule(ctx context.Context, doctorID, hospitalID string) ([]models.WeeklyWindow, error) {
	return nil, nil
}

func (f *fakeScheduleService) DayAvailability(ctx context.Context, doctorID, date, hospitalID string) (*models.SlotAvailabilityResponse, error) {
	return f.resp, f.err
}

func (f *fakeScheduleService) ClassifiedAvailability(ctx context.Context, doctorID, date, hospitalID string) ([]models.ClassifiedSlot, string, error) {
	return f.classified, f.errMsg, f.err
}

func slotsRouter(svc schedule.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewScheduleHandler(svc)
	r := gin.New()
	r.GET("/admin/get_doctor_slots/:doctorID/:date", func(c *gin.Context) {
		c.Set("hospitalID", "h1")
		h.GetDoctorSlotsHandler(c)
	})
	return r
}

func getSlots(t *testing.T, svc schedule.Service, path string) (int, map[string]json.RawMessage) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	slotsRouter(svc).ServeHTTP(w, req)

	var body map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body %q: %v", w.Body.String(), err)
	}
	return w.Code, body
}

func TestGetDoctorSlotsSuccess(t *testing.T) {
	svc := &fakeScheduleService{
		resp: &models.SlotAvailabilityResponse{
			Slots: []models.TimeSlot{
				{Start: "09:00", End: "09:15", DisplayStart: "09:00 am", DisplayEnd: "09:15 am"},
			},
			BookedSlots: []string{"09:00"},
		},
	}

	code, body := getSlots(t, svc, "/admin/get_doctor_slots/d1/2026-08-21")
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if _, ok := body["error"]; ok {
		t.Error("success body carries an error field")
	}
	if _, ok := body["slots"]; !ok {
		t.Error("success body missing slots")
	}
	if _, ok := body["booked_slots"]; !ok {
		t.Error("success body missing booked_slots")
	}
}

func TestGetDoctorSlotsInvalidDate(t *testing.T) {
	svc := &fakeScheduleService{
		resp: &models.SlotAvailabilityResponse{Error: schedule.MsgInvalidDate},
	}

	code, body := getSlots(t, svc, "/admin/get_doctor_slots/d1/21-08-2026")
	if code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", code)
	}
	var msg string
	if err := json.Unmarshal(body["error"], &msg); err != nil || msg != schedule.MsgInvalidDate {
		t.Errorf("error field = %q, want %q", msg, schedule.MsgInvalidDate)
	}
}

func TestGetDoctorSlotsNoWindow(t *testing.T) {
	svc := &fakeScheduleService{
		resp: &models.SlotAvailabilityResponse{Error: schedule.MsgNotAvailable},
	}

	// A missing weekday window is not an HTTP failure; the error field alone
	// signals it.
	code, body := getSlots(t, svc, "/admin/get_doctor_slots/d1/2026-08-23")
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	var msg string
	if err := json.Unmarshal(body["error"], &msg); err != nil || msg != schedule.MsgNotAvailable {
		t.Errorf("error field = %q, want %q", msg, schedule.MsgNotAvailable)
	}
}
