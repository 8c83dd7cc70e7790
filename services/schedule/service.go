// File: services/schedule/service.go
package schedule

import (
	"context"
	"fmt"
	"time"

	appointmentRepo "cliniq/database/repository/appointment"
	scheduleRepo "cliniq/database/repository/schedule"
	"cliniq/models"
)

// Messages carried in the error field of the availability response. Clients
// treat the presence of the field as failure regardless of HTTP status.
const (
	MsgInvalidDate  = "Invalid date format"
	MsgNotAvailable = "Doctor not available on this day"
)

var validDays = map[string]bool{
	"Monday": true, "Tuesday": true, "Wednesday": true,
	"Thursday": true, "Friday": true, "Saturday": true, "Sunday": true,
}

// Service manages doctor weekly windows and computes day availability.
type Service interface {
	SetWeeklyWindow(ctx context.Context, doctorID, hospitalID string, req models.WeeklyWindowRequest) (*models.WeeklyWindow, error)
	GetWeeklySchedule(ctx context.Context, doctorID, hospitalID string) ([]models.WeeklyWindow, error)
	// DayAvailability computes the slot listing for a doctor/date. Domain
	// failures (bad date, no window that weekday) are reported inside the
	// response's error field; the error return is reserved for backend
	// failures.
	DayAvailability(ctx context.Context, doctorID, date, hospitalID string) (*models.SlotAvailabilityResponse, error)
	// ClassifiedAvailability is DayAvailability folded through the
	// booked/bookable classifier.
	ClassifiedAvailability(ctx context.Context, doctorID, date, hospitalID string) ([]models.ClassifiedSlot, string, error)
}

// DefaultScheduleService is the repository-backed Service implementation.
type DefaultScheduleService struct {
	Repo         scheduleRepo.ScheduleRepository
	Appointments appointmentRepo.AppointmentRepository
	SlotInterval time.Duration // zero means DefaultSlotInterval
}

func (s *DefaultScheduleService) SetWeeklyWindow(ctx context.Context, doctorID, hospitalID string, req models.WeeklyWindowRequest) (*models.WeeklyWindow, error) {
	if !validDays[req.Day] {
		return nil, fmt.Errorf("invalid day %q", req.Day)
	}

	start, err := parseClock(req.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := parseClock(req.EndTime)
	if err != nil {
		return nil, err
	}
	if !end.After(start) {
		return nil, fmt.Errorf("end time %s must be after start time %s", req.EndTime, req.StartTime)
	}

	if (req.BreakStart == "") != (req.BreakEnd == "") {
		return nil, fmt.Errorf("break start and break end must be set together")
	}
	if req.BreakStart != "" {
		brStart, err := parseClock(req.BreakStart)
		if err != nil {
			return nil, err
		}
		brEnd, err := parseClock(req.BreakEnd)
		if err != nil {
			return nil, err
		}
		if !brEnd.After(brStart) || brStart.Before(start) || brEnd.After(end) {
			return nil, fmt.Errorf("break window must lie within the consulting window")
		}
	}

	w := &models.WeeklyWindow{
		DoctorID:   doctorID,
		Day:        req.Day,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		BreakStart: req.BreakStart,
		BreakEnd:   req.BreakEnd,
		HospitalID: hospitalID,
	}
	if err := s.Repo.Upsert(ctx, w); err != nil {
		return nil, fmt.Errorf("failed to save weekly window: %w", err)
	}
	return w, nil
}

func (s *DefaultScheduleService) GetWeeklySchedule(ctx context.Context, doctorID, hospitalID string) ([]models.WeeklyWindow, error) {
	return s.Repo.ListByDoctor(ctx, doctorID, hospitalID)
}

func (s *DefaultScheduleService) DayAvailability(ctx context.Context, doctorID, date, hospitalID string) (*models.SlotAvailabilityResponse, error) {
	day, err := weekdayOf(date)
	if err != nil {
		return &models.SlotAvailabilityResponse{Error: MsgInvalidDate}, nil
	}

	window, err := s.Repo.GetByDoctorAndDay(ctx, doctorID, day, hospitalID)
	if err != nil {
		return nil, fmt.Errorf("failed to load weekly window: %w", err)
	}
	if window == nil {
		return &models.SlotAvailabilityResponse{Error: MsgNotAvailable}, nil
	}

	interval := s.SlotInterval
	if interval <= 0 {
		interval = DefaultSlotInterval
	}
	slots, err := GenerateSlots(window.StartTime, window.EndTime, window.BreakStart, window.BreakEnd, interval)
	if err != nil {
		return nil, fmt.Errorf("failed to generate slots: %w", err)
	}

	booked, err := s.Appointments.BookedStarts(ctx, doctorID, date, hospitalID)
	if err != nil {
		return nil, fmt.Errorf("failed to load booked slots: %w", err)
	}

	return &models.SlotAvailabilityResponse{Slots: slots, BookedSlots: booked}, nil
}

func (s *DefaultScheduleService) ClassifiedAvailability(ctx context.Context, doctorID, date, hospitalID string) ([]models.ClassifiedSlot, string, error) {
	resp, err := s.DayAvailability(ctx, doctorID, date, hospitalID)
	if err != nil {
		return nil, "", err
	}
	if resp.Error != "" {
		return nil, resp.Error, nil
	}
	return Classify(resp.Slots, NewBookedSet(resp.BookedSlots)), "", nil
}

// weekdayOf maps a YYYY-MM-DD date to its weekday name.
func weekdayOf(date string) (string, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", err
	}
	return t.Weekday().String(), nil
}
