// File: services/appointment/service.go
package appointment

import (
	"context"
	"fmt"
	"strings"
	"time"

	appointmentRepo "cliniq/database/repository/appointment"
	doctorRepo "cliniq/database/repository/doctor"
	patientRepo "cliniq/database/repository/patient"
	"cliniq/models"
)

// DashboardSummary backs the admin landing page.
type DashboardSummary struct {
	Doctors      int64                      `json:"doctors"`
	Patients     int64                      `json:"patients"`
	Appointments int64                      `json:"appointments"`
	Recent       []models.AppointmentDetail `json:"recent"`
}

// DoctorDashboard backs the doctor landing page.
type DoctorDashboard struct {
	Today    []models.AppointmentDetail `json:"today"`
	Upcoming []models.AppointmentDetail `json:"upcoming"`
}

// Service manages appointment scheduling and listings.
type Service interface {
	Schedule(ctx context.Context, hospitalID string, req models.AppointmentCreateRequest) (*models.Appointment, error)
	List(ctx context.Context, hospitalID string, filter models.AppointmentFilter) ([]models.AppointmentDetail, error)
	Delete(ctx context.Context, id, hospitalID string) error
	UpdateStatus(ctx context.Context, id, doctorID, hospitalID, status string) error
	AdminDashboard(ctx context.Context, hospitalID string) (*DashboardSummary, error)
	DoctorDashboard(ctx context.Context, doctorID, hospitalID string) (*DoctorDashboard, error)
	Export(ctx context.Context, hospitalID string) ([]byte, error)
}

// DefaultAppointmentService is the repository-backed Service implementation.
type DefaultAppointmentService struct {
	Repo     appointmentRepo.AppointmentRepository
	Doctors  doctorRepo.DoctorRepository
	Patients patientRepo.PatientRepository
}

func (s *DefaultAppointmentService) Schedule(ctx context.Context, hospitalID string, req models.AppointmentCreateRequest) (*models.Appointment, error) {
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, fmt.Errorf("invalid date %q", req.Date)
	}
	if _, err := s.Patients.GetByID(ctx, req.PatientID, hospitalID); err != nil {
		return nil, fmt.Errorf("patient not found")
	}
	if _, err := s.Doctors.GetByID(ctx, req.DoctorID, hospitalID); err != nil {
		return nil, fmt.Errorf("doctor not found")
	}

	a := &models.Appointment{
		PatientID:  req.PatientID,
		DoctorID:   req.DoctorID,
		Date:       req.Date,
		TimeSlot:   req.TimeSlot,
		Notes:      req.Notes,
		HospitalID: hospitalID,
	}
	if err := s.Repo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to schedule appointment: %w", err)
	}
	return a, nil
}

// detail resolves patient and doctor names for a batch of appointments and
// applies the free-text search on the resolved names.
func (s *DefaultAppointmentService) detail(ctx context.Context, hospitalID, search string, appts []models.Appointment) ([]models.AppointmentDetail, error) {
	patients, err := s.Patients.List(ctx, hospitalID, "")
	if err != nil {
		return nil, fmt.Errorf("failed to load patients: %w", err)
	}
	doctors, err := s.Doctors.List(ctx, hospitalID, "")
	if err != nil {
		return nil, fmt.Errorf("failed to load doctors: %w", err)
	}

	patientByID := make(map[string]models.Patient, len(patients))
	for _, p := range patients {
		patientByID[p.ID] = p
	}
	doctorByID := make(map[string]models.Doctor, len(doctors))
	for _, d := range doctors {
		doctorByID[d.ID] = d
	}

	needle := strings.ToLower(search)
	details := make([]models.AppointmentDetail, 0, len(appts))
	for _, a := range appts {
		p := patientByID[a.PatientID]
		d := doctorByID[a.DoctorID]
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(d.Name), needle) {
			continue
		}
		details = append(details, models.AppointmentDetail{
			ID:          a.ID,
			PatientID:   a.PatientID,
			PatientName: p.Name,
			PatientAge:  p.Age,
			Gender:      p.Gender,
			DoctorID:    a.DoctorID,
			DoctorName:  d.Name,
			Date:        a.Date,
			TimeSlot:    a.TimeSlot,
			Status:      a.Status,
			Notes:       a.Notes,
		})
	}
	return details, nil
}

func (s *DefaultAppointmentService) List(ctx context.Context, hospitalID string, filter models.AppointmentFilter) ([]models.AppointmentDetail, error) {
	appts, err := s.Repo.List(ctx, hospitalID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load appointments: %w", err)
	}
	return s.detail(ctx, hospitalID, filter.Search, appts)
}

func (s *DefaultAppointmentService) Delete(ctx context.Context, id, hospitalID string) error {
	if err := s.Repo.Delete(ctx, id, hospitalID); err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	return nil
}

func (s *DefaultAppointmentService) UpdateStatus(ctx context.Context, id, doctorID, hospitalID, status string) error {
	if !models.ValidStatus(status) {
		return fmt.Errorf("invalid status %q", status)
	}
	if err := s.Repo.UpdateStatus(ctx, id, doctorID, hospitalID, status); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}
	return nil
}

func (s *DefaultAppointmentService) AdminDashboard(ctx context.Context, hospitalID string) (*DashboardSummary, error) {
	doctors, err := s.Doctors.Count(ctx, hospitalID)
	if err != nil {
		return nil, err
	}
	patients, err := s.Patients.Count(ctx, hospitalID)
	if err != nil {
		return nil, err
	}
	appointments, err := s.Repo.Count(ctx, hospitalID)
	if err != nil {
		return nil, err
	}
	recent, err := s.Repo.Recent(ctx, hospitalID, 5)
	if err != nil {
		return nil, err
	}
	recentDetails, err := s.detail(ctx, hospitalID, "", recent)
	if err != nil {
		return nil, err
	}

	return &DashboardSummary{
		Doctors:      doctors,
		Patients:     patients,
		Appointments: appointments,
		Recent:       recentDetails,
	}, nil
}

func (s *DefaultAppointmentService) DoctorDashboard(ctx context.Context, doctorID, hospitalID string) (*DoctorDashboard, error) {
	today := time.Now().Format("2006-01-02")

	todays, err := s.Repo.ForDoctorOnDate(ctx, doctorID, today, hospitalID)
	if err != nil {
		return nil, err
	}
	upcoming, err := s.Repo.UpcomingForDoctor(ctx, doctorID, today, hospitalID, 5)
	if err != nil {
		return nil, err
	}

	todayDetails, err := s.detail(ctx, hospitalID, "", todays)
	if err != nil {
		return nil, err
	}
	upcomingDetails, err := s.detail(ctx, hospitalID, "", upcoming)
	if err != nil {
		return nil, err
	}

	return &DoctorDashboard{Today: todayDetails, Upcoming: upcomingDetails}, nil
}
