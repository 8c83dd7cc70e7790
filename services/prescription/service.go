// File: services/prescription/service.go
package prescription

import (
	"context"
	"fmt"
	"strings"

	appointmentRepo "cliniq/database/repository/appointment"
	doctorRepo "cliniq/database/repository/doctor"
	patientRepo "cliniq/database/repository/patient"
	prescriptionRepo "cliniq/database/repository/prescription"
	staffRepo "cliniq/database/repository/staff"
	"cliniq/models"
)

// Service manages prescriptions and patient history views.
type Service interface {
	Save(ctx context.Context, appointmentID, doctorID, hospitalID string, req models.PrescriptionRequest) (*models.Prescription, error)
	GetByAppointment(ctx context.Context, appointmentID, hospitalID string) (*models.Prescription, error)
	PatientHistory(ctx context.Context, patientID, hospitalID string) (*PatientHistory, error)
	PrintSheet(ctx context.Context, appointmentID, hospitalID string) (string, error)
}

// PatientHistory is the doctor-facing view of a patient's record.
type PatientHistory struct {
	Patient       models.Patient              `json:"patient"`
	Appointments  []models.AppointmentDetail  `json:"appointments"`
	Prescriptions []models.PrescriptionDetail `json:"prescriptions"`
}

// DefaultPrescriptionService is the repository-backed Service implementation.
type DefaultPrescriptionService struct {
	Repo         prescriptionRepo.PrescriptionRepository
	Appointments appointmentRepo.AppointmentRepository
	Patients     patientRepo.PatientRepository
	Doctors      doctorRepo.DoctorRepository
	Staff        staffRepo.StaffRepository
}

// Save upserts the prescription for an appointment. Only the doctor the
// appointment belongs to may write it.
func (s *DefaultPrescriptionService) Save(ctx context.Context, appointmentID, doctorID, hospitalID string, req models.PrescriptionRequest) (*models.Prescription, error) {
	appt, err := s.Appointments.GetByID(ctx, appointmentID, hospitalID)
	if err != nil {
		return nil, fmt.Errorf("appointment not found")
	}
	if appt.DoctorID != doctorID {
		return nil, fmt.Errorf("appointment belongs to another doctor")
	}

	p := &models.Prescription{
		AppointmentID: appointmentID,
		Diagnosis:     req.Diagnosis,
		Medicines:     req.Medicines,
		Instructions:  req.Instructions,
		HospitalID:    hospitalID,
	}
	if err := s.Repo.Upsert(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to save prescription: %w", err)
	}
	return p, nil
}

func (s *DefaultPrescriptionService) GetByAppointment(ctx context.Context, appointmentID, hospitalID string) (*models.Prescription, error) {
	return s.Repo.GetByAppointment(ctx, appointmentID, hospitalID)
}

func (s *DefaultPrescriptionService) PatientHistory(ctx context.Context, patientID, hospitalID string) (*PatientHistory, error) {
	pat, err := s.Patients.GetByID(ctx, patientID, hospitalID)
	if err != nil {
		return nil, fmt.Errorf("patient not found")
	}

	appts, err := s.Appointments.ListByPatient(ctx, patientID, hospitalID)
	if err != nil {
		return nil, fmt.Errorf("failed to load appointments: %w", err)
	}

	doctors, err := s.Doctors.List(ctx, hospitalID, "")
	if err != nil {
		return nil, fmt.Errorf("failed to load doctors: %w", err)
	}
	doctorName := make(map[string]string, len(doctors))
	for _, d := range doctors {
		doctorName[d.ID] = d.Name
	}

	apptIDs := make([]string, 0, len(appts))
	apptByID := make(map[string]models.Appointment, len(appts))
	details := make([]models.AppointmentDetail, 0, len(appts))
	for _, a := range appts {
		apptIDs = append(apptIDs, a.ID)
		apptByID[a.ID] = a
		details = append(details, models.AppointmentDetail{
			ID:          a.ID,
			PatientID:   a.PatientID,
			PatientName: pat.Name,
			DoctorID:    a.DoctorID,
			DoctorName:  doctorName[a.DoctorID],
			Date:        a.Date,
			TimeSlot:    a.TimeSlot,
			Status:      a.Status,
			Notes:       a.Notes,
		})
	}

	prescriptions, err := s.Repo.ListByAppointments(ctx, apptIDs, hospitalID)
	if err != nil {
		return nil, fmt.Errorf("failed to load prescriptions: %w", err)
	}

	presDetails := make([]models.PrescriptionDetail, 0, len(prescriptions))
	for _, p := range prescriptions {
		a := apptByID[p.AppointmentID]
		presDetails = append(presDetails, models.PrescriptionDetail{
			Prescription: p,
			Date:         a.Date,
			TimeSlot:     a.TimeSlot,
			DoctorName:   doctorName[a.DoctorID],
			PatientName:  pat.Name,
		})
	}
	// Appointments arrive newest first; keep prescriptions in the same order.
	for i := 0; i < len(presDetails); i++ {
		for j := i + 1; j < len(presDetails); j++ {
			if presDetails[j].Date > presDetails[i].Date {
				presDetails[i], presDetails[j] = presDetails[j], presDetails[i]
			}
		}
	}

	return &PatientHistory{
		Patient:       *pat,
		Appointments:  details,
		Prescriptions: presDetails,
	}, nil
}

// PrintSheet renders the plain-text prescription sheet used by the browser
// print view.
func (s *DefaultPrescriptionService) PrintSheet(ctx context.Context, appointmentID, hospitalID string) (string, error) {
	appt, err := s.Appointments.GetByID(ctx, appointmentID, hospitalID)
	if err != nil {
		return "", fmt.Errorf("appointment not found")
	}
	pres, err := s.Repo.GetByAppointment(ctx, appointmentID, hospitalID)
	if err != nil {
		return "", fmt.Errorf("failed to load prescription: %w", err)
	}
	if pres == nil {
		return "", fmt.Errorf("prescription not found")
	}

	pat, err := s.Patients.GetByID(ctx, appt.PatientID, hospitalID)
	if err != nil {
		return "", fmt.Errorf("patient not found")
	}
	doc, err := s.Doctors.GetByID(ctx, appt.DoctorID, hospitalID)
	if err != nil {
		return "", fmt.Errorf("doctor not found")
	}
	hospital, err := s.Staff.GetByID(ctx, hospitalID)
	if err != nil {
		return "", fmt.Errorf("hospital not found")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", hospital.HospitalName)
	fmt.Fprintf(&b, "Dr. %s (%s)\n", doc.Name, doc.Specialization)
	fmt.Fprintf(&b, "Patient: %s  Age: %d  Gender: %s\n", pat.Name, pat.Age, pat.Gender)
	fmt.Fprintf(&b, "Date: %s  Time: %s\n\n", appt.Date, appt.TimeSlot)
	fmt.Fprintf(&b, "Diagnosis: %s\n\n", pres.Diagnosis)
	b.WriteString("Medicines:\n")
	b.WriteString(EncodeMedicines(pres.Medicines))
	b.WriteString("\n")
	if pres.Instructions != "" {
		fmt.Fprintf(&b, "\nInstructions: %s\n", pres.Instructions)
	}
	return b.String(), nil
}
