package models

import "time"

// Appointment statuses. New appointments start out Scheduled; only the owning
// doctor moves them through the rest of the lifecycle.
const (
	StatusScheduled = "Scheduled"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
	StatusNoShow    = "No-Show"
)

// Appointment binds a patient to a doctor's time slot on a given date.
// Date is YYYY-MM-DD and TimeSlot is the HH:MM start of the chosen slot.
type Appointment struct {
	ID         string    `bson:"id" json:"id"`
	PatientID  string    `bson:"patientId" json:"patientId"`
	DoctorID   string    `bson:"doctorId" json:"doctorId"`
	Date       string    `bson:"date" json:"date"`
	TimeSlot   string    `bson:"timeSlot" json:"timeSlot"`
	Status     string    `bson:"status" json:"status"`
	Notes      string    `bson:"notes,omitempty" json:"notes,omitempty"`
	HospitalID string    `bson:"hospitalId" json:"hospitalId"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}

// AppointmentDetail is the listing view joined with patient and doctor names.
type AppointmentDetail struct {
	ID          string `json:"id"`
	PatientID   string `json:"patientId"`
	PatientName string `json:"patientName"`
	PatientAge  int    `json:"patientAge,omitempty"`
	Gender      string `json:"gender,omitempty"`
	DoctorID    string `json:"doctorId"`
	DoctorName  string `json:"doctorName"`
	Date        string `json:"date"`
	TimeSlot    string `json:"timeSlot"`
	Status      string `json:"status"`
	Notes       string `json:"notes,omitempty"`
}

// AppointmentCreateRequest defines the payload for scheduling an appointment.
type AppointmentCreateRequest struct {
	PatientID string `json:"patientId" binding:"required"`
	DoctorID  string `json:"doctorId" binding:"required"`
	Date      string `json:"date" binding:"required"`
	TimeSlot  string `json:"timeSlot" binding:"required"`
	Notes     string `json:"notes"`
}

// AppointmentFilter narrows appointment listings.
type AppointmentFilter struct {
	DoctorID string // restrict to one doctor (doctor views)
	Search   string // substring match on patient/doctor name
	Status   string
}

// ValidStatus reports whether s is a recognised appointment status.
func ValidStatus(s string) bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}
