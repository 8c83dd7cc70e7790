package models

import "time"

// Medicine is one ordered row of a prescription.
type Medicine struct {
	Name      string `bson:"name" json:"name"`
	Dosage    string `bson:"dosage" json:"dosage"`
	Frequency string `bson:"frequency" json:"frequency"`
	Morning   bool   `bson:"morning" json:"morning"`
	Afternoon bool   `bson:"afternoon" json:"afternoon"`
	Evening   bool   `bson:"evening" json:"evening"`
	Meal      string `bson:"meal" json:"meal"` // "before" or "after"
}

// Prescription is the single prescription attached to an appointment.
type Prescription struct {
	ID            string     `bson:"id" json:"id"`
	AppointmentID string     `bson:"appointmentId" json:"appointmentId"`
	Diagnosis     string     `bson:"diagnosis" json:"diagnosis"`
	Medicines     []Medicine `bson:"medicines" json:"medicines"`
	Instructions  string     `bson:"instructions,omitempty" json:"instructions,omitempty"`
	HospitalID    string     `bson:"hospitalId" json:"hospitalId"`
	CreatedAt     time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// PrescriptionRequest defines the JSON payload for saving a prescription.
type PrescriptionRequest struct {
	Diagnosis    string     `json:"diagnosis" binding:"required"`
	Medicines    []Medicine `json:"medicines"`
	Instructions string     `json:"instructions"`
}

// PrescriptionDetail is a prescription joined with its appointment context,
// as shown on the patient history and print views.
type PrescriptionDetail struct {
	Prescription
	Date        string `json:"date"`
	TimeSlot    string `json:"timeSlot"`
	DoctorName  string `json:"doctorName"`
	PatientName string `json:"patientName,omitempty"`
}
