package models

import "time"

// Patient represents a registered patient record.
type Patient struct {
	ID             string    `bson:"id" json:"id"`
	Name           string    `bson:"name" json:"name"`
	Age            int       `bson:"age" json:"age"`
	Gender         string    `bson:"gender" json:"gender"`
	Contact        string    `bson:"contact" json:"contact"`
	Address        string    `bson:"address,omitempty" json:"address,omitempty"`
	MedicalHistory string    `bson:"medicalHistory,omitempty" json:"medicalHistory,omitempty"`
	LastVisit      string    `bson:"-" json:"lastVisit,omitempty"` // derived, YYYY-MM-DD
	CreatedBy      string    `bson:"createdBy" json:"createdBy"`
	HospitalID     string    `bson:"hospitalId" json:"hospitalId"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
}

// PatientCreateRequest defines the payload for registering a patient.
type PatientCreateRequest struct {
	Name           string `json:"name" binding:"required"`
	Age            int    `json:"age" binding:"required"`
	Gender         string `json:"gender" binding:"required"`
	Contact        string `json:"contact" binding:"required"`
	Address        string `json:"address"`
	MedicalHistory string `json:"medicalHistory"`
}
