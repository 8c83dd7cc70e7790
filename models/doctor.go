package models

import "time"

// Doctor represents a practicing doctor managed by a hospital admin.
type Doctor struct {
	ID             string    `bson:"id" json:"id"`
	Name           string    `bson:"name" json:"name"`
	Specialization string    `bson:"specialization" json:"specialization"`
	Experience     int       `bson:"experience" json:"experience"` // years
	ConsultationFee float64  `bson:"consultationFee" json:"consultationFee"`
	Contact        string    `bson:"contact" json:"contact"`
	Bio            string    `bson:"bio,omitempty" json:"bio,omitempty"`
	PhotoURL       string    `bson:"photoUrl,omitempty" json:"photoUrl,omitempty"`
	Username       string    `bson:"username,omitempty" json:"username,omitempty"`
	PasswordHash   string    `bson:"passwordHash,omitempty" json:"-"`
	TokenHash      string    `bson:"tokenHash,omitempty" json:"-"`
	CreatedBy      string    `bson:"createdBy" json:"createdBy"`
	HospitalID     string    `bson:"hospitalId" json:"hospitalId"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
}

// DoctorCreateRequest defines the payload for registering a doctor.
type DoctorCreateRequest struct {
	Name            string  `json:"name" binding:"required"`
	Specialization  string  `json:"specialization" binding:"required"`
	Experience      int     `json:"experience" binding:"required"`
	ConsultationFee float64 `json:"consultationFee" binding:"required"`
	Contact         string  `json:"contact" binding:"required"`
	Bio             string  `json:"bio"`
}

// DoctorCredentialsRequest assigns login credentials to an existing doctor.
// Username and password length bounds mirror the admin portal's validation.
type DoctorCredentialsRequest struct {
	Username string `json:"username" binding:"required,min=4"`
	Password string `json:"password" binding:"required,min=8"`
}
