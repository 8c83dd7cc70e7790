package models

import "time"

// Staff represents a hospital administrator account. The staff ID doubles as the
// hospital ID: every doctor, patient and appointment created under the account
// is scoped to it.
type Staff struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	HospitalName string    `bson:"hospitalName" json:"hospitalName"`
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// StaffRegistrationRequest defines the payload for creating a staff account.
type StaffRegistrationRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
	HospitalName string `json:"hospitalName" binding:"required"`
}

// LoginRequest is shared by staff and doctor logins.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the issued token plus the authenticated identity.
type AuthResponse struct {
	Token        string `json:"token"`
	ID           string `json:"id"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	HospitalID   string `json:"hospitalId"`
	HospitalName string `json:"hospitalName"`
}
